package utils

import (
	"net/http/httptest"
	"testing"
)

func TestRealClientIP(t *testing.T) {
	cases := []struct {
		name       string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{name: "direct", remoteAddr: "203.0.113.7:51234", want: "203.0.113.7"},
		{name: "unparseable remote", remoteAddr: "203.0.113.7", want: "203.0.113.7"},
		{name: "single hop", forwarded: "198.51.100.1", remoteAddr: "10.0.0.1:80", want: "198.51.100.1"},
		{name: "proxy chain", forwarded: "198.51.100.1, 10.0.0.2, 10.0.0.3", remoteAddr: "10.0.0.1:80", want: "198.51.100.1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if got := RealClientIP(req); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestStringJoin(t *testing.T) {
	if got := StringJoin(nil, ", "); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := StringJoin([]string{"a"}, ", "); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := StringJoin([]string{"a", "b", "c"}, "-"); got != "a-b-c" {
		t.Fatalf("expected a-b-c, got %q", got)
	}
}
