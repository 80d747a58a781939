package responder

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestFirstCandidateText(t *testing.T) {
	cases := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{name: "nil response", resp: nil, want: ""},
		{name: "no candidates", resp: &genai.GenerateContentResponse{}, want: ""},
		{
			name: "nil content",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{}},
			},
			want: "",
		},
		{
			name: "empty parts",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{Content: &genai.Content{}}},
			},
			want: "",
		},
		{
			name: "skips empty part",
			resp: &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{{Content: &genai.Content{
					Parts: []*genai.Part{{Text: ""}, {Text: "Hola, ¿en qué puedo ayudarte?"}},
				}}},
			},
			want: "Hola, ¿en qué puedo ayudarte?",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := firstCandidateText(tc.resp); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNewGeminiResponderRequiresKey(t *testing.T) {
	if _, err := NewGeminiResponder(context.Background(), ""); err == nil {
		t.Fatalf("expected error for missing API key")
	}
}
