package responder

import (
	"context"
	"testing"
)

func testPairs() []Pair {
	return []Pair{
		{Keyword: "horario", Answer: "Atendemos de lunes a viernes."},
		{Keyword: "precio", Answer: "Escríbenos para una cotización."},
		{Keyword: "contacto", Answer: "Puedes llamarnos al 123."},
	}
}

func TestKeywordResponderMatchesSubstring(t *testing.T) {
	r := NewKeywordResponderWithPairs(testPairs())

	reply, err := r.Respond(context.Background(), "¿Cuál es su horario de atención?")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply != "Atendemos de lunes a viernes." {
		t.Fatalf("unexpected reply: %s", reply)
	}
}

func TestKeywordResponderIsCaseInsensitive(t *testing.T) {
	r := NewKeywordResponderWithPairs(testPairs())

	reply, err := r.Respond(context.Background(), "PRECIO por favor")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply != "Escríbenos para una cotización." {
		t.Fatalf("unexpected reply: %s", reply)
	}
}

func TestKeywordResponderFirstPairWins(t *testing.T) {
	r := NewKeywordResponderWithPairs(testPairs())

	// Both "horario" and "precio" appear; table order decides.
	reply, err := r.Respond(context.Background(), "horario y precio")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply != "Atendemos de lunes a viernes." {
		t.Fatalf("expected first pair to win, got: %s", reply)
	}
}

func TestKeywordResponderNoMatch(t *testing.T) {
	r := NewKeywordResponderWithPairs(testPairs())

	reply, err := r.Respond(context.Background(), "algo completamente distinto")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply != NoMatchMessage {
		t.Fatalf("expected fallback, got: %s", reply)
	}
}

func TestKeywordResponderRejectsBlankInput(t *testing.T) {
	r := NewKeywordResponderWithPairs(testPairs())

	for _, input := range []string{"", "   ", "\n\t"} {
		reply, err := r.Respond(context.Background(), input)
		if err != nil {
			t.Fatalf("respond(%q): %v", input, err)
		}
		if reply != ValidationMessage {
			t.Fatalf("respond(%q): expected validation message, got %s", input, reply)
		}
	}
}

func TestKeywordResponderCatalogTable(t *testing.T) {
	r := NewKeywordResponder()

	reply, err := r.Respond(context.Background(), "¿Qué servicios ofrecen?")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply == NoMatchMessage || reply == ValidationMessage {
		t.Fatalf("catalog keyword should match, got fallback: %s", reply)
	}
}

func TestKeywordResponderCopiesPairs(t *testing.T) {
	pairs := testPairs()
	r := NewKeywordResponderWithPairs(pairs)
	pairs[0].Answer = "mutated"

	reply, err := r.Respond(context.Background(), "horario")
	if err != nil {
		t.Fatalf("respond: %v", err)
	}
	if reply != "Atendemos de lunes a viernes." {
		t.Fatalf("responder must not see caller mutations, got: %s", reply)
	}
}
