package responder

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	geminiModelName    = "gemini-2.0-flash"
	geminiCallTimeout  = 20 * time.Second
	geminiSystemPrompt = `Eres un asistente virtual amable y profesional de INGELEAN S.A.S., una empresa ubicada en Pereira, Risaralda (Colombia).

Información clave:
- Servicios: desarrollo de software, automatización industrial, mantenimiento preventivo y correctivo, soluciones de hardware e inteligencia artificial.
- Cobertura: Eje Cafetero y todo Colombia.
- Horario: lunes a viernes de 8:00 a.m. a 5:00 p.m.
- Contacto: contacto@ingelean.com | WhatsApp 300 123 4567.
- Experiencia: más de 5 años con pymes, startups y empresas.

Si el usuario saluda, respóndele con cortesía. Si hace preguntas técnicas fuera del contexto empresarial, sugiere hablar con un asesor humano.`
)

// GeminiResponder delegates the reply to a single-shot, non-streaming
// generateContent call. No retries; the call timeout bounds blocking.
type GeminiResponder struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiResponder(ctx context.Context, apiKey string) (*GeminiResponder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiResponder{
		client:  client,
		model:   geminiModelName,
		timeout: geminiCallTimeout,
	}, nil
}

func (r *GeminiResponder) Respond(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return ValidationMessage, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf("Consulta del usuario: %q", message), genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: geminiSystemPrompt}},
		},
	}

	resp, err := r.client.Models.GenerateContent(callCtx, r.model, contents, cfg)
	if err != nil {
		log.Printf("gemini generate content failed: %v", err)
		return UpstreamErrorMessage, ErrUpstream
	}

	text := firstCandidateText(resp)
	if text == "" {
		return NoCandidateMessage, nil
	}
	return text, nil
}

func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}
	for _, part := range candidate.Content.Parts {
		if part != nil && part.Text != "" {
			return part.Text
		}
	}
	return ""
}
