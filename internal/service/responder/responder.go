// Package responder produces the bot reply for a free-text widget message.
// Two interchangeable strategies exist: a fixed keyword table and a delegated
// Gemini call. Both degrade to canned Spanish messages instead of failing.
package responder

import (
	"context"
	"errors"
)

const (
	// ValidationMessage answers empty or unusable input.
	ValidationMessage = "❌ Por favor, envía un mensaje válido."

	// NoMatchMessage answers messages no keyword covers.
	NoMatchMessage = "🤖 No tengo una respuesta para esa pregunta. ¿Te gustaría hablar con un asesor humano? Escríbenos a contacto@ingelean.com."

	// NoCandidateMessage answers when the model returns nothing usable.
	NoCandidateMessage = "🤖 No tengo una respuesta clara en este momento. ¿Te gustaría que te contacte un asesor humano?"

	// UpstreamErrorMessage answers when the delegated call fails outright.
	UpstreamErrorMessage = "❌ Ocurrió un error al generar la respuesta. Por favor intenta nuevamente."
)

// ErrUpstream marks replies produced because the delegated model call failed.
// The reply string is still usable; callers decide the status code.
var ErrUpstream = errors.New("responder: upstream failure")

// Responder turns a user message into a reply. Implementations never panic
// and always return a presentable reply string, even alongside ErrUpstream.
type Responder interface {
	Respond(ctx context.Context, message string) (string, error)
}
