package endpoints

import (
	"net/http"

	"support-chat-backend/internal/dto"
	"support-chat-backend/internal/faq"
)

type FAQEndpoints interface {
	Catalog(http.ResponseWriter, *http.Request) error
}

type faqEndpoints struct{}

func NewFAQEndpoints() FAQEndpoints {
	return &faqEndpoints{}
}

func (h *faqEndpoints) Catalog(w http.ResponseWriter, r *http.Request) error {
	return MethodHandler(w, r, map[string]func(http.ResponseWriter, *http.Request) error{
		http.MethodGet: h.handleCatalog,
	})
}

func (h *faqEndpoints) handleCatalog(w http.ResponseWriter, r *http.Request) error {
	entries := faq.Entries()

	out := make([]dto.FAQEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = dto.FAQEntryResponse{
			ID:       e.ID,
			Question: e.Question,
			Answer:   e.Answer,
			Category: e.Category,
			Keywords: e.Keywords,
		}
	}

	return WriteJSON(w, http.StatusOK, dto.FAQListResponse{
		Entries:    out,
		Categories: faq.Categories(),
	})
}
