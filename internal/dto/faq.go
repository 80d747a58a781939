package dto

type FAQEntryResponse struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

type FAQListResponse struct {
	Entries    []FAQEntryResponse `json:"entries"`
	Categories []string           `json:"categories"`
}
