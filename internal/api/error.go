package api

type HTTPError struct {
	StatusCode int
	Message    string
	ErrorLog   error
}

func (e *HTTPError) Error() string {
	return e.Message
}

// ApiError is the body every failed request gets: {"error": "..."}.
type ApiError struct {
	Error string `json:"error"`
}
