package dto

// APIErrorResponse is the body of every 4xx/5xx response, except missing fields which keep their historical shape.
type APIErrorResponse struct {
	Error string `json:"error"`
}

type APIMissingFieldsResponse struct {
	Message string `json:"message"`
}

const (
	MissingFieldsMessage       = "Missing required fields"
	InternalServerErrorMessage = "Internal Server Error"
)
