package dto

// ErrorResponse is the uniform error envelope for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}
