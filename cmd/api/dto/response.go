package dto

// ErrorResponseDTO is the uniform failure body: a human-readable message
// alongside the HTTP status code.
type ErrorResponseDTO struct {
	Message string `json:"message" example:"Dream not found"`
}

type MessageResponseDTO struct {
	Message string `json:"message" example:"Dream deleted"`
}
