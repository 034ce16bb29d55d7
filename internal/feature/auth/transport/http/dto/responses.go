package dto

// ErrorResponse is the common error body for the auth endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a generic acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries the issued token pair.
type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}
