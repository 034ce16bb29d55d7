package dto

// DeleteResponse is the body of a successful DELETE /posts/:post_id.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is the common error body for the posts endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
