package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type CreatedResponse struct {
	ID string `json:"id"`
}
