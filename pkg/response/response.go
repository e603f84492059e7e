package response

type ErrorResponse struct {
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Token string `json:"token"`
	UID   uint   `json:"user_id"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
