package user

type credentialsInput struct {
	Body credentialsRequest
}

type credentialsRequest struct {
	Username string `json:"username" example:"demo" doc:"Account name"`
	Password string `json:"password" example:"secret" doc:"Account password"`
}

type authOutput struct {
	Body AuthResponse
}

type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
