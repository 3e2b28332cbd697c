package auth

// SigninInput is the body of a signin.
type SigninInput struct {
	Mail   string `json:"mail" validate:"required" example:"user1@mail.com"`
	Passwd string `json:"passwd" validate:"required" example:"123456"`
}

// TokenResponse carries the bearer token for /v1 routes.
type TokenResponse struct {
	Token string `json:"token"`
}
