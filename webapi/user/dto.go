package user

// NewUser is the body of a signup.
type NewUser struct {
	Name   string `json:"name" validate:"required,max=255" example:"User #1"`
	Mail   string `json:"mail" validate:"required,max=255" example:"user1@mail.com"`
	Passwd string `json:"passwd" validate:"required,max=72" example:"123456"`
}
