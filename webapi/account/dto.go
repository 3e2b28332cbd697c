package account

// AccountInput is the body of account create and rename.
type AccountInput struct {
	Name string `json:"name" validate:"required,max=255" example:"Wallet"`
}
