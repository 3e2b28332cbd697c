package dto

// AccountRead is the stored shape of an account.
type AccountRead struct {
	ID     int64
	Name   string
	UserID int64
}

// AccountCreate is a DTO for creating a new account.
type AccountCreate struct {
	Name   string
	UserID int64
}

// AccountUpdate is a DTO for renaming an account.
type AccountUpdate struct {
	Name *string
}
