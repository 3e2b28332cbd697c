package dto

// UserRead is the stored shape of a user. Passwd is the bcrypt hash.
type UserRead struct {
	ID     int64
	Name   string
	Mail   string
	Passwd string
}

// UserCreate is a DTO for inserting a user whose password is already hashed.
type UserCreate struct {
	Name   string
	Mail   string
	Passwd string
}
