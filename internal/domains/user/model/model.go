package model

import "cinetix/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldFullName  = "full_name"
	FieldPassword  = "password"
	FieldRole      = "role"
	FieldActive    = "active"
	FieldLastLogin = "last_login"
)

type User struct {
	ID        string  `db:"id"`
	Email     string  `db:"email"`
	FullName  string  `db:"full_name"`
	Password  string  `db:"password"`
	Role      string  `db:"role"`
	Active    bool    `db:"active"`
	LastLogin *string `db:"last_login"`
	model.Metadata
}
