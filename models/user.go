package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	FullName string `gorm:"not null"`
	Email    string `gorm:"not null;unique"`
	Password string `gorm:"not null" json:"-"`
	IsActive bool   `gorm:"not null;default:true"`
}

// Identity is the decoded token payload attached to the request context.
// Role is the role claim embedded at issuance; it is not re-checked against
// the users table, so it can lag the admin set by up to the token lifetime.
type Identity struct {
	ID    uint
	Email string
	Role  string
}
