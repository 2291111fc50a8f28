package entity

import (
	"time"
)

type Role string

const (
	RoleUser       Role = "user"
	RoleTechnician Role = "technician"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleTechnician, RoleAdmin:
		return true
	default:
		return false
	}
}

// User role is fixed at registration and never changed by any operation.
type User struct {
	ID         string `json:"id" firestore:"id"`
	Name       string `json:"name" firestore:"name"`
	Email      string `json:"email" firestore:"email"`
	Role       Role   `json:"role" firestore:"role"`
	Department string `json:"department,omitempty" firestore:"department,omitempty"`
	Phone      string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Avatar     string `json:"avatar,omitempty" firestore:"avatar,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
