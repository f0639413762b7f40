package models

import "time"

// Roles carried in the signed credential
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type User struct {
	ID        int       `json:"id" example:"1"`                   // User ID
	Name      string    `json:"name" example:"John Doe"`          // Display name
	Email     string    `json:"email" example:"user@example.com"` // User email
	Role      string    `json:"role" example:"member"`            // admin or member
	CreatedAt time.Time `json:"created_at"`
}
