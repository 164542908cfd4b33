package auth

import "context"

// Role distinguishes the two account types that can log in.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login verifies the credentials for the given role and returns a
	// signed token.
	Login(ctx context.Context, email, password string, role Role) (string, error)
}
