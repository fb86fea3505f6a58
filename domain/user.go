// Package domain holds the client-side copies of the platform's entities.
// All of them are server-owned; the structs here mirror the gateway's JSON
// contract and are never authoritative.
package domain

// Role is the account role assigned at registration.
type Role string

const (
	RoleStartup  Role = "STARTUP"
	RoleInvestor Role = "INVESTOR"
	RoleAdmin    Role = "ADMIN"
)

// User is the identity record persisted alongside the access token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Registration is the account creation payload.
type Registration struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     Role   `json:"role" validate:"required,oneof=STARTUP INVESTOR"`
}

// LoginResponse is the gateway's answer to a successful login. The user
// object is rebuilt client-side from the flat fields, as the backend does
// not send one.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

// User assembles the identity record from the flat response fields.
func (r LoginResponse) User() User {
	return User{ID: r.UserID, Email: r.Email, Role: r.Role}
}

// Profile is the full account record behind /api/users/me.
type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	FirstName string `json:"prenom,omitempty"`
	LastName  string `json:"nom,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}
