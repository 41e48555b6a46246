package models

// Role defines the permission level of a portal user
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
	// RoleGuest is the read-only viewer identity; it never carries credentials
	RoleGuest Role = "GUEST"
)

// User defines a member of the organization
type User struct {
	ID        string `json:"id" example:"user-1"`                             // Unique identifier for the user
	Name      string `json:"name" example:"Priya Sharma"`                     // Display name
	Username  string `json:"username" example:"priyasharma"`                  // Login name, unique (case-insensitive)
	Password  string `json:"-"`                                               // Plaintext password (excluded from JSON); empty for the viewer
	Email     string `json:"email,omitempty" example:"priya.s@parivartan-miet.org"`
	Role      Role   `json:"role" example:"MEMBER"`                           // ADMIN, MEMBER or GUEST
	AvatarURL string `json:"avatarUrl" example:"https://ui-avatars.com/api/?name=P"`
}
