package models

// Role defines allowed roles in the system
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleChef     Role = "Chef"
	RoleCustomer Role = "Customer"
)

// User is a stored account record. The password is kept in clear text and is
// serialized on GET /users — the demo's admin panel reveals it on click.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// PublicUser is the projection returned by login and signup: the same record
// with the password field absent, not just empty.
type PublicUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Public strips the password for responses that cross into client storage.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
