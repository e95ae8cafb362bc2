package models

// Admin represents a platform administrator
type Admin struct {
	ID       int    `json:"-" db:"id"`
	AdminID  string `json:"admin_id" db:"admin_id"`
	Username string `json:"username" db:"username"`
	Email    string `json:"email" db:"email"`
}

// NewAdminID generates a public admin identifier
func NewAdminID() string {
	return newPublicID("ADMIN")
}
