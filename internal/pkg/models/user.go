package models

// User represents a hospital staff member. HospitalRef is the internal
// surrogate key of the hospital the user belongs to and is never serialized.
type User struct {
	ID          int    `json:"-" db:"id"`
	WorkID      string `json:"work_id" db:"work_id"`
	FirstName   string `json:"first_name" db:"first_name"`
	LastName    string `json:"last_name" db:"last_name"`
	Email       string `json:"email" db:"email"`
	Occupation  string `json:"occupation" db:"occupation"`
	Department  string `json:"department" db:"department"`
	HospitalRef int    `json:"-" db:"hospital_id"`
}

// UserProfile is the outward projection of a User: the hospital's public
// identifier is substituted for the internal foreign key.
type UserProfile struct {
	WorkID     string `json:"work_id" db:"work_id"`
	FirstName  string `json:"first_name" db:"first_name"`
	LastName   string `json:"last_name" db:"last_name"`
	Email      string `json:"email" db:"email"`
	Occupation string `json:"occupation" db:"occupation"`
	Department string `json:"department" db:"department"`
	HospitalID string `json:"hospital_id" db:"hospital_id"`
}
