package admin

import "time"

type Admin struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Designation    string    `json:"designation"`
	PasswordHash   string    `json:"-"`
	Role           string    `json:"role"`
	DateOfCreation time.Time `json:"dateOfCreation"`
}

const RoleAdmin = "admin"
