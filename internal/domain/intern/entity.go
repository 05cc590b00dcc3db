package intern

import "time"

type Intern struct {
	ID             string       `json:"id"`
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	DOB            time.Time    `json:"dob"`
	Nationality    string       `json:"nationality"`
	InternID       string       `json:"internId"`
	Designation    string       `json:"designation"`
	CurrentAddress string       `json:"currentAddress"`
	DateOfJoining  time.Time    `json:"dateOfJoining"`
	ProfileUpdated bool         `json:"profileUpdated"`
	PasswordHash   string       `json:"-"`
	Role           string       `json:"role"`
	Status         string       `json:"status"`
	Education      []Education  `json:"education"`
	Experience     []Experience `json:"experience"`
}

type Education struct {
	Degree    string `json:"degree"`
	Duration  string `json:"duration"`
	Institute string `json:"institute"`
	Grade     string `json:"grade"`
}

type Experience struct {
	Company  string `json:"company"`
	Duration string `json:"duration"`
	Role     string `json:"role"`
}

const (
	RoleIntern = "intern"

	// StatusApproved gates login; registration leaves status empty until an
	// admin approves the account.
	StatusApproved = "approved"
)

// Designations is the closed set of intern tracks.
var Designations = []string{
	"Frontend", "Backend", "MERN", "MEAN", "Salesforce",
	"Cloud", "Design", "Sale", "Marketing",
}
