package attendance

import "time"

// Attendance is one (intern, date) timesheet row. InternID is a denormalized
// string reference; historical rows may hold either the intern's storage id
// or the business id (OM...), so readers match on both.
type Attendance struct {
	ID       string    `json:"id"`
	InternID string    `json:"internId"`
	Date     time.Time `json:"date"`
	Hours    *float64  `json:"hours,omitempty"`
	DayTask  *string   `json:"dayTask,omitempty"`
}
