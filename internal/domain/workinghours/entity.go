package workinghours

// MonthlyHours is an admin-supplied override replacing the computed
// working-hours figure for one (month, year). At most one row per pair.
type MonthlyHours struct {
	ID    string  `json:"id"`
	Month int     `json:"month"`
	Year  int     `json:"year"`
	Hours float64 `json:"hours"`
}
