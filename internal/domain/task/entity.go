package task

import "time"

// Task is a daily assignment. Designation and InternID are independent
// optional filters: a task may target a whole track, a single intern, both,
// or neither.
type Task struct {
	ID          string    `json:"id"`
	Designation *string   `json:"designation,omitempty"`
	InternID    *string   `json:"internId,omitempty"`
	Date        time.Time `json:"date"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// TaskStatus is an append-only progress assertion for (intern, task). There
// is no uniqueness constraint; multiple rows per pair are valid history.
type TaskStatus struct {
	ID       string    `json:"id"`
	InternID string    `json:"internId"`
	TaskID   string    `json:"taskId"`
	Status   string    `json:"status"`
	Date     time.Time `json:"date"`
}
