package models

// CategoryStat is one row of the per-category breakdown. Only categories
// with at least one task are included.
type CategoryStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

// Stats is the dashboard summary for one user.
type Stats struct {
	TotalTasks      int            `json:"total_tasks"`
	Completed       int            `json:"completed"`
	Pending         int            `json:"pending"`
	InProgress      int            `json:"in_progress"`
	Overdue         int            `json:"overdue"`
	HighPriority    int            `json:"high_priority"`
	CompletionRate  float64        `json:"completion_rate"`
	TasksByCategory []CategoryStat `json:"tasks_by_category"`
}
