package models

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#6c757d"

type Category struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
}

// DefaultCategories are seeded once for every new user at registration.
var DefaultCategories = []Category{
	{Name: "Work", Color: "#0d6efd"},
	{Name: "Personal", Color: "#198754"},
	{Name: "Shopping", Color: "#ffc107"},
	{Name: "Health", Color: "#dc3545"},
}
