package trip

import "time"

const (
	StatusPlanning  = "planning"
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

type Trip struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Status      string    `json:"status"`
	CoverImage  string    `json:"cover_image"`
	IsPublic    bool      `json:"is_public"`
	TotalBudget float64   `json:"total_budget"`
	Cities      []string  `json:"cities"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
