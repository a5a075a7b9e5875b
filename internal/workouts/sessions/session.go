package sessions

import "time"

type WorkoutSession struct {
	ID            int       `json:"id"`
	Date          time.Time `json:"date"`
	Comments      string    `json:"comments"`
	UserID        string    `json:"user_id"`
	WorkoutPlanID *int      `json:"workout_plan_id"`
}

// CreateParams creates a session. Date defaults to the creation time.
type CreateParams struct {
	Comments      *string    `json:"comments" validate:"required"`
	Date          *time.Time `json:"date"`
	WorkoutPlanID *int       `json:"workout_plan_id" validate:"omitempty,gte=1"`
}

type UpdateParams struct {
	Date          *time.Time `json:"date"`
	Comments      *string    `json:"comments"`
	WorkoutPlanID *int       `json:"workout_plan_id" validate:"omitempty,gte=1"`
}
