package plans

type WorkoutPlan struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UserID      string `json:"user_id"`
}

type CreateParams struct {
	Name        string  `json:"name" validate:"required,max=25"`
	Description *string `json:"description" validate:"required"`
}

// UpdateParams holds a partial update, nil fields are left untouched.
type UpdateParams struct {
	Name        *string `json:"name" validate:"omitempty,max=25"`
	Description *string `json:"description"`
}
