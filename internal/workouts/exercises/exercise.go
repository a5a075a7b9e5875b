package exercises

type Exercise struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	MuscleGroup string `json:"muscle_group"`
	UserID      string `json:"user_id"`
}

type CreateParams struct {
	Name        string  `json:"name" validate:"required,max=50"`
	Description *string `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required,max=50"`
	MuscleGroup string  `json:"muscle_group" validate:"required,max=50"`
}

type UpdateParams struct {
	Name        *string `json:"name" validate:"omitempty,max=50"`
	Description *string `json:"description"`
	Category    *string `json:"category" validate:"omitempty,max=50"`
	MuscleGroup *string `json:"muscle_group" validate:"omitempty,max=50"`
}
