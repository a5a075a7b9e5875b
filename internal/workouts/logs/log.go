package logs

type ExerciseLog struct {
	ID               int `json:"id"`
	Sets             int `json:"sets"`
	Reps             int `json:"reps"`
	Intensity        int `json:"intensity"`
	ExertionScale    int `json:"exertion_scale"`
	ExerciseID       int `json:"exercise_id"`
	WorkoutSessionID int `json:"workout_session_id"`
}

type CreateParams struct {
	ExerciseID    int  `json:"exercise_id" validate:"required,gte=1"`
	Sets          *int `json:"sets" validate:"required,gte=0"`
	Reps          *int `json:"reps" validate:"required,gte=0"`
	Intensity     *int `json:"intensity" validate:"required,gte=0"`
	ExertionScale *int `json:"exertion_scale" validate:"required,gte=0"`
}

// UpdateParams changes the recorded performance. The log's summary is not
// recomputed.
type UpdateParams struct {
	Sets          *int `json:"sets" validate:"omitempty,gte=0"`
	Reps          *int `json:"reps" validate:"omitempty,gte=0"`
	Intensity     *int `json:"intensity" validate:"omitempty,gte=0"`
	ExertionScale *int `json:"exertion_scale" validate:"omitempty,gte=0"`
}
