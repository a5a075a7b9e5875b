package summaries

import "time"

// DateLayout is the format of week boundaries in requests and responses.
const DateLayout = "2006-01-02"

type ExerciseSummary struct {
	ID            int `json:"id"`
	TotalSets     int `json:"total_sets"`
	TotalReps     int `json:"total_reps"`
	TotalHolds    int `json:"total_holds"`
	ExerciseLogID int `json:"exercise_log_id"`
}

// Seed returns the summary a freshly recorded log starts with. Holds are
// seeded from reps.
func Seed(logID, sets, reps int) ExerciseSummary {
	return ExerciseSummary{
		TotalSets:     sets,
		TotalReps:     reps,
		TotalHolds:    reps,
		ExerciseLogID: logID,
	}
}

// Accumulate adds another performance to an existing summary. Holds are
// left untouched.
func (s *ExerciseSummary) Accumulate(sets, reps int) {
	s.TotalSets += sets
	s.TotalReps += reps
}

type CreateParams struct {
	TotalSets  *int `json:"total_sets" validate:"required,gte=0"`
	TotalReps  *int `json:"total_reps" validate:"required,gte=0"`
	TotalHolds *int `json:"total_holds" validate:"required,gte=0"`
}

type UpdateParams struct {
	TotalSets  *int `json:"total_sets" validate:"omitempty,gte=0"`
	TotalReps  *int `json:"total_reps" validate:"omitempty,gte=0"`
	TotalHolds *int `json:"total_holds" validate:"omitempty,gte=0"`
}

// Totals is an aggregate over all logs recorded in a period.
type Totals struct {
	TotalSets  int `json:"total_sets"`
	TotalReps  int `json:"total_reps"`
	TotalHolds int `json:"total_holds"`
}

type WeeklySummary struct {
	WeekStart string `json:"week_start"`
	WeekEnd   string `json:"week_end"`
	Summary   Totals `json:"summary"`
}

func newWeeklySummary(week Week, totals Totals) WeeklySummary {
	return WeeklySummary{
		WeekStart: week.Start.Format(DateLayout),
		WeekEnd:   week.End.Format(DateLayout),
		Summary:   totals,
	}
}

// Week is a half-open range [Start, End).
type Week struct {
	Start time.Time
	End   time.Time
}
