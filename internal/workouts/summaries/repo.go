package summaries

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/gymlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrSummaryNotFound = errors.New("exercise summary not found")
	ErrLogNotFound     = errors.New("exercise log not found")
)

const summaryColumns = `s.id, s.total_sets, s.total_reps, s.total_holds, s.exercise_log_id`

// ownedBy joins a summary (aliased s) to the user owning its log's session.
const ownedBy = `
	JOIN exerciselog l ON l.id = s.exercise_log_id
	JOIN workoutsession ws ON ws.id = l.workout_session_id
`

// Querier is satisfied by both the pool and a pgx transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanSummary(row pgx.Row) (*ExerciseSummary, error) {
	s := &ExerciseSummary{}
	if err := row.Scan(&s.ID, &s.TotalSets, &s.TotalReps, &s.TotalHolds, &s.ExerciseLogID); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *Repo) List(ctx context.Context, userID string) (_ []ExerciseSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summaries.list")
	defer tracing.EndSpanWithErrCheck(span, &err)

	rows, err := r.db.Query(ctx, `
		SELECT `+summaryColumns+`
		FROM exercisesummary s`+ownedBy+`
		WHERE ws.user_id = $1
		ORDER BY s.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]ExerciseSummary, 0)
	for rows.Next() {
		s, err := scanSummary(rows)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *s)
	}

	return summaries, rows.Err()
}

// GetByLog returns the oldest summary of the log.
func (r *Repo) GetByLog(ctx context.Context, logID int, userID string) (_ *ExerciseSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summaries.get-by-log")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("log-id", logID))

	s, err := scanSummary(r.db.QueryRow(ctx, `
		SELECT `+summaryColumns+`
		FROM exercisesummary s`+ownedBy+`
		WHERE s.exercise_log_id = $1 AND ws.user_id = $2
		ORDER BY s.id
		LIMIT 1
	`, logID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSummaryNotFound
		}
		return nil, err
	}

	return s, nil
}

// AddForLog inserts a summary for a log owned by the user. No uniqueness is
// enforced, a log may end up with several summaries.
func (r *Repo) AddForLog(ctx context.Context, logID int, userID string, params CreateParams) (_ *ExerciseSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summaries.add-for-log")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("log-id", logID))

	s, err := scanSummary(r.db.QueryRow(ctx, `
		INSERT INTO exercisesummary AS s (total_sets, total_reps, total_holds, exercise_log_id)
		SELECT $3, $4, $5, l.id
		FROM exerciselog l
		JOIN workoutsession ws ON ws.id = l.workout_session_id
		WHERE l.id = $1 AND ws.user_id = $2
		RETURNING `+summaryColumns,
		logID, userID, *params.TotalSets, *params.TotalReps, *params.TotalHolds,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLogNotFound
		}
		return nil, err
	}

	return s, nil
}

func (r *Repo) Update(ctx context.Context, id int, userID string, params UpdateParams) (_ *ExerciseSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summaries.update")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("id", id))

	s, err := scanSummary(r.db.QueryRow(ctx, `
		UPDATE exercisesummary AS s
		SET total_sets = COALESCE($3, s.total_sets),
		    total_reps = COALESCE($4, s.total_reps),
		    total_holds = COALESCE($5, s.total_holds)
		FROM exerciselog l, workoutsession ws
		WHERE s.id = $1
		  AND l.id = s.exercise_log_id
		  AND ws.id = l.workout_session_id
		  AND ws.user_id = $2
		RETURNING `+summaryColumns,
		id, userID, params.TotalSets, params.TotalReps, params.TotalHolds,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSummaryNotFound
		}
		return nil, err
	}

	return s, nil
}

func (r *Repo) Delete(ctx context.Context, id int, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summaries.delete")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `
		DELETE FROM exercisesummary AS s
		USING exerciselog l, workoutsession ws
		WHERE s.id = $1
		  AND l.id = s.exercise_log_id
		  AND ws.id = l.workout_session_id
		  AND ws.user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrSummaryNotFound
	}

	return nil
}

// Totals sums the logs of the user's sessions dated within [from, to).
// Holds are summed from reps.
func (r *Repo) Totals(ctx context.Context, userID string, from, to time.Time) (_ *Totals, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summaries.totals")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(
		attribute.String("from", from.Format(DateLayout)),
		attribute.String("to", to.Format(DateLayout)),
	)

	t := &Totals{}
	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(l.sets), 0), COALESCE(SUM(l.reps), 0)
		FROM exerciselog l
		JOIN workoutsession ws ON ws.id = l.workout_session_id
		WHERE ws.user_id = $1 AND ws.date >= $2 AND ws.date < $3
	`, userID, from, to).Scan(&t.TotalSets, &t.TotalReps)
	if err != nil {
		return nil, err
	}
	t.TotalHolds = t.TotalReps

	return t, nil
}

// RecordLog gets or creates the summary of a freshly inserted log and adds
// the log's sets and reps to it. It runs on the caller's transaction.
func RecordLog(ctx context.Context, q Querier, logID, sets, reps int) (_ *ExerciseSummary, created bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summaries.record-log")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("log-id", logID))

	s, err := scanSummary(q.QueryRow(ctx, `
		SELECT `+summaryColumns+`
		FROM exercisesummary s
		WHERE s.exercise_log_id = $1
		ORDER BY s.id
		LIMIT 1
		FOR UPDATE
	`, logID))
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, err
	}

	if s == nil {
		seed := Seed(logID, sets, reps)
		s, err = scanSummary(q.QueryRow(ctx, `
			INSERT INTO exercisesummary AS s (total_sets, total_reps, total_holds, exercise_log_id)
			VALUES ($1, $2, $3, $4)
			RETURNING `+summaryColumns,
			seed.TotalSets, seed.TotalReps, seed.TotalHolds, seed.ExerciseLogID,
		))
		if err != nil {
			return nil, false, err
		}
		return s, true, nil
	}

	s.Accumulate(sets, reps)
	if _, err = q.Exec(ctx, `
		UPDATE exercisesummary SET total_sets = $2, total_reps = $3 WHERE id = $1
	`, s.ID, s.TotalSets, s.TotalReps); err != nil {
		return nil, false, err
	}

	return s, false, nil
}
