package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"askhub/internal/domain"
)

var ErrAttemptNotFound = errors.New("attempt not found")

// ReviewerUpdate is one reviewer evaluation of a single answer.
type ReviewerUpdate struct {
	QuestionID int
	Rating     int
	Notes      string
	ReviewedBy string
}

// Recompute derives the stored aggregate from the attempt's answers. It
// runs inside the reviewer-update transaction so readers never observe a
// fresh reviewer rating next to a stale aggregate.
type Recompute func(answers domain.AnswerSet) (domain.CareerLevel, float64)

type AttemptRepository interface {
	Create(ctx context.Context, attempt domain.TestAttempt) error
	GetByID(ctx context.Context, id string) (domain.TestAttempt, error)
	LatestByUsername(ctx context.Context, username string) (domain.TestAttempt, error)
	ApplyReviewerUpdate(ctx context.Context, attemptID string, update ReviewerUpdate, recompute Recompute) (domain.TestAttempt, error)
}

type PgAttemptRepository struct {
	pool *pgxpool.Pool
}

func NewPgAttemptRepository(pool *pgxpool.Pool) *PgAttemptRepository {
	return &PgAttemptRepository{pool: pool}
}

// Create stores the attempt and its answer rows in one transaction. The
// answer set is append-only afterwards; only reviewer fields ever change.
func (r *PgAttemptRepository) Create(ctx context.Context, attempt domain.TestAttempt) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		const insertAttempt = `
			INSERT INTO attempts (id, username, track, career_level, weighted_score, submitted_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`
		if _, err := tx.Exec(ctx, insertAttempt,
			attempt.ID,
			attempt.Username,
			attempt.Track,
			attempt.CareerLevel,
			attempt.WeightedScore,
			attempt.SubmittedAt,
			attempt.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert attempt: %w", err)
		}

		const insertAnswer = `
			INSERT INTO attempt_answers
				(attempt_id, question_id, selected_options, self_rating, self_notes,
				 reviewer_rating, reviewer_notes, reviewed_by, reviewed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`
		for _, ans := range attempt.Answers {
			if _, err := tx.Exec(ctx, insertAnswer,
				attempt.ID,
				ans.QuestionID,
				ans.SelectedOptions,
				ans.SelfRating,
				ans.SelfNotes,
				ans.ReviewerRating,
				ans.ReviewerNotes,
				ans.ReviewedBy,
				ans.ReviewedAt,
			); err != nil {
				return fmt.Errorf("insert answer %d: %w", ans.QuestionID, err)
			}
		}
		return nil
	})
}

func (r *PgAttemptRepository) GetByID(ctx context.Context, id string) (domain.TestAttempt, error) {
	const query = `
		SELECT id, username, track, career_level, weighted_score, submitted_at, updated_at
		FROM attempts
		WHERE id = $1
	`
	attempt, err := scanAttempt(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return domain.TestAttempt{}, err
	}
	attempt.Answers, err = r.loadAnswers(ctx, r.pool, attempt.ID)
	return attempt, err
}

func (r *PgAttemptRepository) LatestByUsername(ctx context.Context, username string) (domain.TestAttempt, error) {
	const query = `
		SELECT id, username, track, career_level, weighted_score, submitted_at, updated_at
		FROM attempts
		WHERE username = $1
		ORDER BY submitted_at DESC
		LIMIT 1
	`
	attempt, err := scanAttempt(r.pool.QueryRow(ctx, query, username))
	if err != nil {
		return domain.TestAttempt{}, err
	}
	attempt.Answers, err = r.loadAnswers(ctx, r.pool, attempt.ID)
	return attempt, err
}

// ApplyReviewerUpdate writes one reviewer rating and the recomputed
// aggregate atomically. The attempt row is locked for the duration so
// concurrent reviewer updates to the same attempt serialize instead of
// racing on the recompute.
func (r *PgAttemptRepository) ApplyReviewerUpdate(ctx context.Context, attemptID string, update ReviewerUpdate, recompute Recompute) (domain.TestAttempt, error) {
	var updated domain.TestAttempt

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		const lockAttempt = `
			SELECT id, username, track, career_level, weighted_score, submitted_at, updated_at
			FROM attempts
			WHERE id = $1
			FOR UPDATE
		`
		attempt, err := scanAttempt(tx.QueryRow(ctx, lockAttempt, attemptID))
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		const updateAnswer = `
			UPDATE attempt_answers
			SET reviewer_rating = $1, reviewer_notes = $2, reviewed_by = $3, reviewed_at = $4
			WHERE attempt_id = $5 AND question_id = $6
		`
		tag, err := tx.Exec(ctx, updateAnswer,
			update.Rating,
			update.Notes,
			update.ReviewedBy,
			now,
			attemptID,
			update.QuestionID,
		)
		if err != nil {
			return fmt.Errorf("update answer: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("question %d: %w", update.QuestionID, ErrAttemptNotFound)
		}

		answers, err := r.loadAnswers(ctx, tx, attemptID)
		if err != nil {
			return err
		}

		level, weighted := recompute(answers)
		const updateAttempt = `
			UPDATE attempts
			SET career_level = $1, weighted_score = $2, updated_at = $3
			WHERE id = $4
		`
		if _, err := tx.Exec(ctx, updateAttempt, level, weighted, now, attemptID); err != nil {
			return fmt.Errorf("update aggregate: %w", err)
		}

		attempt.Answers = answers
		attempt.CareerLevel = level
		attempt.WeightedScore = weighted
		attempt.UpdatedAt = now
		updated = attempt
		return nil
	})

	return updated, err
}

type rowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PgAttemptRepository) loadAnswers(ctx context.Context, q rowQuerier, attemptID string) (domain.AnswerSet, error) {
	const query = `
		SELECT question_id, selected_options, self_rating, self_notes,
		       reviewer_rating, reviewer_notes, reviewed_by, reviewed_at
		FROM attempt_answers
		WHERE attempt_id = $1
		ORDER BY question_id
	`
	rows, err := q.Query(ctx, query, attemptID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	answers := make(domain.AnswerSet)
	for rows.Next() {
		var ans domain.AnswerRecord
		if err := rows.Scan(
			&ans.QuestionID,
			&ans.SelectedOptions,
			&ans.SelfRating,
			&ans.SelfNotes,
			&ans.ReviewerRating,
			&ans.ReviewerNotes,
			&ans.ReviewedBy,
			&ans.ReviewedAt,
		); err != nil {
			return nil, err
		}
		answers[ans.QuestionID] = ans
	}
	return answers, rows.Err()
}

func scanAttempt(row pgx.Row) (domain.TestAttempt, error) {
	var attempt domain.TestAttempt
	err := row.Scan(
		&attempt.ID,
		&attempt.Username,
		&attempt.Track,
		&attempt.CareerLevel,
		&attempt.WeightedScore,
		&attempt.SubmittedAt,
		&attempt.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.TestAttempt{}, ErrAttemptNotFound
	}
	return attempt, err
}
