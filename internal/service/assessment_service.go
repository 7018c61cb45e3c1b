package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"askhub/internal/domain"
	"askhub/internal/questionbank"
	"askhub/internal/repository"
	"askhub/internal/scoring"
)

var (
	ErrUnknownTrack   = errors.New("unknown career track")
	ErrEmptyAnswers   = errors.New("attempt has no answers")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrUnknownAnswer  = errors.New("answer does not belong to the question bank")
	ErrNoAttemptFound = errors.New("no attempt found")
)

// AssessmentService runs the scoring engine over submitted attempts and
// keeps the persisted aggregate in step with reviewer evaluations.
type AssessmentService struct {
	bank     *questionbank.Bank
	attempts repository.AttemptRepository
	cache    ResultCache
	logger   *zap.Logger
}

func NewAssessmentService(bank *questionbank.Bank, attempts repository.AttemptRepository, cache ResultCache, logger *zap.Logger) *AssessmentService {
	if cache == nil {
		cache = NewMemoryResultCache()
	}
	return &AssessmentService{
		bank:     bank,
		attempts: attempts,
		cache:    cache,
		logger:   logger,
	}
}

// SubmissionResult bundles everything a fresh submission produces.
type SubmissionResult struct {
	Attempt        domain.TestAttempt  `json:"attempt"`
	Level          scoring.LevelResult `json:"level"`
	Gaps           []scoring.GapEntry  `json:"gaps"`
	Classification scoring.ScoreResult `json:"classification"`
}

// SubmitAttempt scores an answer set against the explicitly selected track
// and persists the attempt together with its resolved aggregate.
func (s *AssessmentService) SubmitAttempt(ctx context.Context, username, trackName string, answers domain.AnswerSet) (SubmissionResult, error) {
	if len(answers) == 0 {
		return SubmissionResult{}, ErrEmptyAnswers
	}
	track, ok := s.bank.Track(trackName)
	if !ok {
		return SubmissionResult{}, fmt.Errorf("%w: %q", ErrUnknownTrack, trackName)
	}
	catalog := s.bank.Catalog()
	for id := range answers {
		if _, ok := catalog.Question(id); !ok {
			return SubmissionResult{}, fmt.Errorf("question %d: %w", id, ErrUnknownAnswer)
		}
	}

	level := scoring.Evaluate(scoring.Aggregate(answers, catalog), track)
	gaps := scoring.RankGaps(answers, catalog, track)
	classification := scoring.Classify(answers, catalog)

	now := time.Now().UTC()
	attempt := domain.TestAttempt{
		ID:            uuid.NewString(),
		Username:      username,
		Track:         track.Name,
		CareerLevel:   level.CareerLevel,
		WeightedScore: level.CombinedWeighted,
		Answers:       answers,
		SubmittedAt:   now,
		UpdatedAt:     now,
	}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		return SubmissionResult{}, fmt.Errorf("store attempt: %w", err)
	}

	s.cache.Set(ctx, username, level)
	s.logger.Info("attempt submitted",
		zap.String("attempt_id", attempt.ID),
		zap.String("username", username),
		zap.String("track", track.Name),
		zap.String("career_level", string(level.CareerLevel)),
		zap.Float64("weighted_score", level.CombinedWeighted),
	)

	return SubmissionResult{
		Attempt:        attempt,
		Level:          level,
		Gaps:           gaps,
		Classification: classification,
	}, nil
}

// ApplyReviewerRating records one reviewer evaluation and recomputes the
// stored aggregate inside the same transaction, so the new rating and the
// new level become visible together.
func (s *AssessmentService) ApplyReviewerRating(ctx context.Context, attemptID string, questionID, rating int, notes, reviewedBy string) (domain.TestAttempt, error) {
	if rating < 1 || rating > 5 {
		return domain.TestAttempt{}, ErrInvalidRating
	}

	attempt, err := s.attempts.GetByID(ctx, attemptID)
	if errors.Is(err, repository.ErrAttemptNotFound) {
		return domain.TestAttempt{}, ErrNoAttemptFound
	}
	if err != nil {
		return domain.TestAttempt{}, err
	}
	track, ok := s.bank.Track(attempt.Track)
	if !ok {
		return domain.TestAttempt{}, fmt.Errorf("%w: %q", ErrUnknownTrack, attempt.Track)
	}

	update := repository.ReviewerUpdate{
		QuestionID: questionID,
		Rating:     rating,
		Notes:      notes,
		ReviewedBy: reviewedBy,
	}
	recompute := func(answers domain.AnswerSet) (domain.CareerLevel, float64) {
		level := scoring.Evaluate(scoring.Aggregate(answers, s.bank.Catalog()), track)
		return level.CareerLevel, level.CombinedWeighted
	}

	updated, err := s.attempts.ApplyReviewerUpdate(ctx, attemptID, update, recompute)
	if errors.Is(err, repository.ErrAttemptNotFound) {
		return domain.TestAttempt{}, ErrNoAttemptFound
	}
	if err != nil {
		return domain.TestAttempt{}, fmt.Errorf("apply reviewer update: %w", err)
	}

	s.cache.Invalidate(ctx, updated.Username)
	reviewed, total := updated.ReviewProgress()
	s.logger.Info("reviewer rating applied",
		zap.String("attempt_id", attemptID),
		zap.Int("question_id", questionID),
		zap.Int("reviewed", reviewed),
		zap.Int("total", total),
	)
	return updated, nil
}

// LatestResult returns the level evaluation of the subject's most recent
// attempt, served from cache when possible.
func (s *AssessmentService) LatestResult(ctx context.Context, username string) (scoring.LevelResult, error) {
	if res, ok := s.cache.Get(ctx, username); ok {
		return res, nil
	}

	attempt, err := s.latestAttempt(ctx, username)
	if err != nil {
		return scoring.LevelResult{}, err
	}
	track, ok := s.bank.Track(attempt.Track)
	if !ok {
		return scoring.LevelResult{}, fmt.Errorf("%w: %q", ErrUnknownTrack, attempt.Track)
	}

	res := scoring.Evaluate(scoring.Aggregate(attempt.Answers, s.bank.Catalog()), track)
	s.cache.Set(ctx, username, res)
	return res, nil
}

// LatestGaps ranks skill gaps from the subject's most recent attempt.
func (s *AssessmentService) LatestGaps(ctx context.Context, username string) ([]scoring.GapEntry, error) {
	attempt, err := s.latestAttempt(ctx, username)
	if err != nil {
		return nil, err
	}
	track, ok := s.bank.Track(attempt.Track)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTrack, attempt.Track)
	}
	return scoring.RankGaps(attempt.Answers, s.bank.Catalog(), track), nil
}

// LatestClassification runs the personality classifier over the subject's
// most recent attempt.
func (s *AssessmentService) LatestClassification(ctx context.Context, username string) (scoring.ScoreResult, error) {
	attempt, err := s.latestAttempt(ctx, username)
	if err != nil {
		return scoring.ScoreResult{}, err
	}
	return scoring.Classify(attempt.Answers, s.bank.Catalog()), nil
}

// Attempt fetches one attempt with its review progress.
func (s *AssessmentService) Attempt(ctx context.Context, attemptID string) (domain.TestAttempt, error) {
	attempt, err := s.attempts.GetByID(ctx, attemptID)
	if errors.Is(err, repository.ErrAttemptNotFound) {
		return domain.TestAttempt{}, ErrNoAttemptFound
	}
	return attempt, err
}

// Tracks lists the configured career tracks in bank order.
func (s *AssessmentService) Tracks() []domain.CareerTrack { return s.bank.Tracks }

// Questions lists the loaded question bank.
func (s *AssessmentService) Questions() []domain.Question { return s.bank.Questions }

func (s *AssessmentService) latestAttempt(ctx context.Context, username string) (domain.TestAttempt, error) {
	attempt, err := s.attempts.LatestByUsername(ctx, username)
	if errors.Is(err, repository.ErrAttemptNotFound) {
		return domain.TestAttempt{}, ErrNoAttemptFound
	}
	if err != nil {
		return domain.TestAttempt{}, fmt.Errorf("load latest attempt: %w", err)
	}
	return attempt, nil
}
