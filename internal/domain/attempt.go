package domain

import "time"

// TestAttempt is one submitted skill assessment. Answers are created once
// with the attempt; only their reviewer fields change afterwards, and the
// stored aggregate is recomputed together with each reviewer update.
type TestAttempt struct {
	ID            string      `json:"id"`
	Username      string      `json:"username"`
	Track         string      `json:"track"`
	CareerLevel   CareerLevel `json:"career_level"`
	WeightedScore float64     `json:"weighted_score"`
	Answers       AnswerSet   `json:"answers"`
	SubmittedAt   time.Time   `json:"submitted_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// ReviewProgress counts how many answers carry a usable reviewer rating.
func (a TestAttempt) ReviewProgress() (reviewed, total int) {
	for _, ans := range a.Answers {
		total++
		if ans.Reviewed() {
			reviewed++
		}
	}
	return reviewed, total
}
