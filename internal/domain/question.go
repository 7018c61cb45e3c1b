package domain

import "time"

const (
	// SchemeDichotomy marks questions scored by the personality classifier.
	SchemeDichotomy = "DICHOTOMY"
	// SchemePillar marks questions scored by the pillar aggregator.
	SchemePillar = "PILLAR"
)

// Question is one prompt of the loaded bank. Immutable after load.
// Dichotomies carries exactly two opposite type codes for DICHOTOMY
// questions; Pillar carries the single competency area for PILLAR ones.
type Question struct {
	ID          int      `json:"id"`
	Scheme      string   `json:"scheme"`
	Text        string   `json:"question"`
	Category    string   `json:"category,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	Pillar      string   `json:"pillar,omitempty"`
	Dichotomies []string `json:"dichotomies,omitempty"`
	OptionSet   string   `json:"option_set,omitempty"`
}

// AnswerRecord is one respondent's input for one question. SelfRating and
// ReviewerRating use the 1-5 Likert scale; zero means not rated. Reviewer
// fields are the only ones mutated after creation.
type AnswerRecord struct {
	QuestionID      int        `json:"question_id"`
	SelectedOptions []int      `json:"selected_options,omitempty"`
	SelfRating      int        `json:"self_rating"`
	SelfNotes       string     `json:"self_notes,omitempty"`
	ReviewerRating  *int       `json:"reviewer_rating,omitempty"`
	ReviewerNotes   string     `json:"reviewer_notes,omitempty"`
	ReviewedBy      *string    `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
}

// AnswerSet maps question id to the answer given for it.
type AnswerSet map[int]AnswerRecord

// Reviewed reports whether a usable reviewer rating is present. A stored
// zero rating counts as not evaluated, matching the evaluation UI rule.
func (a AnswerRecord) Reviewed() bool {
	return a.ReviewerRating != nil && *a.ReviewerRating > 0
}
