// Package scoring implements the assessment engine: catalog validation,
// dichotomy-based personality classification, pillar aggregation, career
// level evaluation and gap ranking. Everything here is pure computation
// over immutable inputs; no I/O, no logging, no shared state.
package scoring

import (
	"fmt"

	"askhub/internal/domain"
)

// SchemaError reports a question that violates the catalog contract.
// Raised at load time only; scoring never validates.
type SchemaError struct {
	QuestionID int
	Reason     string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("question %d: %s", e.QuestionID, e.Reason)
}

// Catalog indexes a validated question bank into the two groupings the
// engine scores against. Immutable after LoadCatalog.
type Catalog struct {
	questions []domain.Question
	byID      map[int]domain.Question
	dichotomy []domain.Question
	byPillar  map[string][]domain.Question
	pillars   []string
}

// LoadCatalog validates raw questions and builds the catalog indexes.
// Dichotomy questions must carry exactly two distinct known type codes and
// no pillar; pillar questions exactly one pillar and no dichotomy codes.
func LoadCatalog(questions []domain.Question) (*Catalog, error) {
	c := &Catalog{
		byID:     make(map[int]domain.Question, len(questions)),
		byPillar: make(map[string][]domain.Question),
	}

	for _, q := range questions {
		if _, dup := c.byID[q.ID]; dup {
			return nil, &SchemaError{QuestionID: q.ID, Reason: "duplicate question id"}
		}

		switch q.Scheme {
		case domain.SchemeDichotomy:
			if len(q.Dichotomies) != 2 {
				return nil, &SchemaError{QuestionID: q.ID, Reason: fmt.Sprintf("dichotomy question needs exactly 2 codes, got %d", len(q.Dichotomies))}
			}
			if q.Dichotomies[0] == q.Dichotomies[1] {
				return nil, &SchemaError{QuestionID: q.ID, Reason: "dichotomy codes must be distinct"}
			}
			for _, code := range q.Dichotomies {
				if !domain.KnownTypeCode(code) {
					return nil, &SchemaError{QuestionID: q.ID, Reason: fmt.Sprintf("unknown type code %q", code)}
				}
			}
			if q.Pillar != "" {
				return nil, &SchemaError{QuestionID: q.ID, Reason: "dichotomy question must not carry a pillar"}
			}
			c.dichotomy = append(c.dichotomy, q)
		case domain.SchemePillar:
			if q.Pillar == "" {
				return nil, &SchemaError{QuestionID: q.ID, Reason: "pillar question needs a pillar code"}
			}
			if len(q.Dichotomies) != 0 {
				return nil, &SchemaError{QuestionID: q.ID, Reason: "pillar question must not carry dichotomy codes"}
			}
			if _, seen := c.byPillar[q.Pillar]; !seen {
				c.pillars = append(c.pillars, q.Pillar)
			}
			c.byPillar[q.Pillar] = append(c.byPillar[q.Pillar], q)
		default:
			return nil, &SchemaError{QuestionID: q.ID, Reason: fmt.Sprintf("unknown scoring scheme %q", q.Scheme)}
		}

		c.byID[q.ID] = q
		c.questions = append(c.questions, q)
	}

	return c, nil
}

// Questions returns all questions in bank order.
func (c *Catalog) Questions() []domain.Question { return c.questions }

// Question looks up a question by id.
func (c *Catalog) Question(id int) (domain.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// DichotomyQuestions returns classifier questions in bank order.
func (c *Catalog) DichotomyQuestions() []domain.Question { return c.dichotomy }

// Pillars returns pillar codes in first-appearance order. This order fixes
// the minimum-bar scan order of the evaluator.
func (c *Catalog) Pillars() []string { return c.pillars }

// PillarQuestions returns the questions of one pillar in bank order.
func (c *Catalog) PillarQuestions(pillar string) []domain.Question {
	return c.byPillar[pillar]
}
