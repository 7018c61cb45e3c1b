package scoring

import "askhub/internal/domain"

// PillarScore holds the self, reviewer and combined scores of one pillar,
// each on a 0-100 scale.
//
// ReviewerScore is divided by the self-answer count even when reviewer
// coverage is partial, so missing reviewer ratings lower the score instead
// of shrinking the denominator. ReviewerCoverage lets consumers tell
// "unreviewed" apart from "scored low".
type PillarScore struct {
	Pillar           string  `json:"pillar"`
	Self             float64 `json:"self"`
	Reviewer         float64 `json:"reviewer"`
	Combined         float64 `json:"combined"`
	AnsweredCount    int     `json:"answered_count"`
	ReviewerCoverage int     `json:"reviewer_coverage"`
}

// PillarScores lists pillar scores in catalog order.
type PillarScores []PillarScore

// Get returns the score entry for a pillar.
func (p PillarScores) Get(pillar string) (PillarScore, bool) {
	for _, s := range p {
		if s.Pillar == pillar {
			return s, true
		}
	}
	return PillarScore{}, false
}

// CombinedMap returns pillar -> combined score.
func (p PillarScores) CombinedMap() map[string]float64 {
	out := make(map[string]float64, len(p))
	for _, s := range p {
		out[s.Pillar] = s.Combined
	}
	return out
}

// Aggregate computes per-pillar scores from a submitted answer set.
//
// Ratings are shifted to 0-4 (a rating of 1 contributes nothing) and the
// per-question average is scaled by 25 onto 0-100. The combined score
// averages self and reviewer only when reviewer evidence exists.
func Aggregate(answers domain.AnswerSet, catalog *Catalog) PillarScores {
	scores := make(PillarScores, 0, len(catalog.Pillars()))

	for _, pillar := range catalog.Pillars() {
		ps := PillarScore{Pillar: pillar}

		var selfTotal, reviewerTotal float64
		for _, q := range catalog.PillarQuestions(pillar) {
			ans, ok := answers[q.ID]
			if !ok {
				continue
			}
			if shifted := ans.SelfRating - 1; shifted > 0 && ans.SelfRating <= 5 {
				selfTotal += float64(shifted)
				ps.AnsweredCount++
			}
			if ans.Reviewed() {
				ps.ReviewerCoverage++
				if shifted := *ans.ReviewerRating - 1; shifted > 0 && *ans.ReviewerRating <= 5 {
					reviewerTotal += float64(shifted)
				}
			}
		}

		if ps.AnsweredCount > 0 {
			ps.Self = clamp(selfTotal/float64(ps.AnsweredCount)*25, 0, 100)
			ps.Reviewer = clamp(reviewerTotal/float64(ps.AnsweredCount)*25, 0, 100)
			if reviewerTotal > 0 {
				ps.Combined = clamp((ps.Self+ps.Reviewer)/2, 0, 100)
			} else {
				ps.Combined = ps.Self
			}
		}

		scores = append(scores, ps)
	}

	return scores
}
