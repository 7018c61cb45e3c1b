package scoring

import (
	"sort"

	"askhub/internal/domain"
)

// gapThreshold is the unshifted self-rating below which a skill counts as
// a gap.
const gapThreshold = 3

// maxGaps bounds the ranked gap list.
const maxGaps = 5

// GapEntry is one under-performing skill area, ranked by track-weighted
// remediation priority.
type GapEntry struct {
	QuestionID    int     `json:"question_id"`
	Question      string  `json:"question"`
	Pillar        string  `json:"pillar"`
	SelfRating    int     `json:"self_rating"`
	GapMagnitude  int     `json:"gap_magnitude"`
	PillarWeight  float64 `json:"pillar_weight"`
	PriorityScore float64 `json:"priority_score"`
}

// RankGaps returns the top skill gaps for the selected track, at most five,
// sorted by priority with bank order as the stable tie-break.
func RankGaps(answers domain.AnswerSet, catalog *Catalog, track domain.CareerTrack) []GapEntry {
	var gaps []GapEntry

	for _, q := range catalog.Questions() {
		if q.Scheme != domain.SchemePillar {
			continue
		}
		ans, ok := answers[q.ID]
		if !ok || ans.SelfRating < 1 || ans.SelfRating >= gapThreshold {
			continue
		}
		magnitude := gapThreshold - ans.SelfRating
		weight := track.Weight(q.Pillar)
		gaps = append(gaps, GapEntry{
			QuestionID:    q.ID,
			Question:      q.Text,
			Pillar:        q.Pillar,
			SelfRating:    ans.SelfRating,
			GapMagnitude:  magnitude,
			PillarWeight:  weight,
			PriorityScore: float64(magnitude) * weight,
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return gaps[i].PriorityScore > gaps[j].PriorityScore
	})

	if len(gaps) > maxGaps {
		gaps = gaps[:maxGaps]
	}
	return gaps
}
