package scoring

import "askhub/internal/domain"

// LevelResult is the career level evaluation for one track.
//
// SelfWeighted and ReviewerWeighted use the same weight map as the combined
// composite but are display-only: the level and the minimum-bar check are
// driven by the combined scores alone.
type LevelResult struct {
	Track            string             `json:"track"`
	PillarScores     PillarScores       `json:"pillar_scores"`
	SelfWeighted     float64            `json:"self_weighted"`
	ReviewerWeighted float64            `json:"reviewer_weighted"`
	CombinedWeighted float64            `json:"combined_weighted"`
	CareerLevel      domain.CareerLevel `json:"career_level"`
	MeetsMinimums    bool               `json:"meets_minimums"`
	DeltaToNextLevel map[string]float64 `json:"delta_to_next_level,omitempty"`
}

// Evaluate resolves a career level from aggregated pillar scores and the
// explicitly selected track.
//
// The minimum-bar check scans pillars in catalog order and applies at most
// a single one-step downgrade on the first failing pillar, then stops.
// Inherited behavior: further failing pillars never downgrade again.
func Evaluate(scores PillarScores, track domain.CareerTrack) LevelResult {
	res := LevelResult{
		Track:         track.Name,
		PillarScores:  scores,
		MeetsMinimums: true,
	}

	for _, ps := range scores {
		w := track.Weight(ps.Pillar)
		res.SelfWeighted += ps.Self * w / 100
		res.ReviewerWeighted += ps.Reviewer * w / 100
		res.CombinedWeighted += ps.Combined * w / 100
	}

	res.CareerLevel = domain.LevelForScore(res.CombinedWeighted)

	for _, ps := range scores {
		if ps.Combined < track.Minimum(ps.Pillar) {
			res.MeetsMinimums = false
			res.CareerLevel = res.CareerLevel.Downgrade()
			break
		}
	}

	if !res.MeetsMinimums {
		res.DeltaToNextLevel = make(map[string]float64, len(scores))
		for _, ps := range scores {
			delta := track.Minimum(ps.Pillar) - ps.Combined
			if delta < 0 {
				delta = 0
			}
			res.DeltaToNextLevel[ps.Pillar] = delta
		}
	}

	return res
}
