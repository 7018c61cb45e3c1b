package scoring

import (
	"sort"

	"askhub/internal/domain"
)

// TypeScore pairs a personality type code with its normalized score.
type TypeScore struct {
	Code  string  `json:"code"`
	Score float64 `json:"score"`
}

// CategoryBreakdown summarizes one of the four type categories.
type CategoryBreakdown struct {
	Category string  `json:"category"`
	Average  float64 `json:"average"`
	TopCode  string  `json:"top_code"`
	TopScore float64 `json:"top_score"`
}

// ScoreResult is the classifier output. Scores are normalized to 0-1000
// per type; Ranking is descending with definition-order tie-break.
type ScoreResult struct {
	ScoresByType map[string]float64  `json:"scores_by_type"`
	PrimaryType  string              `json:"primary_type"`
	Ranking      []TypeScore         `json:"ranking"`
	Top5         []TypeScore         `json:"top5"`
	Bottom5      []TypeScore         `json:"bottom5"`
	Categories   []CategoryBreakdown `json:"categories"`
}

// Classify distributes Likert evidence over dichotomy pairs and normalizes
// each type onto 0-1000 against its own question ceiling.
//
// A rating on a pair (A, B) reads as agreement with the A-leaning statement:
// disagreement counts as evidence for B, neutral as weak evidence for both.
func Classify(answers domain.AnswerSet, catalog *Catalog) ScoreResult {
	raw := make(map[string]float64, len(domain.PersonalityTypes))
	assigned := make(map[string]int, len(domain.PersonalityTypes))

	for _, q := range catalog.DichotomyQuestions() {
		ans, ok := answers[q.ID]
		if !ok || ans.SelfRating < 1 || ans.SelfRating > 5 {
			continue
		}
		a, b := q.Dichotomies[0], q.Dichotomies[1]
		assigned[a]++
		assigned[b]++
		switch ans.SelfRating {
		case 1:
			raw[b] += 2.0
		case 2:
			raw[b] += 1.0
		case 3:
			raw[a] += 0.5
			raw[b] += 0.5
		case 4:
			raw[a] += 1.0
		case 5:
			raw[a] += 2.0
		}
	}

	scores := make(map[string]float64, len(domain.PersonalityTypes))
	for _, pt := range domain.PersonalityTypes {
		maxPossible := float64(assigned[pt.Code]) * 2.0
		if maxPossible <= 0 {
			scores[pt.Code] = 0
			continue
		}
		scores[pt.Code] = clamp(clamp(raw[pt.Code], 0, maxPossible)/maxPossible*1000, 0, 1000)
	}

	// Definition order breaks ties for both the ranking and the primary
	// type, so identical inputs always classify identically.
	ranking := make([]TypeScore, 0, len(domain.PersonalityTypes))
	for _, pt := range domain.PersonalityTypes {
		ranking = append(ranking, TypeScore{Code: pt.Code, Score: scores[pt.Code]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Score > ranking[j].Score
	})

	return ScoreResult{
		ScoresByType: scores,
		PrimaryType:  ranking[0].Code,
		Ranking:      ranking,
		Top5:         ranking[:min(5, len(ranking))],
		Bottom5:      ranking[max(0, len(ranking)-5):],
		Categories:   categoryBreakdowns(scores),
	}
}

func categoryBreakdowns(scores map[string]float64) []CategoryBreakdown {
	order := []string{
		domain.TypeCategoryTechnical,
		domain.TypeCategoryCollaborative,
		domain.TypeCategoryLeadership,
		domain.TypeCategoryCreative,
	}

	out := make([]CategoryBreakdown, 0, len(order))
	for _, cat := range order {
		b := CategoryBreakdown{Category: cat}
		count := 0
		for _, pt := range domain.PersonalityTypes {
			if pt.Category != cat {
				continue
			}
			s := scores[pt.Code]
			b.Average += s
			if count == 0 || s > b.TopScore {
				b.TopCode = pt.Code
				b.TopScore = s
			}
			count++
		}
		if count > 0 {
			b.Average /= float64(count)
		}
		out = append(out, b)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
