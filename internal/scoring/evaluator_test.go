package scoring

import (
	"reflect"
	"testing"

	"askhub/internal/domain"
)

func analystTrack() domain.CareerTrack {
	return domain.CareerTrack{
		Name:     "Data Analyst",
		Weights:  map[string]float64{"Technical": 50, "Behavioral": 50},
		Minimums: map[string]float64{"Technical": 0, "Behavioral": 50},
	}
}

func combinedScores(pairs ...PillarScore) PillarScores {
	return PillarScores(pairs)
}

func TestEvaluate_WeightedCompositeAndDowngrade(t *testing.T) {
	scores := combinedScores(
		PillarScore{Pillar: "Technical", Self: 80, Reviewer: 80, Combined: 80},
		PillarScore{Pillar: "Behavioral", Self: 40, Reviewer: 40, Combined: 40},
	)

	res := Evaluate(scores, analystTrack())

	if res.CombinedWeighted != 60 {
		t.Fatalf("expected weighted 60, got %v", res.CombinedWeighted)
	}
	// Mid on the threshold, downgraded once for the Behavioral minimum.
	if res.CareerLevel != domain.LevelJunior {
		t.Fatalf("expected Junior after downgrade, got %s", res.CareerLevel)
	}
	if res.MeetsMinimums {
		t.Fatalf("expected minimums not met")
	}
	wantDelta := map[string]float64{"Technical": 0, "Behavioral": 10}
	if !reflect.DeepEqual(res.DeltaToNextLevel, wantDelta) {
		t.Fatalf("expected deltas %v, got %v", wantDelta, res.DeltaToNextLevel)
	}
}

func TestEvaluate_SingleDowngradeEvenWithMultipleFailures(t *testing.T) {
	track := domain.CareerTrack{
		Name:     "Strict",
		Weights:  map[string]float64{"A": 40, "B": 30, "C": 30},
		Minimums: map[string]float64{"A": 90, "B": 90, "C": 90},
	}
	scores := combinedScores(
		PillarScore{Pillar: "A", Combined: 95},
		PillarScore{Pillar: "B", Combined: 10},
		PillarScore{Pillar: "C", Combined: 10},
	)

	res := Evaluate(scores, track)
	// Weighted 44 -> Junior; two failing minimums still cost one step only.
	if res.CareerLevel != domain.LevelIntern {
		t.Fatalf("expected exactly one downgrade to Intern, got %s", res.CareerLevel)
	}
	if res.MeetsMinimums {
		t.Fatalf("expected minimums not met")
	}
}

func TestEvaluate_MeetsMinimumsKeepsLevel(t *testing.T) {
	scores := combinedScores(
		PillarScore{Pillar: "Technical", Self: 90, Reviewer: 90, Combined: 90},
		PillarScore{Pillar: "Behavioral", Self: 90, Reviewer: 90, Combined: 90},
	)

	res := Evaluate(scores, analystTrack())
	if res.CareerLevel != domain.LevelSpecialist {
		t.Fatalf("expected Specialist, got %s", res.CareerLevel)
	}
	if !res.MeetsMinimums {
		t.Fatalf("expected minimums met")
	}
	if res.DeltaToNextLevel != nil {
		t.Fatalf("expected no deltas when minimums met, got %v", res.DeltaToNextLevel)
	}
}

func TestEvaluate_SideCompositesUseSameWeights(t *testing.T) {
	scores := combinedScores(
		PillarScore{Pillar: "Technical", Self: 100, Reviewer: 50, Combined: 75},
		PillarScore{Pillar: "Behavioral", Self: 60, Reviewer: 0, Combined: 60},
	)

	res := Evaluate(scores, analystTrack())
	if res.SelfWeighted != 80 {
		t.Fatalf("expected self weighted 80, got %v", res.SelfWeighted)
	}
	if res.ReviewerWeighted != 25 {
		t.Fatalf("expected reviewer weighted 25, got %v", res.ReviewerWeighted)
	}
}

func TestEvaluate_UnknownPillarsContributeNothing(t *testing.T) {
	scores := combinedScores(
		PillarScore{Pillar: "Technical", Combined: 80},
		PillarScore{Pillar: "Unmapped", Combined: 100},
	)
	track := domain.CareerTrack{Name: "Partial", Weights: map[string]float64{"Technical": 100}}

	res := Evaluate(scores, track)
	if res.CombinedWeighted != 80 {
		t.Fatalf("expected unmapped pillar to weigh 0, got %v", res.CombinedWeighted)
	}
	if !res.MeetsMinimums {
		t.Fatalf("absent minimums default to 0 and always pass")
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	scores := combinedScores(
		PillarScore{Pillar: "Technical", Combined: 55},
		PillarScore{Pillar: "Behavioral", Combined: 45},
	)
	track := analystTrack()

	first := Evaluate(scores, track)
	second := Evaluate(scores, track)
	if first.CareerLevel != second.CareerLevel || first.MeetsMinimums != second.MeetsMinimums {
		t.Fatalf("evaluate not idempotent: %+v vs %+v", first, second)
	}
}

func TestLevelForScore_Thresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  domain.CareerLevel
	}{
		{0, domain.LevelIntern},
		{19.9, domain.LevelIntern},
		{20, domain.LevelIntern},
		{40, domain.LevelJunior},
		{60, domain.LevelMid},
		{80, domain.LevelSenior},
		{90, domain.LevelSpecialist},
		{100, domain.LevelSpecialist},
	}
	for _, tc := range cases {
		if got := domain.LevelForScore(tc.score); got != tc.want {
			t.Fatalf("score %v: expected %s, got %s", tc.score, tc.want, got)
		}
	}
}
