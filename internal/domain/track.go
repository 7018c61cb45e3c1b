package domain

// CareerLevel is one step of the progression ladder.
type CareerLevel string

const (
	LevelIntern     CareerLevel = "Intern"
	LevelJunior     CareerLevel = "Junior"
	LevelMid        CareerLevel = "Mid"
	LevelSenior     CareerLevel = "Senior"
	LevelSpecialist CareerLevel = "Specialist"
)

// careerLadder lists levels in ascending order with their weighted-score
// thresholds. Below the first threshold the level is still Intern.
var careerLadder = []struct {
	Level     CareerLevel
	Threshold float64
}{
	{LevelIntern, 20},
	{LevelJunior, 40},
	{LevelMid, 60},
	{LevelSenior, 80},
	{LevelSpecialist, 90},
}

// LevelForScore maps a weighted composite score to a career level.
func LevelForScore(weighted float64) CareerLevel {
	level := LevelIntern
	for _, step := range careerLadder {
		if weighted >= step.Threshold {
			level = step.Level
		}
	}
	return level
}

// Downgrade returns the level one step below, or Intern when already there.
func (l CareerLevel) Downgrade() CareerLevel {
	for i := 1; i < len(careerLadder); i++ {
		if careerLadder[i].Level == l {
			return careerLadder[i-1].Level
		}
	}
	return LevelIntern
}

// CareerTrack is a named profile of pillar weights and minimum pillar
// scores. Weights conventionally sum to 100 but are not required to.
// Static reference data, selected explicitly per scoring run.
type CareerTrack struct {
	Name     string             `json:"name"`
	Weights  map[string]float64 `json:"weights"`
	Minimums map[string]float64 `json:"minimums"`
}

// Weight returns the configured weight for a pillar, 0 when absent.
func (t CareerTrack) Weight(pillar string) float64 {
	return t.Weights[pillar]
}

// Minimum returns the configured minimum for a pillar, 0 when absent.
func (t CareerTrack) Minimum(pillar string) float64 {
	return t.Minimums[pillar]
}
