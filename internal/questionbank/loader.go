// Package questionbank loads the JSON question files into the immutable
// reference data the scoring engine consumes. Files are read once at
// startup; the loaded bank is never mutated afterwards.
package questionbank

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"askhub/internal/domain"
	"askhub/internal/scoring"
)

const (
	frameworkFile  = "framework.json"
	optionSetsFile = "option_sets.json"
	dichotomyFile  = "adti_test.json"

	// dichotomyIDBase keeps dichotomy question ids clear of the skill
	// question id space, which starts at 1 in framework.json.
	dichotomyIDBase = 1000
)

// Bank is the loaded question bank: questions for both scoring schemes,
// the configured career tracks and the display metadata around them.
type Bank struct {
	Questions   []domain.Question
	Tracks      []domain.CareerTrack
	Pillars     []string
	LikertScale map[string]string
	OptionSets  map[string][]string

	catalog *scoring.Catalog
}

// Catalog returns the validated catalog built from the bank's questions.
func (b *Bank) Catalog() *scoring.Catalog { return b.catalog }

// Track resolves a configured career track by name.
func (b *Bank) Track(name string) (domain.CareerTrack, bool) {
	for _, t := range b.Tracks {
		if t.Name == name {
			return t, true
		}
	}
	return domain.CareerTrack{}, false
}

// New builds a bank from already-assembled reference data and validates
// the questions into a catalog.
func New(questions []domain.Question, tracks []domain.CareerTrack) (*Bank, error) {
	catalog, err := scoring.LoadCatalog(questions)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return &Bank{
		Questions: questions,
		Tracks:    tracks,
		Pillars:   catalog.Pillars(),
		catalog:   catalog,
	}, nil
}

type frameworkDoc struct {
	Metadata struct {
		Pillars      []string             `json:"pillars"`
		LikertScale  map[string]string    `json:"likert_scale"`
		CareerTracks []domain.CareerTrack `json:"career_tracks"`
	} `json:"metadata"`
	Questions []struct {
		ID          int    `json:"id"`
		Pillar      string `json:"pillar"`
		Category    string `json:"category"`
		Question    string `json:"question"`
		Explanation string `json:"explanation"`
		OptionSet   string `json:"option_set"`
	} `json:"questions"`
}

type dichotomyEntry struct {
	Question    string   `json:"Pergunta"`
	Dichotomies []string `json:"Dicotomias"`
}

// Load reads framework.json, option_sets.json and adti_test.json from dir
// and returns the validated bank.
func Load(dir string) (*Bank, error) {
	var fw frameworkDoc
	if err := readJSON(filepath.Join(dir, frameworkFile), &fw); err != nil {
		return nil, err
	}

	optionSets := make(map[string][]string)
	if err := readJSON(filepath.Join(dir, optionSetsFile), &optionSets); err != nil {
		return nil, err
	}

	dichotomies, err := loadDichotomyEntries(filepath.Join(dir, dichotomyFile))
	if err != nil {
		return nil, err
	}

	questions := make([]domain.Question, 0, len(fw.Questions)+len(dichotomies))
	for _, q := range fw.Questions {
		if _, ok := optionSets[q.OptionSet]; q.OptionSet != "" && !ok {
			return nil, fmt.Errorf("question %d: unknown option set %q", q.ID, q.OptionSet)
		}
		questions = append(questions, domain.Question{
			ID:          q.ID,
			Scheme:      domain.SchemePillar,
			Text:        q.Question,
			Category:    q.Category,
			Explanation: q.Explanation,
			Pillar:      q.Pillar,
			OptionSet:   q.OptionSet,
		})
	}
	questions = append(questions, dichotomies...)

	bank, err := New(questions, fw.Metadata.CareerTracks)
	if err != nil {
		return nil, err
	}
	if len(fw.Metadata.Pillars) > 0 {
		bank.Pillars = fw.Metadata.Pillars
	}
	bank.LikertScale = fw.Metadata.LikertScale
	bank.OptionSets = optionSets

	return bank, nil
}

// loadDichotomyEntries parses the P-keyed prompt map. The file wraps the
// map in a single-element array; keys are sorted numerically (P1, P2, ...)
// so question ids stay stable across loads.
func loadDichotomyEntries(path string) ([]domain.Question, error) {
	var docs []map[string]dichotomyEntry
	if err := readJSON(path, &docs); err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("%s: empty document", filepath.Base(path))
	}

	keys := make([]string, 0, len(docs[0]))
	for key, entry := range docs[0] {
		if !strings.HasPrefix(key, "P") || len(entry.Dichotomies) != 2 {
			continue
		}
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return promptNumber(keys[i]) < promptNumber(keys[j])
	})

	questions := make([]domain.Question, 0, len(keys))
	for _, key := range keys {
		entry := docs[0][key]
		questions = append(questions, domain.Question{
			ID:          dichotomyIDBase + promptNumber(key),
			Scheme:      domain.SchemeDichotomy,
			Text:        entry.Question,
			Dichotomies: entry.Dichotomies,
		})
	}
	return questions, nil
}

func promptNumber(key string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(key, "P"))
	if err != nil {
		return 0
	}
	return n
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
