package questionbank

import (
	"os"
	"path/filepath"
	"testing"

	"askhub/internal/domain"
)

const frameworkJSON = `{
  "metadata": {
    "pillars": ["Technical", "Behavioral"],
    "likert_scale": {"1": "None yet", "5": "Reference level"},
    "career_tracks": [
      {
        "name": "Data Analyst",
        "weights": {"Technical": 50, "Behavioral": 50},
        "minimums": {"Technical": 60, "Behavioral": 30}
      }
    ]
  },
  "questions": [
    {"id": 1, "pillar": "Technical", "category": "Programming", "question": "Programming languages", "option_set": "Set_Prog"},
    {"id": 2, "pillar": "Behavioral", "category": "Communication", "question": "Communication skills", "option_set": "Set_Comm"}
  ]
}`

const optionSetsJSON = `{
  "Set_Prog": ["Python", "Go", "SQL"],
  "Set_Comm": ["Presentations", "Writing"]
}`

const dichotomyJSON = `[
  {
    "P2": {"Pergunta": "Second prompt", "Dicotomias": ["DCOM", "DCOL"]},
    "P1": {"Pergunta": "First prompt", "Dicotomias": ["DSTA", "DVIS"]},
    "meta": {"Pergunta": "ignored", "Dicotomias": []}
  }
]`

func writeBank(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		frameworkFile:  frameworkJSON,
		optionSetsFile: optionSetsJSON,
		dichotomyFile:  dichotomyJSON,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestLoad_BuildsBankAndCatalog(t *testing.T) {
	bank, err := Load(writeBank(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(bank.Questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(bank.Questions))
	}
	if got := len(bank.Catalog().DichotomyQuestions()); got != 2 {
		t.Fatalf("expected 2 dichotomy questions, got %d", got)
	}
	if got := bank.Catalog().Pillars(); len(got) != 2 || got[0] != "Technical" {
		t.Fatalf("unexpected pillars %v", got)
	}

	track, ok := bank.Track("Data Analyst")
	if !ok {
		t.Fatalf("expected Data Analyst track")
	}
	if track.Weight("Technical") != 50 || track.Minimum("Behavioral") != 30 {
		t.Fatalf("unexpected track values %+v", track)
	}
}

func TestLoad_DichotomyIDsAreStable(t *testing.T) {
	bank, err := Load(writeBank(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	dq := bank.Catalog().DichotomyQuestions()
	if dq[0].ID != dichotomyIDBase+1 || dq[0].Text != "First prompt" {
		t.Fatalf("expected P1 first with offset id, got %+v", dq[0])
	}
	if dq[1].ID != dichotomyIDBase+2 {
		t.Fatalf("expected P2 second, got %+v", dq[1])
	}
}

func TestLoad_RejectsUnknownOptionSet(t *testing.T) {
	dir := writeBank(t)
	broken := `{"metadata": {}, "questions": [{"id": 1, "pillar": "Technical", "question": "q", "option_set": "Missing"}]}`
	if err := os.WriteFile(filepath.Join(dir, frameworkFile), []byte(broken), 0o600); err != nil {
		t.Fatalf("rewrite framework: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatalf("expected unknown option set error")
	}
}

func TestLoad_RejectsInvalidDichotomyCodes(t *testing.T) {
	dir := writeBank(t)
	broken := `[{"P1": {"Pergunta": "p", "Dicotomias": ["DSTA", "NOPE"]}}]`
	if err := os.WriteFile(filepath.Join(dir, dichotomyFile), []byte(broken), 0o600); err != nil {
		t.Fatalf("rewrite dichotomy file: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatalf("expected catalog schema error")
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	dir := writeBank(t)
	if err := os.Remove(filepath.Join(dir, optionSetsFile)); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := Load(dir); err == nil {
		t.Fatalf("expected error for missing option sets file")
	}
}

func TestBank_QuestionsKeepSchemes(t *testing.T) {
	bank, err := Load(writeBank(t))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, q := range bank.Questions {
		switch q.Scheme {
		case domain.SchemePillar:
			if q.Pillar == "" {
				t.Fatalf("pillar question without pillar: %+v", q)
			}
		case domain.SchemeDichotomy:
			if len(q.Dichotomies) != 2 {
				t.Fatalf("dichotomy question without pair: %+v", q)
			}
		default:
			t.Fatalf("unexpected scheme %q", q.Scheme)
		}
	}
}
