package balancing

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "substitutes.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadSubstitutions(t *testing.T) {
	path := writeFile(t, "Milk: [Milk Powder, \" \", Almond Milk]\nFlour:\n  - Maida\n")
	subs, err := LoadSubstitutions(path)
	if err != nil {
		t.Fatalf("LoadSubstitutions: %v", err)
	}
	if got := subs["Milk"]; len(got) != 2 || got[1] != "Almond Milk" {
		t.Errorf("Milk = %v", got)
	}
	if got := subs["Flour"]; len(got) != 1 || got[0] != "Maida" {
		t.Errorf("Flour = %v", got)
	}
}

func TestLoadSubstitutions_Errors(t *testing.T) {
	if _, err := LoadSubstitutions(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := LoadSubstitutions(writeFile(t, "- just\n- a list\n")); err == nil {
		t.Error("expected error for non-map YAML")
	}
}

func TestService_SubstitutesFile(t *testing.T) {
	t.Setenv("SUBSTITUTES_FILE", writeFile(t, "Widget: [Gadget]\n"))
	subs, err := substitutionsFromConfig()
	if err != nil {
		t.Fatalf("substitutionsFromConfig: %v", err)
	}
	if got := subs["Widget"]; len(got) != 1 || got[0] != "Gadget" {
		t.Errorf("Widget = %v", got)
	}
}
