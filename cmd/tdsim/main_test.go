package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestValidateBuiltinStages(t *testing.T) {
	for _, id := range []string{"1", "2"} {
		out, err := execute(t, "validate", id)
		if err != nil {
			t.Fatalf("validate %s: %v", id, err)
		}
		if !strings.Contains(out, "Stage "+id+" OK") {
			t.Errorf("unexpected output %q", out)
		}
	}
}

func TestValidateUnknownStage(t *testing.T) {
	if _, err := execute(t, "validate", "no-such-stage"); err == nil {
		t.Fatal("expected error for unknown stage")
	}
}

func TestUnitsListsCatalog(t *testing.T) {
	out, err := execute(t, "units")
	if err != nil {
		t.Fatalf("units: %v", err)
	}
	for _, id := range []string{"melee", "archer", "mage", "frost"} {
		if !strings.Contains(out, id) {
			t.Errorf("missing %s in %q", id, out)
		}
	}
}

func TestRunRecordsAndHistoryShowsIt(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	out, err := execute(t, "--db", db, "run", "1", "--record", "--max-frames", "0")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Outcome:  defeat") {
		t.Errorf("undefended stage should be lost, got %q", out)
	}

	out, err = execute(t, "--db", db, "history", "1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if !strings.Contains(out, "defeat") || !strings.Contains(out, "No victories yet") {
		t.Errorf("unexpected history %q", out)
	}
}
