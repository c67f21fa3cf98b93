package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/devdonalds/cookbook/pkg/cookbook"
)

func int64Ptr(v int64) *int64 { return &v }

func itemsPtr(items ...cookbook.RequiredItem) *[]cookbook.RequiredItem { return &items }

func TestRunCheck(t *testing.T) {
	payloads := []cookbook.EntryPayload{
		{Type: "ingredient", Name: "Flour", CookTime: int64Ptr(1)},
		{Type: "recipe", Name: "Dough", RequiredItems: itemsPtr(
			cookbook.RequiredItem{Name: "Flour", Quantity: 2},
		)},
		{Type: "ingredient", Name: "Flour", CookTime: int64Ptr(3)}, // duplicate
		{Type: "ingredient", Name: "Ice", CookTime: int64Ptr(-1)},  // invalid
	}

	report, store := runCheck("entries.yaml", payloads)

	if report.Total != 4 {
		t.Errorf("expected total 4, got %d", report.Total)
	}
	if report.Admitted != 2 {
		t.Errorf("expected 2 admitted, got %d", report.Admitted)
	}
	if report.Rejected != 2 {
		t.Errorf("expected 2 rejected, got %d", report.Rejected)
	}

	if !report.Outcomes[0].Admitted || !report.Outcomes[1].Admitted {
		t.Error("expected first two entries to be admitted")
	}
	if report.Outcomes[2].Code != "DUPLICATE_NAME" {
		t.Errorf("expected DUPLICATE_NAME, got %s", report.Outcomes[2].Code)
	}
	if report.Outcomes[3].Code != "INVALID_COOK_TIME" {
		t.Errorf("expected INVALID_COOK_TIME, got %s", report.Outcomes[3].Code)
	}

	if store.Len() != 2 {
		t.Errorf("expected 2 entries in store, got %d", store.Len())
	}
}

func TestCheckCommand(t *testing.T) {
	entries := []cookbook.EntryPayload{
		{Type: "ingredient", Name: "Flour", CookTime: int64Ptr(1)},
		{Type: "recipe", Name: "Dough", RequiredItems: itemsPtr(
			cookbook.RequiredItem{Name: "Flour", Quantity: 2},
		)},
		{Type: "recipe", Name: "Bread", RequiredItems: itemsPtr(
			cookbook.RequiredItem{Name: "Dough", Quantity: 3},
		)},
	}

	dir := t.TempDir()
	inPath := filepath.Join(dir, "entries.json")
	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("failed to marshal entries: %v", err)
	}
	if err := os.WriteFile(inPath, data, 0o600); err != nil {
		t.Fatalf("failed to write entries file: %v", err)
	}

	outPath := filepath.Join(dir, "report.json")

	cmd := rootCmd()
	args := []string{name, "check",
		"--file", inPath,
		"--summary", "Bread",
		"--format", "json",
		"--output", outPath,
	}
	if err := cmd.Run(context.Background(), args); err != nil {
		t.Fatalf("check command failed: %v", err)
	}

	raw, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}

	var report CheckReport
	if err := json.Unmarshal(raw, &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}

	if report.Admitted != 3 || report.Rejected != 0 {
		t.Errorf("expected 3 admitted and 0 rejected, got %d/%d", report.Admitted, report.Rejected)
	}
	if report.Summary == nil {
		t.Fatal("expected summary in report")
	}
	if report.Summary.CookTime != 6 {
		t.Errorf("expected cook time 6, got %d", report.Summary.CookTime)
	}
	if report.Summary.Ingredients["Flour"] != 6 {
		t.Errorf("expected 6 Flour, got %d", report.Summary.Ingredients["Flour"])
	}
}

func TestCheckCommandStrict(t *testing.T) {
	entries := []cookbook.EntryPayload{
		{Type: "ingredient", Name: "Flour", CookTime: int64Ptr(1)},
		{Type: "ingredient", Name: "Flour", CookTime: int64Ptr(2)},
	}

	dir := t.TempDir()
	inPath := filepath.Join(dir, "entries.json")
	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatalf("failed to marshal entries: %v", err)
	}
	if err := os.WriteFile(inPath, data, 0o600); err != nil {
		t.Fatalf("failed to write entries file: %v", err)
	}

	cmd := rootCmd()
	args := []string{name, "check",
		"--file", inPath,
		"--strict",
		"--output", filepath.Join(dir, "report.yaml"),
	}
	if err := cmd.Run(context.Background(), args); err == nil {
		t.Error("expected strict mode to fail on rejected entries")
	}
}

func TestCheckCommandUnknownFormat(t *testing.T) {
	cmd := rootCmd()
	args := []string{name, "check", "--file", "whatever.yaml", "--format", "xml"}
	if err := cmd.Run(context.Background(), args); err == nil {
		t.Error("expected unknown format to fail")
	}
}
