package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/coffer-cli/coffer/domain/models"
)

func testPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "coffer.csv")
}

func TestLoad_MissingFile(t *testing.T) {
	store := New(testPath(t))

	accounts, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Expected a missing file to load as empty, but got error: %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("Expected no accounts, but got %d", len(accounts))
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	path := testPath(t)
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("Expected test file to be written, but got error: %v", err)
	}
	store := New(path)

	accounts, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Expected an empty file to load as empty, but got error: %v", err)
	}
	if len(accounts) != 0 {
		t.Errorf("Expected no accounts, but got %d", len(accounts))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := New(testPath(t))
	want := []models.Account{
		{Name: "charlie", Balance: 0},
		{Name: "alice", Balance: 2000},
		{Name: "a name, with comma", Balance: models.MaxCents},
	}

	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("Expected save to succeed, but got error: %v", err)
	}
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Expected load to succeed, but got error: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("Expected %d accounts, but got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected account %d to be %+v, but got %+v", i, want[i], got[i])
		}
	}
}

func TestSave_ReplacesPreviousContent(t *testing.T) {
	store := New(testPath(t))
	ctx := context.Background()

	first := []models.Account{{Name: "old", Balance: 1}, {Name: "older", Balance: 2}}
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Expected save to succeed, but got error: %v", err)
	}
	second := []models.Account{{Name: "new", Balance: 3}}
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("Expected save to succeed, but got error: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Expected load to succeed, but got error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "new" || got[0].Balance != 3 {
		t.Errorf("Expected only the new account, but got %+v", got)
	}
}

func TestSave_EmptyLedgerKeepsHeaderOnly(t *testing.T) {
	store := New(testPath(t))
	ctx := context.Background()

	if err := store.Save(ctx, nil); err != nil {
		t.Fatalf("Expected save to succeed, but got error: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Expected load to succeed, but got error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected no accounts, but got %+v", got)
	}
}

func TestLoad_InvalidBalance(t *testing.T) {
	path := testPath(t)
	content := "name,balance\nuser,12.50\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Expected test file to be written, but got error: %v", err)
	}
	store := New(path)

	if _, err := store.Load(context.Background()); err == nil {
		t.Error("Expected a non-integer balance to fail the load, but it succeeded")
	}
}

func TestLoad_NegativeBalance(t *testing.T) {
	path := testPath(t)
	content := "name,balance\nuser,-5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Expected test file to be written, but got error: %v", err)
	}
	store := New(path)

	if _, err := store.Load(context.Background()); err == nil {
		t.Error("Expected a negative balance to fail the load, but it succeeded")
	}
}

func TestLoad_UnexpectedHeader(t *testing.T) {
	path := testPath(t)
	content := "account,amount\nuser,5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Expected test file to be written, but got error: %v", err)
	}
	store := New(path)

	if _, err := store.Load(context.Background()); err == nil {
		t.Error("Expected an unexpected header to fail the load, but it succeeded")
	}
}

func TestLoad_WrongFieldCount(t *testing.T) {
	path := testPath(t)
	content := "name,balance\nuser,5,extra\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Expected test file to be written, but got error: %v", err)
	}
	store := New(path)

	if _, err := store.Load(context.Background()); err == nil {
		t.Error("Expected a malformed row to fail the load, but it succeeded")
	}
}
