package db

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestListProposals_Empty(t *testing.T) {
	store := newTestStore(t)

	proposals, err := store.ListProposals(context.Background())
	if err != nil {
		t.Fatalf("ListProposals failed: %v", err)
	}
	if len(proposals) != 0 {
		t.Errorf("Expected 0 proposals, got %d", len(proposals))
	}
}

func TestCreateAndListProposals(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	id1, err := store.CreateProposal(ctx, "Alpha")
	if err != nil {
		t.Fatalf("CreateProposal failed: %v", err)
	}
	if id1 != 1 {
		t.Errorf("Expected first id 1, got %d", id1)
	}

	id2, err := store.CreateProposal(ctx, "Beta")
	if err != nil {
		t.Fatalf("CreateProposal failed: %v", err)
	}
	if id2 != 2 {
		t.Errorf("Expected second id 2, got %d", id2)
	}

	proposals, err := store.ListProposals(ctx)
	if err != nil {
		t.Fatalf("ListProposals failed: %v", err)
	}
	if len(proposals) != 2 {
		t.Fatalf("Expected 2 proposals, got %d", len(proposals))
	}
	if proposals[0].ID != 1 || proposals[0].Title == nil || *proposals[0].Title != "Alpha" {
		t.Errorf("Unexpected first row: %+v", proposals[0])
	}
	if proposals[1].ID != 2 || proposals[1].Title == nil || *proposals[1].Title != "Beta" {
		t.Errorf("Unexpected second row: %+v", proposals[1])
	}
}

func TestListProposals_NullTitle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.EnsureProposals(ctx); err != nil {
		t.Fatalf("EnsureProposals failed: %v", err)
	}
	if _, err := store.db.ExecContext(ctx, "INSERT INTO proposals (id, title) VALUES (7, NULL)"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	proposals, err := store.ListProposals(ctx)
	if err != nil {
		t.Fatalf("ListProposals failed: %v", err)
	}
	if len(proposals) != 1 {
		t.Fatalf("Expected 1 proposal, got %d", len(proposals))
	}
	if proposals[0].ID != 7 || proposals[0].Title != nil {
		t.Errorf("Expected (7, nil), got %+v", proposals[0])
	}
}

// Repeated reads against an unchanged table must yield identical results.
func TestListProposals_Idempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		if _, err := store.CreateProposal(ctx, title); err != nil {
			t.Fatalf("CreateProposal failed: %v", err)
		}
	}

	first, err := store.ListProposals(ctx)
	if err != nil {
		t.Fatalf("ListProposals failed: %v", err)
	}
	second, err := store.ListProposals(ctx)
	if err != nil {
		t.Fatalf("ListProposals failed: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("Repeated listings differ: %s vs %s", a, b)
	}
}

func TestEnsureProposals_Idempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.EnsureProposals(ctx); err != nil {
			t.Fatalf("EnsureProposals run %d failed: %v", i, err)
		}
	}
}

func TestProposalTupleJSON(t *testing.T) {
	title := "Alpha"

	got, err := json.Marshal(Proposal{ID: 1, Title: &title})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(got) != `[1,"Alpha"]` {
		t.Errorf(`Expected [1,"Alpha"], got %s`, got)
	}

	got, err = json.Marshal(Proposal{ID: 2})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(got) != `[2,null]` {
		t.Errorf(`Expected [2,null], got %s`, got)
	}
}

// A database path that cannot be opened must surface as a query error, not a
// construction failure.
func TestListProposals_UnopenablePath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	// Parent "directory" is a regular file, so sqlite cannot open the DB.
	store, err := NewStore(NewTestConfigWithPath(filepath.Join(blocker, "p.db")))
	if err != nil {
		t.Fatalf("NewStore should not fail on a bad path: %v", err)
	}
	defer func() { _ = store.Close() }()

	if _, err := store.ListProposals(context.Background()); err == nil {
		t.Error("Expected ListProposals to fail on unopenable path")
	}
}

func TestStoreFilePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proposals.db")

	store, err := NewStore(NewTestConfigWithPath(path))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if _, err := store.CreateProposal(context.Background(), "Alpha"); err != nil {
		t.Fatalf("CreateProposal failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopen and confirm the row survived.
	store, err = NewStore(NewTestConfigWithPath(path))
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer func() { _ = store.Close() }()

	proposals, err := store.ListProposals(context.Background())
	if err != nil {
		t.Fatalf("ListProposals failed: %v", err)
	}
	if len(proposals) != 1 {
		t.Fatalf("Expected 1 proposal after reopen, got %d", len(proposals))
	}
}

func TestNewStore_UnknownDriver(t *testing.T) {
	if _, err := NewStore(DBConfig{Driver: "oracle"}); err == nil {
		t.Error("Expected error for unknown driver")
	}
}
