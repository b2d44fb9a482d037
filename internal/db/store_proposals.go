package db

import (
	"context"
	"encoding/json"
)

// Proposal is one row of the proposals table. It serializes as the
// two-element tuple [id, title] in column order, which is the wire shape
// listing clients consume.
type Proposal struct {
	ID    int64   `db:"id"`
	Title *string `db:"title"`
}

func (p Proposal) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.ID, p.Title})
}

const ensureProposalsQuery = `CREATE TABLE IF NOT EXISTS proposals (id INTEGER PRIMARY KEY, title TEXT)`

// EnsureProposals creates the proposals table when absent. It runs before
// every read so the table exists even if startup migrations never applied.
func (s *Store) EnsureProposals(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, ensureProposalsQuery)
	return err
}

// ListProposals returns every proposal row. There is deliberately no ORDER BY:
// callers observe the engine's default scan order.
func (s *Store) ListProposals(ctx context.Context) ([]Proposal, error) {
	if err := s.EnsureProposals(ctx); err != nil {
		return nil, err
	}

	var proposals []Proposal
	if err := s.db.SelectContext(ctx, &proposals, "SELECT id, title FROM proposals"); err != nil {
		return nil, err
	}
	return proposals, nil
}

// CreateProposal inserts a row and returns the store-assigned id. The HTTP
// surface is read-only; this exists for the seed tool and tests.
func (s *Store) CreateProposal(ctx context.Context, title string) (int64, error) {
	if err := s.EnsureProposals(ctx); err != nil {
		return 0, err
	}

	if s.driver == DriverPostgres {
		var id int64
		query := s.db.Rebind("INSERT INTO proposals (title) VALUES (?) RETURNING id")
		if err := s.db.QueryRowContext(ctx, query, title).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	res, err := s.db.ExecContext(ctx, "INSERT INTO proposals (title) VALUES (?)", title)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
