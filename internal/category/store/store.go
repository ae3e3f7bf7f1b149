package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmarques/financo/internal/category"
)

// Store persists caller-added categorization rules. Built-in rules are
// compiled into the binary and never stored. Each rule is kept as a JSON
// document, the same shape ExportRules emits.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SaveRule(ctx context.Context, rule category.Rule) error {
	doc, err := json.Marshal(rule)
	if err != nil {
		return fmt.Errorf("encoding rule: %w", err)
	}

	query := `
		INSERT INTO category_rules (id, rule, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (id) DO UPDATE SET rule = EXCLUDED.rule
	`

	if _, err := s.db.ExecContext(ctx, query, rule.ID, doc); err != nil {
		return fmt.Errorf("saving rule: %w", err)
	}

	return nil
}

func (s *Store) ListRules(ctx context.Context) ([]category.Rule, error) {
	query := `SELECT rule FROM category_rules ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}
	defer rows.Close()

	var rules []category.Rule

	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scanning rule: %w", err)
		}

		var rule category.Rule
		if err := json.Unmarshal(doc, &rule); err != nil {
			return nil, fmt.Errorf("decoding rule: %w", err)
		}

		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func (s *Store) DeleteRule(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM category_rules WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting rule: %w", err)
	}

	return nil
}
