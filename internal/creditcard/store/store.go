package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmarques/financo/internal/creditcard"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCard(s scanner) (*creditcard.Card, error) {
	var c creditcard.Card

	if err := s.Scan(
		&c.ID, &c.Name, &c.Bank, &c.LimitCents, &c.CurrentBalanceCents,
		&c.DueDay, &c.ClosingDay, &c.Color, &c.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &c, nil
}

const selectCardColumns = `id, name, bank, credit_limit, current_balance, due_day, closing_day, color, created_at`

func (s *Store) CreateCard(ctx context.Context, c *creditcard.Card) error {
	query := `
		INSERT INTO credit_cards (name, bank, credit_limit, current_balance, due_day, closing_day, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		c.Name, c.Bank, c.LimitCents, c.CurrentBalanceCents, c.DueDay, c.ClosingDay, c.Color,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating credit card: %w", err)
	}

	return nil
}

func (s *Store) GetCard(ctx context.Context, id uuid.UUID) (*creditcard.Card, error) {
	query := `SELECT ` + selectCardColumns + ` FROM credit_cards WHERE id = $1`

	c, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, creditcard.ErrNotFound
		}

		return nil, fmt.Errorf("getting credit card: %w", err)
	}

	return c, nil
}

func (s *Store) ListCards(ctx context.Context) ([]*creditcard.Card, error) {
	query := `SELECT ` + selectCardColumns + ` FROM credit_cards ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing credit cards: %w", err)
	}
	defer rows.Close()

	var cards []*creditcard.Card

	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning credit card: %w", err)
		}

		cards = append(cards, c)
	}

	return cards, rows.Err()
}

func (s *Store) UpdateCard(ctx context.Context, c *creditcard.Card) error {
	query := `
		UPDATE credit_cards
		SET name = $1, bank = $2, credit_limit = $3, current_balance = $4, due_day = $5, closing_day = $6, color = $7
		WHERE id = $8
	`

	_, err := s.db.ExecContext(ctx, query,
		c.Name, c.Bank, c.LimitCents, c.CurrentBalanceCents, c.DueDay, c.ClosingDay, c.Color, c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating credit card: %w", err)
	}

	return nil
}

func (s *Store) DeleteCard(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM credit_cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting credit card: %w", err)
	}

	return nil
}
