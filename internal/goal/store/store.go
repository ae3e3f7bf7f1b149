package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmarques/financo/internal/goal"
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

func scanGoal(s scanner) (*goal.Goal, error) {
	var g goal.Goal

	var categoryStr string

	var description sql.NullString

	if err := s.Scan(
		&g.ID, &g.Title, &description, &g.TargetCents, &g.CurrentCents,
		&g.Deadline, &categoryStr, &g.Color, &g.CreatedAt,
	); err != nil {
		return nil, err
	}

	g.Description = description.String
	g.Category = goal.Category(categoryStr)

	return &g, nil
}

const selectGoalColumns = `id, title, description, target_amount, current_amount, deadline, category, color, created_at`

func (s *Store) CreateGoal(ctx context.Context, g *goal.Goal) error {
	query := `
		INSERT INTO goals (title, description, target_amount, current_amount, deadline, category, color, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		g.Title, g.Description, g.TargetCents, g.CurrentCents, g.Deadline, g.Category, g.Color,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating goal: %w", err)
	}

	return nil
}

func (s *Store) GetGoal(ctx context.Context, id uuid.UUID) (*goal.Goal, error) {
	query := `SELECT ` + selectGoalColumns + ` FROM goals WHERE id = $1`

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("getting goal: %w", err)
	}

	return g, nil
}

func (s *Store) ListGoals(ctx context.Context) ([]*goal.Goal, error) {
	query := `SELECT ` + selectGoalColumns + ` FROM goals ORDER BY deadline ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*goal.Goal

	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}

		goals = append(goals, g)
	}

	return goals, rows.Err()
}

func (s *Store) UpdateGoal(ctx context.Context, g *goal.Goal) error {
	query := `
		UPDATE goals
		SET title = $1, description = $2, target_amount = $3, current_amount = $4, deadline = $5, category = $6, color = $7
		WHERE id = $8
	`

	_, err := s.db.ExecContext(ctx, query,
		g.Title, g.Description, g.TargetCents, g.CurrentCents, g.Deadline, g.Category, g.Color, g.ID,
	)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}

	return nil
}

func (s *Store) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	return nil
}
