package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/novalith/novalith-backend/internal/domain"
)

// TeamRepository implements domain.TeamRepository using SQLite.
type TeamRepository struct {
	db *sql.DB
}

func (r *TeamRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO team_members (name, title, bio, photo_url, sort_order, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		member.Name, member.Title, member.Bio, member.PhotoURL, member.SortOrder, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert team member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get team member id: %w", err)
	}

	member.ID = id
	member.CreatedAt = now
	member.UpdatedAt = now
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*domain.TeamMember, error) {
	m := &domain.TeamMember{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, title, bio, photo_url, sort_order, created_at, updated_at
		 FROM team_members WHERE id = ?`, id,
	).Scan(&m.ID, &m.Name, &m.Title, &m.Bio, &m.PhotoURL, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query team member: %w", err)
	}
	return m, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]domain.TeamMember, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, title, bio, photo_url, sort_order, created_at, updated_at
		 FROM team_members ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Title, &m.Bio, &m.PhotoURL, &m.SortOrder, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan team member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *TeamRepository) Update(ctx context.Context, member *domain.TeamMember) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE team_members SET name = ?, title = ?, bio = ?, photo_url = ?, sort_order = ?, updated_at = ?
		 WHERE id = ?`,
		member.Name, member.Title, member.Bio, member.PhotoURL, member.SortOrder, now, member.ID,
	)
	if err != nil {
		return fmt.Errorf("update team member: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	member.UpdatedAt = now
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM team_members WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete team member: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
