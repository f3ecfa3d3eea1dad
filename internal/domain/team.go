package domain

import (
	"context"
	"time"
)

// TeamMember is a profile shown on the public team page.
type TeamMember struct {
	ID        int64
	Name      string
	Title     string
	Bio       string
	PhotoURL  string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TeamRepository defines persistence operations for team member profiles.
type TeamRepository interface {
	Create(ctx context.Context, member *TeamMember) error
	GetByID(ctx context.Context, id int64) (*TeamMember, error)
	// List returns all members ordered by sort order, then name.
	List(ctx context.Context) ([]TeamMember, error)
	Update(ctx context.Context, member *TeamMember) error
	Delete(ctx context.Context, id int64) error
}
