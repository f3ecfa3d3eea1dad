package service

import (
	"context"
	"fmt"

	"github.com/novalith/novalith-backend/internal/domain"
)

// TeamService handles team member profiles for the public team page.
// Access control for mutations is enforced at the transport layer.
type TeamService struct {
	team domain.TeamRepository
}

// NewTeamService creates a new TeamService.
func NewTeamService(team domain.TeamRepository) *TeamService {
	return &TeamService{team: team}
}

// List returns all team members in display order.
func (s *TeamService) List(ctx context.Context) ([]domain.TeamMember, error) {
	return s.team.List(ctx)
}

// GetByID returns a single team member.
func (s *TeamService) GetByID(ctx context.Context, id int64) (*domain.TeamMember, error) {
	return s.team.GetByID(ctx, id)
}

// Create adds a team member profile.
func (s *TeamService) Create(ctx context.Context, member *domain.TeamMember) error {
	if member.Name == "" || member.Title == "" {
		return fmt.Errorf("%w: name and title are required", domain.ErrInvalidInput)
	}
	return s.team.Create(ctx, member)
}

// Update replaces a team member profile.
func (s *TeamService) Update(ctx context.Context, member *domain.TeamMember) error {
	if member.Name == "" || member.Title == "" {
		return fmt.Errorf("%w: name and title are required", domain.ErrInvalidInput)
	}
	return s.team.Update(ctx, member)
}

// Delete removes a team member profile.
func (s *TeamService) Delete(ctx context.Context, id int64) error {
	return s.team.Delete(ctx, id)
}
