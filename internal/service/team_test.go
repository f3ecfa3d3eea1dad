package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/novalith/novalith-backend/internal/domain"
	"github.com/novalith/novalith-backend/internal/service"
)

func TestTeamService_CreateValidation(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewTeamService(db.Team())
	ctx := context.Background()

	err := svc.Create(ctx, &domain.TeamMember{Name: "", Title: "Consultant"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
	err = svc.Create(ctx, &domain.TeamMember{Name: "Sam", Title: ""})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty title, got %v", err)
	}
}

func TestTeamService_CRUD(t *testing.T) {
	db := newTestDB(t)
	svc := service.NewTeamService(db.Team())
	ctx := context.Background()

	member := &domain.TeamMember{Name: "Sam", Title: "Consultant", SortOrder: 1}
	if err := svc.Create(ctx, member); err != nil {
		t.Fatalf("Create: %v", err)
	}

	member.Title = "Senior Consultant"
	if err := svc.Update(ctx, member); err != nil {
		t.Fatalf("Update: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Senior Consultant" {
		t.Fatalf("unexpected listing %v", list)
	}

	if err := svc.Delete(ctx, member.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.GetByID(ctx, member.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
