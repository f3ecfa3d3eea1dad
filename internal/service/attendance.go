package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/novalith/novalith-backend/internal/domain"
)

// AttendanceService enforces the per-user, per-day punch-in/punch-out state
// machine and serves read queries. The current time is an injected
// dependency so tests can pin fixed instants.
type AttendanceService struct {
	records domain.AttendanceRepository
	users   domain.UserRepository
	now     func() time.Time
}

// NewAttendanceService creates a new AttendanceService. A nil now defaults
// to time.Now.
func NewAttendanceService(records domain.AttendanceRepository, users domain.UserRepository, now func() time.Time) *AttendanceService {
	if now == nil {
		now = time.Now
	}
	return &AttendanceService{records: records, users: users, now: now}
}

// PunchIn records the start of the user's working day. The day's record is
// created on first punch-in; a record pre-created without a punch-in (for
// example an admin-entered absence later amended) is completed in place.
func (s *AttendanceService) PunchIn(ctx context.Context, userID int64) (*domain.AttendanceRecord, error) {
	now := s.now()
	today := startOfDay(now)

	rec, err := s.records.GetByUserAndDate(ctx, userID, today)
	switch {
	case err == nil:
		if rec.PunchIn != nil {
			return nil, domain.ErrAlreadyPunchedIn
		}
		rec.PunchIn = &now
		if err := s.records.Update(ctx, rec); err != nil {
			return nil, fmt.Errorf("update record: %w", err)
		}
		return rec, nil

	case errors.Is(err, domain.ErrNotFound):
		rec = &domain.AttendanceRecord{
			UserID:  userID,
			Date:    today,
			PunchIn: &now,
			Status:  domain.StatusPresent,
		}
		if err := s.records.Create(ctx, rec); err != nil {
			// A concurrent punch-in won the race on the (user, date)
			// uniqueness constraint.
			if errors.Is(err, domain.ErrDuplicateAttendance) {
				return nil, domain.ErrAlreadyPunchedIn
			}
			return nil, fmt.Errorf("create record: %w", err)
		}
		return rec, nil

	default:
		return nil, fmt.Errorf("get record: %w", err)
	}
}

// PunchOut records the end of the user's working day and derives the total
// hours worked. The second punch-out of a day fails without mutating the
// record.
func (s *AttendanceService) PunchOut(ctx context.Context, userID int64) (*domain.AttendanceRecord, error) {
	now := s.now()
	today := startOfDay(now)

	rec, err := s.records.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotPunchedIn
		}
		return nil, fmt.Errorf("get record: %w", err)
	}

	if rec.PunchIn == nil {
		return nil, domain.ErrNotPunchedIn
	}
	if rec.PunchOut != nil {
		return nil, domain.ErrAlreadyPunchedOut
	}

	rec.PunchOut = &now
	rec.TotalHours = roundHours(now.Sub(*rec.PunchIn))
	if err := s.records.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("update record: %w", err)
	}
	return rec, nil
}

// MyAttendance returns the user's records for the given month, ascending by
// date. A zero month or year defaults to the current one.
func (s *AttendanceService) MyAttendance(ctx context.Context, userID int64, month time.Month, year int) ([]domain.AttendanceRecord, error) {
	now := s.now()
	if month == 0 {
		month = now.Month()
	}
	if year == 0 {
		year = now.Year()
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month must be between 1 and 12", domain.ErrInvalidInput)
	}

	loc := now.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	// Day 0 of the next month is the last day of this one, which handles
	// variable month lengths and leap years.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)

	records, err := s.records.ListByUserBetween(ctx, userID, first, last)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return records, nil
}

// AllAttendance returns every record across all users, descending by date,
// joined with each owner's name and email. Access control is enforced at
// the transport layer.
func (s *AttendanceService) AllAttendance(ctx context.Context) ([]domain.AttendanceWithUser, error) {
	records, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	identities := make(map[int64]*domain.User)
	out := make([]domain.AttendanceWithUser, 0, len(records))
	for _, rec := range records {
		user, ok := identities[rec.UserID]
		if !ok {
			user, err = s.users.GetByID(ctx, rec.UserID)
			if err != nil && !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("get user %d: %w", rec.UserID, err)
			}
			identities[rec.UserID] = user
		}

		entry := domain.AttendanceWithUser{AttendanceRecord: rec}
		if user != nil {
			entry.UserName = user.Name
			entry.UserEmail = user.Email
		}
		out = append(out, entry)
	}
	return out, nil
}

// startOfDay strips the time of day, keeping the location. An instant
// exactly at midnight resolves to that same day.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// roundHours converts a duration to fractional hours rounded to two
// decimals, half away from zero.
func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
