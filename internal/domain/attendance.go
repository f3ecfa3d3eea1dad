package domain

import (
	"context"
	"time"
)

// AttendanceStatus describes the kind of day an attendance record covers.
// It is set manually (by an admin or default), never derived from punch times.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusHalfDay AttendanceStatus = "half-day"
	StatusLeave   AttendanceStatus = "leave"
)

// AttendanceRecord is a single user's punch-in/punch-out pair for one
// calendar day. Date is normalized to midnight and, together with UserID,
// identifies the record: at most one record exists per user per day.
type AttendanceRecord struct {
	ID         int64
	UserID     int64
	Date       time.Time
	PunchIn    *time.Time
	PunchOut   *time.Time
	TotalHours float64
	Status     AttendanceStatus
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AttendanceWithUser joins a record with the owning user's display identity
// for the admin listing.
type AttendanceWithUser struct {
	AttendanceRecord
	UserName  string
	UserEmail string
}

// AttendanceRepository defines persistence operations for attendance records.
// Create must fail with ErrDuplicateAttendance when a record for the same
// (user, date) pair already exists.
type AttendanceRepository interface {
	Create(ctx context.Context, record *AttendanceRecord) error
	GetByUserAndDate(ctx context.Context, userID int64, date time.Time) (*AttendanceRecord, error)
	// ListByUserBetween returns the user's records with from <= Date <= to,
	// ascending by date.
	ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]AttendanceRecord, error)
	// ListAll returns every record across all users, descending by date.
	ListAll(ctx context.Context) ([]AttendanceRecord, error)
	Update(ctx context.Context, record *AttendanceRecord) error
}
