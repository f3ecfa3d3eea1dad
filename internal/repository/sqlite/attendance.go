package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/novalith/novalith-backend/internal/domain"
)

// AttendanceRepository implements domain.AttendanceRepository using SQLite.
type AttendanceRepository struct {
	db *sql.DB
}

const attendanceColumns = `id, user_id, date, punch_in, punch_out, total_hours, status, notes, created_at, updated_at`

func (r *AttendanceRepository) Create(ctx context.Context, record *domain.AttendanceRecord) error {
	now := time.Now().UTC()
	if record.Status == "" {
		record.Status = domain.StatusPresent
	}
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO attendance_records (user_id, date, punch_in, punch_out, total_hours, status, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.UserID, record.Date, record.PunchIn, record.PunchOut,
		record.TotalHours, record.Status, record.Notes, now, now,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateAttendance
		}
		return fmt.Errorf("insert attendance record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get attendance record id: %w", err)
	}

	record.ID = id
	record.CreatedAt = now
	record.UpdatedAt = now
	return nil
}

func (r *AttendanceRepository) GetByUserAndDate(ctx context.Context, userID int64, date time.Time) (*domain.AttendanceRecord, error) {
	rec := &domain.AttendanceRecord{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance_records WHERE user_id = ? AND date = ?`,
		userID, date,
	).Scan(&rec.ID, &rec.UserID, &rec.Date, &rec.PunchIn, &rec.PunchOut,
		&rec.TotalHours, &rec.Status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query attendance record: %w", err)
	}
	return rec, nil
}

func (r *AttendanceRepository) ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]domain.AttendanceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance_records
		 WHERE user_id = ? AND date >= ? AND date <= ?
		 ORDER BY date ASC`,
		userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list attendance records: %w", err)
	}
	return scanAttendanceRows(rows)
}

func (r *AttendanceRepository) ListAll(ctx context.Context) ([]domain.AttendanceRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance_records ORDER BY date DESC, user_id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list all attendance records: %w", err)
	}
	return scanAttendanceRows(rows)
}

func scanAttendanceRows(rows *sql.Rows) ([]domain.AttendanceRecord, error) {
	defer rows.Close()

	var records []domain.AttendanceRecord
	for rows.Next() {
		var rec domain.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Date, &rec.PunchIn, &rec.PunchOut,
			&rec.TotalHours, &rec.Status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan attendance record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *AttendanceRepository) Update(ctx context.Context, record *domain.AttendanceRecord) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE attendance_records SET
		 punch_in = ?, punch_out = ?, total_hours = ?, status = ?, notes = ?, updated_at = ?
		 WHERE id = ?`,
		record.PunchIn, record.PunchOut, record.TotalHours, record.Status, record.Notes, now, record.ID,
	)
	if err != nil {
		return fmt.Errorf("update attendance record: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	record.UpdatedAt = now
	return nil
}
