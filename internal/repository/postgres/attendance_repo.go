package postgres

import (
	"context"
	"database/sql"

	"hallbooking/internal/domain"
)

type attendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) domain.AttendanceRepository {
	return &attendanceRepository{DB: db}
}

// CreateEntries inserts all entries in a single transaction so a failed import
// never leaves a partial attendance list behind.
func (r *attendanceRepository) CreateEntries(ctx context.Context, entries []*domain.AttendanceEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO attendance_entries (session_id, participant_email, participant_name, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	for _, e := range entries {
		if err := tx.QueryRowContext(ctx, query, e.SessionID, e.ParticipantEmail, e.ParticipantName, e.CreatedAt).Scan(&e.ID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *attendanceRepository) ListBySessionID(ctx context.Context, sessionID string) ([]*domain.AttendanceEntry, error) {
	query := `
		SELECT id, session_id, participant_email, participant_name, created_at
		FROM attendance_entries
		WHERE session_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.DB.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	entries := make([]*domain.AttendanceEntry, 0)
	for rows.Next() {
		e := &domain.AttendanceEntry{}
		if err := rows.Scan(&e.ID, &e.SessionID, &e.ParticipantEmail, &e.ParticipantName, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
