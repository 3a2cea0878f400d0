package domain

import (
	"context"
	"time"
)

// CCA represents a co-curricular activity whose sessions track attendance.
// swagger:model CCA
type CCA struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCCA returns a new CCA. ID is typically set by the repository on create.
func NewCCA(name, category string, createdAt, updatedAt time.Time) *CCA {
	return &CCA{
		Name:      name,
		Category:  category,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// CCASession represents one dated session of a CCA. Date is the canonical
// Unix-timestamp-at-midnight of the session day.
// swagger:model CCASession
type CCASession struct {
	ID        string    `json:"id"`
	CCAID     string    `json:"cca_id"`
	Title     string    `json:"title"`
	Date      int64     `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCCASession returns a new CCASession. ID is typically set by the repository on create.
func NewCCASession(ccaID, title string, date int64, createdAt, updatedAt time.Time) *CCASession {
	return &CCASession{
		CCAID:     ccaID,
		Title:     title,
		Date:      date,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// AttendanceEntry records one participant at one CCA session. Identity for
// deduplication is ParticipantEmail or ParticipantName — a repeat of either
// within the same import is a duplicate.
// swagger:model AttendanceEntry
type AttendanceEntry struct {
	ID               string    `json:"id"`
	SessionID        string    `json:"session_id"`
	ParticipantEmail string    `json:"participant_email"`
	ParticipantName  string    `json:"participant_name"`
	CreatedAt        time.Time `json:"created_at"`
}

// CCARepository defines storage for CCAs and their sessions.
type CCARepository interface {
	CreateCCA(ctx context.Context, cca *CCA) error
	GetCCAByID(ctx context.Context, id string) (*CCA, error)
	ListCCAs(ctx context.Context) ([]*CCA, error)
	CreateSession(ctx context.Context, session *CCASession) error
	GetSessionByID(ctx context.Context, id string) (*CCASession, error)
	ListSessionsByCCAID(ctx context.Context, ccaID string) ([]*CCASession, error)
}

// AttendanceRepository defines storage for attendance entries.
type AttendanceRepository interface {
	CreateEntries(ctx context.Context, entries []*AttendanceEntry) error
	ListBySessionID(ctx context.Context, sessionID string) ([]*AttendanceEntry, error)
}

// AttendanceSheetFetcher fetches attendance rows from an external published
// spreadsheet (CSV export URL). Infrastructure port.
type AttendanceSheetFetcher interface {
	FetchRows(ctx context.Context, url string) ([][]string, error)
}

// AttendanceService defines the business logic for CCAs, sessions, and
// attendance imports.
type AttendanceService interface {
	CreateCCA(ctx context.Context, cca *CCA) error
	ListCCAs(ctx context.Context) ([]*CCA, error)
	// CreateSession validates date ("YYYY-MM-DD") and creates the session.
	CreateSession(ctx context.Context, ccaID, title, date string) (*CCASession, error)
	ListSessions(ctx context.Context, ccaID string) ([]*CCASession, error)
	// ImportRows deduplicates and stores attendance rows of the form
	// [email, name]. Returns the number of entries kept.
	ImportRows(ctx context.Context, sessionID string, rows [][]string) (int, error)
	// ImportFromSheet fetches rows from a published spreadsheet CSV URL and
	// feeds them through ImportRows.
	ImportFromSheet(ctx context.Context, sessionID, url string) (int, error)
	ListEntries(ctx context.Context, sessionID string) ([]*AttendanceEntry, error)
}
