package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hallbooking/internal/calendardate"
	"hallbooking/internal/domain"
)

type attendanceService struct {
	ccaRepo        domain.CCARepository
	attendanceRepo domain.AttendanceRepository
	fetcher        domain.AttendanceSheetFetcher
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewAttendanceService creates an AttendanceService for CCA sessions and
// their attendance records.
func NewAttendanceService(
	ccaRepo domain.CCARepository,
	attendanceRepo domain.AttendanceRepository,
	fetcher domain.AttendanceSheetFetcher,
	logger *slog.Logger,
	timeout time.Duration,
) domain.AttendanceService {
	return &attendanceService{
		ccaRepo:        ccaRepo,
		attendanceRepo: attendanceRepo,
		fetcher:        fetcher,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *attendanceService) CreateCCA(ctx context.Context, cca *domain.CCA) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	cca.Name = strings.TrimSpace(cca.Name)
	if cca.Name == "" {
		return fmt.Errorf("%w: cca name is required", domain.ErrInvalidInput)
	}
	now := time.Now()
	cca.CreatedAt = now
	cca.UpdatedAt = now
	return s.ccaRepo.CreateCCA(ctx, cca)
}

func (s *attendanceService) ListCCAs(ctx context.Context) ([]*domain.CCA, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.ccaRepo.ListCCAs(ctx)
}

func (s *attendanceService) CreateSession(ctx context.Context, ccaID, title, date string) (*domain.CCASession, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	ts := calendardate.ToUnixDay(date)
	if ts == 0 {
		return nil, fmt.Errorf("%w: invalid date %q", domain.ErrInvalidInput, date)
	}
	if _, err := s.ccaRepo.GetCCAByID(ctx, ccaID); err != nil {
		return nil, fmt.Errorf("get cca: %w", err)
	}

	now := time.Now()
	session := domain.NewCCASession(ccaID, title, ts, now, now)
	if err := s.ccaRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return session, nil
}

func (s *attendanceService) ListSessions(ctx context.Context, ccaID string) ([]*domain.CCASession, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.ccaRepo.ListSessionsByCCAID(ctx, ccaID)
}

func (s *attendanceService) ImportRows(ctx context.Context, sessionID string, rows [][]string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.importRows(ctx, sessionID, rows)
}

func (s *attendanceService) ImportFromSheet(ctx context.Context, sessionID, sheetURL string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	rows, err := s.fetcher.FetchRows(ctx, sheetURL)
	if err != nil {
		return 0, fmt.Errorf("fetch sheet: %w", err)
	}
	return s.importRows(ctx, sessionID, rows)
}

func (s *attendanceService) ListEntries(ctx context.Context, sessionID string) ([]*domain.AttendanceEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.attendanceRepo.ListBySessionID(ctx, sessionID)
}

func (s *attendanceService) importRows(ctx context.Context, sessionID string, rows [][]string) (int, error) {
	if _, err := s.ccaRepo.GetSessionByID(ctx, sessionID); err != nil {
		return 0, fmt.Errorf("get session: %w", err)
	}

	now := time.Now()
	entries := make([]*domain.AttendanceEntry, 0, len(rows))
	for _, row := range rows {
		entry := rowToEntry(sessionID, row, now)
		if entry == nil {
			continue
		}
		entries = append(entries, entry)
	}

	deduped := RemoveDuplicateEntries(entries)
	if dropped := len(entries) - len(deduped); dropped > 0 {
		s.logger.Info("dropped duplicate attendance rows",
			slog.String("session_id", sessionID),
			slog.Int("dropped", dropped))
	}
	if len(deduped) == 0 {
		return 0, nil
	}
	if err := s.attendanceRepo.CreateEntries(ctx, deduped); err != nil {
		return 0, fmt.Errorf("create entries: %w", err)
	}
	return len(deduped), nil
}

// rowToEntry maps a raw sheet row to an attendance entry. The first column is
// the participant email, the second the display name. Rows with neither are
// skipped.
func rowToEntry(sessionID string, row []string, now time.Time) *domain.AttendanceEntry {
	var email, name string
	if len(row) > 0 {
		email = strings.TrimSpace(row[0])
	}
	if len(row) > 1 {
		name = strings.TrimSpace(row[1])
	}
	if email == "" && name == "" {
		return nil
	}
	return &domain.AttendanceEntry{
		SessionID:        sessionID,
		ParticipantEmail: email,
		ParticipantName:  name,
		CreatedAt:        now,
	}
}

// RemoveDuplicateEntries filters a batch of attendance entries so an entry is
// kept only when no earlier entry shares its email or its name. Dropped
// entries still count as earlier occurrences, so a chain of partial matches
// collapses to its first entry. Input order is preserved. Emails compare
// case-insensitively; empty fields never match each other.
func RemoveDuplicateEntries(entries []*domain.AttendanceEntry) []*domain.AttendanceEntry {
	seenEmail := make(map[string]struct{}, len(entries))
	seenName := make(map[string]struct{}, len(entries))
	kept := make([]*domain.AttendanceEntry, 0, len(entries))
	for _, e := range entries {
		email := strings.ToLower(e.ParticipantEmail)
		name := e.ParticipantName
		_, dupEmail := seenEmail[email]
		_, dupName := seenName[name]
		if email != "" {
			seenEmail[email] = struct{}{}
		}
		if name != "" {
			seenName[name] = struct{}{}
		}
		if (email != "" && dupEmail) || (name != "" && dupName) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
