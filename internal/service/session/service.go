// Package session keeps conversation history in memory.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Duggu05-coder/Lumos/internal/model/record"
	"github.com/Duggu05-coder/Lumos/internal/therapy"
)

// Service is an in-memory record.Store suitable for a single process.
type Service struct {
	mu        sync.RWMutex
	sessions  map[string]record.Session
	records   map[string][]record.EmotionRecord
	responses map[string][]record.TherapyResponse
	now       func() time.Time
}

var _ record.Store = (*Service)(nil)

// NewService bootstraps an empty store.
func NewService() *Service {
	return &Service{
		sessions:  make(map[string]record.Session),
		records:   make(map[string][]record.EmotionRecord),
		responses: make(map[string][]record.TherapyResponse),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// CreateSession provisions an anonymous session.
func (s *Service) CreateSession(_ context.Context) (record.Session, error) {
	session := record.Session{
		ID:        uuid.NewString(),
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session, nil
}

// GetSession retrieves a session by identifier.
func (s *Service) GetSession(_ context.Context, id string) (record.Session, error) {
	if id == "" {
		return record.Session{}, record.ErrSessionRequired
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return record.Session{}, record.ErrSessionNotFound
	}
	return session, nil
}

// SaveRecord appends a classification to the session history.
func (s *Service) SaveRecord(_ context.Context, rec record.EmotionRecord) (record.EmotionRecord, error) {
	if rec.SessionID == "" {
		return record.EmotionRecord{}, record.ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[rec.SessionID]; !ok {
		return record.EmotionRecord{}, record.ErrSessionNotFound
	}

	rec.ID = uuid.NewString()
	if rec.Timestamp.IsZero() {
		rec.Timestamp = s.now()
	}
	s.records[rec.SessionID] = append(s.records[rec.SessionID], rec)
	return rec, nil
}

// SaveResponse stores the reply generated for a record.
func (s *Service) SaveResponse(_ context.Context, resp record.TherapyResponse) (record.TherapyResponse, error) {
	if resp.SessionID == "" {
		return record.TherapyResponse{}, record.ErrSessionRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[resp.SessionID]; !ok {
		return record.TherapyResponse{}, record.ErrSessionNotFound
	}

	resp.ID = uuid.NewString()
	resp.Remedies = append([]therapy.Remedy{}, resp.Remedies...)
	if resp.Timestamp.IsZero() {
		resp.Timestamp = s.now()
	}
	s.responses[resp.SessionID] = append(s.responses[resp.SessionID], resp)
	return resp, nil
}

// ListRecords returns a copy of the session's records, oldest first.
func (s *Service) ListRecords(ctx context.Context, sessionID string) ([]record.EmotionRecord, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]record.EmotionRecord, len(s.records[sessionID]))
	copy(copied, s.records[sessionID])
	return copied, nil
}

// History pairs each record with its response. Records without a stored
// response are skipped.
func (s *Service) History(ctx context.Context, sessionID string) ([]record.Interaction, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	byRecord := make(map[string]record.TherapyResponse, len(s.responses[sessionID]))
	for _, resp := range s.responses[sessionID] {
		byRecord[resp.EmotionRecordID] = resp
	}

	out := make([]record.Interaction, 0, len(s.records[sessionID]))
	for _, rec := range s.records[sessionID] {
		resp, ok := byRecord[rec.ID]
		if !ok {
			continue
		}
		resp.Remedies = append([]therapy.Remedy{}, resp.Remedies...)
		out = append(out, record.Interaction{Record: rec, Response: resp})
	}
	return out, nil
}

// ClearHistory drops every record and response of the session but keeps
// the session itself.
func (s *Service) ClearHistory(ctx context.Context, sessionID string) error {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.responses, sessionID)
	delete(s.records, sessionID)
	s.mu.Unlock()
	return nil
}
