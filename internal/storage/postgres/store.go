// Package postgres persists conversation history with gorm on PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Duggu05-coder/Lumos/internal/model/record"
)

// Store implements record.Store on a gorm connection.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

var _ record.Store = (*Store)(nil)

// Open connects to databaseURL, verifies the connection and migrates the
// schema.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := New(db)
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// New wraps an existing gorm handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Migrate creates or updates the tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&sessionModel{}, &emotionRecordModel{}, &therapyResponseModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	if s.db == nil {
		return
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}

func (s *Store) CreateSession(ctx context.Context) (record.Session, error) {
	m := sessionModel{ID: uuid.NewString(), CreatedAt: s.now()}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return record.Session{}, fmt.Errorf("failed to insert session: %w", err)
	}
	return record.Session{ID: m.ID, CreatedAt: m.CreatedAt}, nil
}

func (s *Store) GetSession(ctx context.Context, id string) (record.Session, error) {
	if id == "" {
		return record.Session{}, record.ErrSessionRequired
	}
	var m sessionModel
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return record.Session{}, record.ErrSessionNotFound
	}
	if err != nil {
		return record.Session{}, fmt.Errorf("failed to query session: %w", err)
	}
	return record.Session{ID: m.ID, CreatedAt: m.CreatedAt.UTC()}, nil
}

func (s *Store) SaveRecord(ctx context.Context, rec record.EmotionRecord) (record.EmotionRecord, error) {
	if _, err := s.GetSession(ctx, rec.SessionID); err != nil {
		return record.EmotionRecord{}, err
	}
	rec.ID = uuid.NewString()
	if rec.Timestamp.IsZero() {
		rec.Timestamp = s.now()
	}
	m := recordToModel(rec)
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return record.EmotionRecord{}, fmt.Errorf("failed to insert emotion record: %w", err)
	}
	return rec, nil
}

func (s *Store) SaveResponse(ctx context.Context, resp record.TherapyResponse) (record.TherapyResponse, error) {
	if _, err := s.GetSession(ctx, resp.SessionID); err != nil {
		return record.TherapyResponse{}, err
	}
	resp.ID = uuid.NewString()
	if resp.Timestamp.IsZero() {
		resp.Timestamp = s.now()
	}
	m, err := responseToModel(resp)
	if err != nil {
		return record.TherapyResponse{}, err
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return record.TherapyResponse{}, fmt.Errorf("failed to insert therapy response: %w", err)
	}
	return resp, nil
}

func (s *Store) ListRecords(ctx context.Context, sessionID string) ([]record.EmotionRecord, error) {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	var models []emotionRecordModel
	if err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("timestamp ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to query emotion records: %w", err)
	}

	out := make([]record.EmotionRecord, 0, len(models))
	for _, m := range models {
		out = append(out, recordFromModel(m))
	}
	return out, nil
}

func (s *Store) History(ctx context.Context, sessionID string) ([]record.Interaction, error) {
	records, err := s.ListRecords(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var models []therapyResponseModel
	if err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to query therapy responses: %w", err)
	}
	byRecord := make(map[string]record.TherapyResponse, len(models))
	for _, m := range models {
		resp, err := responseFromModel(m)
		if err != nil {
			return nil, err
		}
		byRecord[resp.EmotionRecordID] = resp
	}

	out := make([]record.Interaction, 0, len(records))
	for _, rec := range records {
		if resp, ok := byRecord[rec.ID]; ok {
			out = append(out, record.Interaction{Record: rec, Response: resp})
		}
	}
	return out, nil
}

// ClearHistory deletes responses before records in one transaction.
func (s *Store) ClearHistory(ctx context.Context, sessionID string) error {
	if _, err := s.GetSession(ctx, sessionID); err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&therapyResponseModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete therapy responses: %w", err)
		}
		if err := tx.Where("session_id = ?", sessionID).Delete(&emotionRecordModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete emotion records: %w", err)
		}
		return nil
	})
}
