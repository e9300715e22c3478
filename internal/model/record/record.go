// Package record defines the persisted history of classifications and the
// store contract used to keep it.
package record

import (
	"context"
	"errors"
	"time"

	"github.com/Duggu05-coder/Lumos/internal/analysis/emotion"
	"github.com/Duggu05-coder/Lumos/internal/therapy"
)

var (
	ErrSessionRequired = errors.New("session id is required")
	ErrSessionNotFound = errors.New("session not found")
)

// InputType is the modality a record was classified from.
type InputType string

const (
	InputText   InputType = "text"
	InputVoice  InputType = "voice"
	InputFacial InputType = "facial"
)

// FacialPlaceholder is stored instead of image data.
const FacialPlaceholder = "facial_expression_analyzed"

// ResponseTypeComprehensive tags responses built from a full bundle.
const ResponseTypeComprehensive = "comprehensive"

// Session captures an anonymous conversation.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// EmotionRecord is one classification event.
type EmotionRecord struct {
	ID         string        `json:"id"`
	SessionID  string        `json:"sessionId"`
	InputType  InputType     `json:"inputType"`
	Content    string        `json:"content"`
	Label      emotion.Label `json:"emotion"`
	Confidence float64       `json:"confidence"`
	Timestamp  time.Time     `json:"timestamp"`
}

// TherapyResponse is the reply stored alongside an EmotionRecord.
type TherapyResponse struct {
	ID              string           `json:"id"`
	SessionID       string           `json:"sessionId"`
	EmotionRecordID string           `json:"emotionRecordId"`
	ResponseText    string           `json:"responseText"`
	ResponseType    string           `json:"responseType"`
	Remedies        []therapy.Remedy `json:"remedies"`
	Timestamp       time.Time        `json:"timestamp"`
}

// Interaction joins a record with its response.
type Interaction struct {
	Record   EmotionRecord
	Response TherapyResponse
}

// Store persists sessions, records and responses. Listings are oldest first.
type Store interface {
	CreateSession(ctx context.Context) (Session, error)
	GetSession(ctx context.Context, id string) (Session, error)
	SaveRecord(ctx context.Context, rec EmotionRecord) (EmotionRecord, error)
	SaveResponse(ctx context.Context, resp TherapyResponse) (TherapyResponse, error)
	ListRecords(ctx context.Context, sessionID string) ([]EmotionRecord, error)
	History(ctx context.Context, sessionID string) ([]Interaction, error)
	ClearHistory(ctx context.Context, sessionID string) error
}
