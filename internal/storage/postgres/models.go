package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/Duggu05-coder/Lumos/internal/analysis/emotion"
	"github.com/Duggu05-coder/Lumos/internal/model/record"
	"github.com/Duggu05-coder/Lumos/internal/therapy"
)

type sessionModel struct {
	ID        string `gorm:"primaryKey;size:100"`
	CreatedAt time.Time
}

func (sessionModel) TableName() string {
	return "emotion_session"
}

type emotionRecordModel struct {
	ID              string    `gorm:"primaryKey;size:36"`
	SessionID       string    `gorm:"size:100;not null;index"`
	InputType       string    `gorm:"size:20;not null"`
	InputContent    string    `gorm:"type:text"`
	DetectedEmotion string    `gorm:"size:50"`
	ConfidenceScore float64   `gorm:"not null"`
	Timestamp       time.Time `gorm:"index"`
}

func (emotionRecordModel) TableName() string {
	return "emotion_record"
}

type therapyResponseModel struct {
	ID                string    `gorm:"primaryKey;size:36"`
	SessionID         string    `gorm:"size:100;not null;index"`
	EmotionRecordID   string    `gorm:"size:36;index"`
	ResponseText      string    `gorm:"type:text"`
	ResponseType      string    `gorm:"size:50"`
	RemedySuggestions string    `gorm:"type:text"`
	Timestamp         time.Time `gorm:"index"`
}

func (therapyResponseModel) TableName() string {
	return "therapy_response"
}

func recordToModel(rec record.EmotionRecord) emotionRecordModel {
	return emotionRecordModel{
		ID:              rec.ID,
		SessionID:       rec.SessionID,
		InputType:       string(rec.InputType),
		InputContent:    rec.Content,
		DetectedEmotion: string(rec.Label),
		ConfidenceScore: rec.Confidence,
		Timestamp:       rec.Timestamp,
	}
}

func recordFromModel(m emotionRecordModel) record.EmotionRecord {
	return record.EmotionRecord{
		ID:         m.ID,
		SessionID:  m.SessionID,
		InputType:  record.InputType(m.InputType),
		Content:    m.InputContent,
		Label:      emotion.Label(m.DetectedEmotion),
		Confidence: m.ConfidenceScore,
		Timestamp:  m.Timestamp.UTC(),
	}
}

func responseToModel(resp record.TherapyResponse) (therapyResponseModel, error) {
	remedies := resp.Remedies
	if remedies == nil {
		remedies = []therapy.Remedy{}
	}
	encoded, err := json.Marshal(remedies)
	if err != nil {
		return therapyResponseModel{}, fmt.Errorf("encode remedies: %w", err)
	}
	return therapyResponseModel{
		ID:                resp.ID,
		SessionID:         resp.SessionID,
		EmotionRecordID:   resp.EmotionRecordID,
		ResponseText:      resp.ResponseText,
		ResponseType:      resp.ResponseType,
		RemedySuggestions: string(encoded),
		Timestamp:         resp.Timestamp,
	}, nil
}

func responseFromModel(m therapyResponseModel) (record.TherapyResponse, error) {
	remedies := []therapy.Remedy{}
	if m.RemedySuggestions != "" {
		if err := json.Unmarshal([]byte(m.RemedySuggestions), &remedies); err != nil {
			return record.TherapyResponse{}, fmt.Errorf("decode remedies of response %s: %w", m.ID, err)
		}
	}
	return record.TherapyResponse{
		ID:              m.ID,
		SessionID:       m.SessionID,
		EmotionRecordID: m.EmotionRecordID,
		ResponseText:    m.ResponseText,
		ResponseType:    m.ResponseType,
		Remedies:        remedies,
		Timestamp:       m.Timestamp.UTC(),
	}, nil
}
