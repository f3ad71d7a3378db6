package model

import (
	"encoding/json"
	"time"
)

// MockupJob - Redis에 저장되는 비동기 목업 job 레코드
// TTL 만료가 유일한 정리 수단 (생성 이력 아님)
type MockupJob struct {
	JobID  string `json:"job_id"`
	UserID string `json:"user_id,omitempty"`
	Status string `json:"job_status"`
	State  string `json:"state"` // 오케스트레이터 상태

	Config            json.RawMessage `json:"config"`
	Artwork           string          `json:"artwork"`                      // data URL
	BackgroundArtwork string          `json:"background_artwork,omitempty"` // data URL

	ErrorKind    string `json:"error_kind,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`

	ResultMimeType string `json:"result_mime_type,omitempty"`
	ResultBase64   string `json:"result_base64,omitempty"` // 업로드 비활성화 시
	ResultURL      string `json:"result_url,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

const (
	StatusPending       = "pending"
	StatusProcessing    = "processing"
	StatusCompleted     = "completed"
	StatusFailed        = "failed"
	StatusUserCancelled = "user_cancelled"
)

// IsFinished - 더 이상 상태가 바뀌지 않는 job인지
func (j *MockupJob) IsFinished() bool {
	switch j.Status {
	case StatusCompleted, StatusFailed, StatusUserCancelled:
		return true
	}
	return false
}

// JobEvent - websocket으로 전달되는 job 상태 변경
type JobEvent struct {
	Type         string `json:"type"` // "state" | "status"
	JobID        string `json:"job_id"`
	Status       string `json:"job_status,omitempty"`
	State        string `json:"state,omitempty"`
	ErrorKind    string `json:"error_kind,omitempty"`
	ErrorMessage string `json:"error_message,omitempty"`
	ResultURL    string `json:"result_url,omitempty"`
	Timestamp    int64  `json:"timestamp"`
}
