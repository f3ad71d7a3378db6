package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"mockup-canvas-server/modules/common/apperr"
	"mockup-canvas-server/modules/common/model"
	redisClient "mockup-canvas-server/modules/common/redis"
	"mockup-canvas-server/modules/mockup"
)

// JobQueue - job 등록/조회/취소 저장소
type JobQueue interface {
	Enqueue(ctx context.Context, job *model.MockupJob) (int64, error)
	Get(ctx context.Context, jobID string) (*model.MockupJob, error)
	Save(ctx context.Context, job *model.MockupJob) error
	SetCancelled(ctx context.Context, jobID string) error
}

// EnqueueHandler - 비동기 목업 job 등록/조회
type EnqueueHandler struct {
	jobs           JobQueue
	maxUploadBytes int64
}

// EnqueueResponse - Enqueue 응답
type EnqueueResponse struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message,omitempty"`
	Error         *mockup.ErrorBody `json:"error,omitempty"`
	JobID         string            `json:"job_id,omitempty"`
	Queue         string            `json:"queue,omitempty"`
	QueuePosition int64             `json:"queuePosition,omitempty"`
}

// JobStatusResponse - job 조회 응답
type JobStatusResponse struct {
	Success bool              `json:"success"`
	Job     *model.MockupJob  `json:"job,omitempty"`
	Error   *mockup.ErrorBody `json:"error,omitempty"`
}

// NewEnqueueHandler - EnqueueHandler 생성
func NewEnqueueHandler(jobs JobQueue, maxUploadBytes int64) *EnqueueHandler {
	log.Println("✅ [Enqueue] Handler initialized")
	return &EnqueueHandler{jobs: jobs, maxUploadBytes: maxUploadBytes}
}

// RegisterRoutes - 라우트 등록
func (h *EnqueueHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/mockup/jobs", h.HandleEnqueue).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/mockup/jobs/{jobId}", h.HandleGetJob).Methods("GET", "OPTIONS")
	log.Println("✅ Enqueue routes registered: POST /api/mockup/jobs, GET /api/mockup/jobs/{jobId}")
}

func writeJSON(w http.ResponseWriter, r *http.Request, methods string) bool {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	// OPTIONS 요청 처리
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

// HandleEnqueue - POST /api/mockup/jobs
func (h *EnqueueHandler) HandleEnqueue(w http.ResponseWriter, r *http.Request) {
	if writeJSON(w, r, "POST, OPTIONS") {
		return
	}

	// 설정/이미지 검증은 큐에 넣기 전에
	parsed, err := mockup.ParseGenerateRequest(w, r, h.maxUploadBytes)
	if err != nil {
		log.Printf("❌ [Enqueue] Invalid request: %v", err)
		mockup.WriteError(w, err, EnqueueResponse{Error: mockup.ErrorBodyOf(err)})
		return
	}

	job, err := mockup.NewJob(uuid.New().String(), parsed)
	if err != nil {
		log.Printf("❌ [Enqueue] Failed to build job: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(EnqueueResponse{Error: &mockup.ErrorBody{Kind: "internal", Message: err.Error()}})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	position, err := h.jobs.Enqueue(ctx, job)
	if err != nil {
		log.Printf("❌ [Enqueue] Redis LPUSH failed: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(EnqueueResponse{Error: &mockup.ErrorBody{Kind: string(apperr.KindServiceBusy), Message: apperr.MsgServiceBusy}})
		return
	}

	log.Printf("✅ [Enqueue] Job %s enqueued successfully (position: %d)", job.JobID, position)

	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(EnqueueResponse{
		Success:       true,
		Message:       "Job enqueued successfully",
		JobID:         job.JobID,
		Queue:         redisClient.JobQueue,
		QueuePosition: position,
	})
}

// HandleGetJob - GET /api/mockup/jobs/{jobId}
// 입력 이미지(data URL)는 응답에서 제외
func (h *EnqueueHandler) HandleGetJob(w http.ResponseWriter, r *http.Request) {
	if writeJSON(w, r, "GET, OPTIONS") {
		return
	}

	jobID := mux.Vars(r)["jobId"]

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	job, err := h.jobs.Get(ctx, jobID)
	if errors.Is(err, redisClient.ErrJobNotFound) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(JobStatusResponse{Error: &mockup.ErrorBody{Kind: "not_found", Message: "Job not found"}})
		return
	}
	if err != nil {
		log.Printf("❌ [Enqueue] Failed to load job %s: %v", jobID, err)
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(JobStatusResponse{Error: &mockup.ErrorBody{Kind: string(apperr.KindServiceBusy), Message: apperr.MsgServiceBusy}})
		return
	}

	job.Artwork = ""
	job.BackgroundArtwork = ""
	json.NewEncoder(w).Encode(JobStatusResponse{Success: true, Job: job})
}
