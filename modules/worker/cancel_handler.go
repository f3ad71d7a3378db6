package worker

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"mockup-canvas-server/modules/common/model"
	redisClient "mockup-canvas-server/modules/common/redis"
)

// JobPublisher - 취소 상태 알림
type JobPublisher interface {
	PublishJob(job *model.MockupJob)
}

// CancelHandler - Job 취소 API 핸들러
type CancelHandler struct {
	jobs      JobQueue
	publisher JobPublisher
}

// NewCancelHandler - 핸들러 생성 (publisher는 nil 허용)
func NewCancelHandler(jobs JobQueue, publisher JobPublisher) *CancelHandler {
	return &CancelHandler{jobs: jobs, publisher: publisher}
}

// RegisterRoutes - 라우트 등록
func (h *CancelHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/mockup/jobs/{jobId}/cancel", h.CancelJob).Methods("POST", "OPTIONS")
	log.Println("✅ [CancelHandler] Routes registered: POST /api/mockup/jobs/{jobId}/cancel")
}

// CancelJob - Job 취소 처리
// 대기 중인 job은 바로 user_cancelled, 실행 중인 job은 워커가 플래그를 보고 중단
func (h *CancelHandler) CancelJob(w http.ResponseWriter, r *http.Request) {
	if writeJSON(w, r, "POST, OPTIONS") {
		return
	}

	jobID := mux.Vars(r)["jobId"]
	log.Printf("🛑 [CancelHandler] Cancel requested for job: %s", jobID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// 1. 현재 job 상태 조회
	job, err := h.jobs.Get(ctx, jobID)
	if errors.Is(err, redisClient.ErrJobNotFound) {
		log.Printf("❌ [CancelHandler] Job not found: %s", jobID)
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "Job not found"})
		return
	}
	if err != nil {
		log.Printf("❌ [CancelHandler] Failed to load job %s: %v", jobID, err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "Failed to load job"})
		return
	}

	// 이미 끝난 job은 취소 불가
	if job.IsFinished() {
		log.Printf("⚠️  [CancelHandler] Job already %s: %s", job.Status, jobID)
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success":    false,
			"message":    "Job already " + job.Status,
			"job_id":     jobID,
			"job_status": job.Status,
		})
		return
	}

	// 2. 취소 플래그 설정
	if err := h.jobs.SetCancelled(ctx, jobID); err != nil {
		log.Printf("❌ [CancelHandler] Failed to set cancel flag: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "Failed to set cancel flag"})
		return
	}

	// 3. 아직 시작 안 한 job은 바로 종료 상태로
	previous := job.Status
	if job.Status == model.StatusPending {
		completed := time.Now()
		job.Status = model.StatusUserCancelled
		job.CompletedAt = &completed
		if err := h.jobs.Save(ctx, job); err != nil {
			log.Printf("⚠️  [CancelHandler] Failed to save cancelled job %s: %v", jobID, err)
		}
		if h.publisher != nil {
			h.publisher.PublishJob(job)
		}
	}

	log.Printf("✅ [CancelHandler] Cancel flag set for job: %s (status: %s)", jobID, previous)

	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":        true,
		"message":        "Cancel request sent. Job will stop before the next remote call.",
		"job_id":         jobID,
		"current_status": job.Status,
	})
}
