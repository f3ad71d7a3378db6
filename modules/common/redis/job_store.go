package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"mockup-canvas-server/modules/common/model"
)

const (
	JobQueue        = "mockup:jobs:queue"
	jobKeyPrefix    = "mockup:job:"
	cancelKeyPrefix = "mockup:job-cancel:"
)

// ErrJobNotFound - 없거나 TTL 만료된 job
var ErrJobNotFound = errors.New("job not found")

// JobKey - job 레코드 키
func JobKey(jobID string) string {
	return jobKeyPrefix + jobID
}

// CancelKey - 취소 플래그 키
func CancelKey(jobID string) string {
	return cancelKeyPrefix + jobID
}

// JobStore - job 레코드(TTL 문자열) + 큐(LPUSH/BRPOP) + 취소 플래그
type JobStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewJobStore - JobStore 생성
func NewJobStore(rdb *redis.Client, ttl time.Duration) *JobStore {
	return &JobStore{rdb: rdb, ttl: ttl}
}

// Save - job 레코드 저장 (TTL 갱신)
func (s *JobStore) Save(ctx context.Context, job *model.MockupJob) error {
	job.UpdatedAt = time.Now()
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}
	if err := s.rdb.Set(ctx, JobKey(job.JobID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save job %s: %w", job.JobID, err)
	}
	return nil
}

// Get - job 레코드 조회
func (s *JobStore) Get(ctx context.Context, jobID string) (*model.MockupJob, error) {
	data, err := s.rdb.Get(ctx, JobKey(jobID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job %s: %w", jobID, err)
	}

	var job model.MockupJob
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job %s: %w", jobID, err)
	}
	return &job, nil
}

// Enqueue - 레코드 저장 후 큐에 job_id LPUSH, 큐 길이 반환
func (s *JobStore) Enqueue(ctx context.Context, job *model.MockupJob) (int64, error) {
	if err := s.Save(ctx, job); err != nil {
		return 0, err
	}
	position, err := s.rdb.LPush(ctx, JobQueue, job.JobID).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to enqueue job %s: %w", job.JobID, err)
	}
	log.Printf("📥 [JobStore] Job %s enqueued (position: %d)", job.JobID, position)
	return position, nil
}

// Dequeue - BRPOP (timeout 0이면 무한 대기)
func (s *JobStore) Dequeue(ctx context.Context, timeout time.Duration) (string, error) {
	result, err := s.rdb.BRPop(ctx, timeout, JobQueue).Result()
	if err != nil {
		return "", err
	}
	// result[0]은 큐 이름, result[1]이 job_id
	return result[1], nil
}

// QueueLength - 대기 중인 job 수
func (s *JobStore) QueueLength(ctx context.Context) (int64, error) {
	return s.rdb.LLen(ctx, JobQueue).Result()
}

// SetCancelled - 취소 플래그 설정 (job TTL과 동일)
func (s *JobStore) SetCancelled(ctx context.Context, jobID string) error {
	if err := s.rdb.Set(ctx, CancelKey(jobID), "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cancel flag for %s: %w", jobID, err)
	}
	return nil
}

// IsJobCancelled - 취소 플래그 확인 (Redis 오류 시 false)
func (s *JobStore) IsJobCancelled(ctx context.Context, jobID string) bool {
	n, err := s.rdb.Exists(ctx, CancelKey(jobID)).Result()
	if err != nil {
		log.Printf("⚠️  [JobStore] Cancel flag check failed for %s: %v", jobID, err)
		return false
	}
	return n > 0
}
