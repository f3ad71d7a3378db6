package worker

import (
	"context"
	"errors"
	"log"
	"time"
)

// Queue - job_id 큐 (BRPOP)
type Queue interface {
	Dequeue(ctx context.Context, timeout time.Duration) (string, error)
}

// Processor - job 하나 처리
type Processor interface {
	ProcessJob(ctx context.Context, jobID string)
}

// Worker - Redis 큐 소비자 풀
type Worker struct {
	queue       Queue
	processor   Processor
	concurrency int
	errorDelay  time.Duration
}

// NewWorker - concurrency개의 goroutine이 큐를 감시
func NewWorker(queue Queue, processor Processor, concurrency int) *Worker {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Worker{
		queue:       queue,
		processor:   processor,
		concurrency: concurrency,
		errorDelay:  5 * time.Second,
	}
}

// Start - 워커 시작 (ctx 취소 시 종료)
func (w *Worker) Start(ctx context.Context) {
	log.Printf("🔄 Redis Queue Worker starting (concurrency: %d)", w.concurrency)
	for i := 0; i < w.concurrency; i++ {
		go w.loop(ctx, i+1)
	}
}

// loop - 무한 루프로 Queue 감시
func (w *Worker) loop(ctx context.Context, id int) {
	log.Printf("👀 [Worker %d] Watching queue", id)

	for {
		if ctx.Err() != nil {
			log.Printf("🛑 [Worker %d] Stopped", id)
			return
		}

		// Job 받기 (BRPOP - Blocking Right Pop)
		jobID, err := w.queue.Dequeue(ctx, 0)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				continue
			}
			log.Printf("❌ [Worker %d] Redis BRPOP error: %v", id, err)
			select {
			case <-ctx.Done():
			case <-time.After(w.errorDelay):
			}
			continue
		}

		log.Printf("🎯 [Worker %d] Received new job: %s", id, jobID)
		w.processor.ProcessJob(ctx, jobID)
		log.Printf("✅ [Worker %d] Job %s processing completed", id, jobID)
	}
}
