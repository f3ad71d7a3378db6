package cancel

import (
	"context"
	"log"
	"time"
)

// DefaultPollInterval - 취소 플래그 확인 주기
const DefaultPollInterval = 2 * time.Second

// Checker - 취소 플래그 조회 인터페이스
type Checker interface {
	IsJobCancelled(ctx context.Context, jobID string) bool
}

// WithJobCancel - 취소 플래그를 주기적으로 확인해서 ctx를 취소
// 재시도 대기 중에도 바로 빠져나오도록 오케스트레이터에 이 ctx를 넘김
// 반환된 stop은 반드시 호출
func WithJobCancel(parent context.Context, checker Checker, jobID string, interval time.Duration) (context.Context, context.CancelFunc) {
	ctx, cancelFn := context.WithCancel(parent)
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if checker.IsJobCancelled(ctx, jobID) {
					log.Printf("🛑 Job %s cancelled, stopping generation", jobID)
					cancelFn()
					return
				}
			}
		}
	}()

	return ctx, cancelFn
}

// CheckBeforePhase - 단계 진입 전 취소 체크
func CheckBeforePhase(ctx context.Context, checker Checker, jobID, phase string) bool {
	if checker.IsJobCancelled(ctx, jobID) {
		log.Printf("🛑 Job %s cancelled before %s", jobID, phase)
		return true
	}
	return false
}
