package gemini

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"strings"
	"time"

	"google.golang.org/genai"

	"mockup-canvas-server/modules/common/apperr"
)

// Policy - 재시도 정책
// Sleep/Jitter는 테스트에서 교체 가능 (nil이면 기본 구현)
type Policy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxJitter    time.Duration

	Sleep  func(ctx context.Context, d time.Duration) error
	Jitter func(max time.Duration) time.Duration
}

// DefaultPolicy - 5회, 10초부터 2배씩, jitter 1초 미만
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts:  5,
		InitialDelay: 10 * time.Second,
		MaxJitter:    time.Second,
	}
}

// sleepContext - ctx 취소 시 즉시 반환
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func randomJitter(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(rand.Int63n(int64(max)))
}

// Do - rate limit 에러일 때만 지수 백오프로 재시도
// 다른 에러는 첫 실패에서 그대로 반환, 한도 초과 시 ServiceBusy
func Do[T any](ctx context.Context, policy Policy, label string, call func(ctx context.Context) (T, error)) (T, error) {
	sleep := policy.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	jitter := policy.Jitter
	if jitter == nil {
		jitter = randomJitter
	}
	maxAttempts := policy.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	var zero T
	var lastErr error
	delay := policy.InitialDelay
	var lastWait time.Duration

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			log.Printf("   🔄 [Gemini Retry] %s attempt %d/%d", label, attempt, maxAttempts)
		}

		result, err := call(ctx)
		if err == nil {
			if attempt > 1 {
				log.Printf("✅ [Gemini Retry] %s succeeded on attempt %d/%d", label, attempt, maxAttempts)
			}
			return result, nil
		}
		lastErr = err

		// 429가 아닌 에러는 재시도 안 함
		if !IsRateLimitError(err) {
			return zero, err
		}

		if attempt == maxAttempts {
			break
		}

		wait := delay + jitter(policy.MaxJitter)
		if wait < lastWait {
			wait = lastWait
		}
		log.Printf("⚠️  [Gemini Retry] %s hit rate limit on attempt %d/%d, waiting %v", label, attempt, maxAttempts, wait.Round(time.Millisecond))
		if err := sleep(ctx, wait); err != nil {
			log.Printf("❌ [Gemini Retry] %s wait cancelled: %v", label, err)
			return zero, err
		}
		lastWait = wait
		delay *= 2
	}

	log.Printf("❌ [Gemini Retry] %s exhausted all %d attempts: %v", label, maxAttempts, lastErr)
	return zero, apperr.ServiceBusy(lastErr)
}

// IsRateLimitError - 429 / RESOURCE_EXHAUSTED / quota 에러인지 확인
func IsRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, apperr.ErrRateLimited) {
		return true
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) && apiErr.Code == 429 {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "resource_exhausted") ||
		strings.Contains(errStr, "resource exhausted") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "quota")
}
