package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"mockup-canvas-server/modules/common/config"
)

// 워커 BRPOP이 커넥션을 하나씩 점유하므로 API 요청용 여유분
const spareConnections = 4

// ClientOptions - 설정으로부터 go-redis 옵션 구성
func ClientOptions(cfg *config.Config) *redis.Options {
	opts := &redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Username:     cfg.RedisUsername,
		Password:     cfg.RedisPassword,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		PoolSize:     max(cfg.WorkerConcurrency, 1) + spareConnections,
		// 워커 종료 시 블로킹 BRPOP도 ctx 취소로 빠져나옴
		ContextTimeoutEnabled: true,
	}
	if cfg.RedisUseTLS {
		opts.TLSConfig = &tls.Config{
			MinVersion:         tls.VersionTLS12,
			InsecureSkipVerify: true, // 관리형 Redis 자체 서명 인증서용
		}
	}
	return opts
}

// Connect - 연결 후 PING 확인, 실패하면 클라이언트를 닫고 에러 반환
func Connect(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	opts := ClientOptions(cfg)
	log.Printf("🔌 [Redis] Connecting to %s (tls=%t, pool=%d)", opts.Addr, opts.TLSConfig != nil, opts.PoolSize)

	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}

	log.Printf("✅ [Redis] Connected, job queue %q ready", JobQueue)
	return rdb, nil
}
