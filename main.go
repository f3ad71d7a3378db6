package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"google.golang.org/genai"

	"mockup-canvas-server/modules/common/config"
	"mockup-canvas-server/modules/common/gemini"
	"mockup-canvas-server/modules/common/model"
	redisClient "mockup-canvas-server/modules/common/redis"
	"mockup-canvas-server/modules/common/storage"
	"mockup-canvas-server/modules/common/vertexai"
	"mockup-canvas-server/modules/mockup"
	"mockup-canvas-server/modules/realtime"
	"mockup-canvas-server/modules/worker"
)

// CORS 헤더 추가
func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// 헬스 체크 엔드포인트
func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "mockup-canvas-server",
	})
}

// newGeminiClient - backend 설정에 따라 API key 풀 또는 Vertex AI 클라이언트
func newGeminiClient(ctx context.Context) (*gemini.Client, error) {
	cfg := config.GetConfig()
	if cfg.GeminiBackend == config.BackendVertex {
		vc, err := vertexai.NewClient(ctx, vertexai.Options{
			Project:         cfg.VertexAIProject,
			Location:        cfg.VertexAILocation,
			CredentialsJSON: cfg.VertexAICredentialsJSON,
			CredentialsPath: cfg.VertexAICredentialsPath,
		})
		if err != nil {
			return nil, err
		}
		return gemini.NewClientFrom([]*genai.Client{vc}, cfg.BaseImageModel, cfg.EditImageModel), nil
	}
	return gemini.NewClient(ctx, cfg.GeminiAPIKeyList(), cfg.BaseImageModel, cfg.EditImageModel)
}

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	ctx := context.Background()

	client, err := newGeminiClient(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to create Gemini client: %v", err)
	}

	policy := gemini.DefaultPolicy()
	policy.MaxAttempts = cfg.RetryMaxAttempts
	policy.InitialDelay = cfg.RetryInitialDelay()
	policy.MaxJitter = cfg.RetryMaxJitter()

	service := mockup.NewService(client, client, policy)

	// Redis (선택) - 없으면 동기 API만 제공
	var store *redisClient.JobStore
	if cfg.RedisEnabled() {
		rdb, err := redisClient.Connect(ctx, cfg)
		if err != nil {
			log.Printf("⚠️  Redis unavailable, async jobs disabled: %v", err)
		} else {
			store = redisClient.NewJobStore(rdb, cfg.JobTTL())
		}
	}

	hub := realtime.NewHub(func(jobID string) *model.JobEvent {
		if store == nil {
			return nil
		}
		job, err := store.Get(context.Background(), jobID)
		if err != nil {
			return nil
		}
		event := realtime.EventFromJob(job)
		return &event
	})
	hub.StartCleanupRoutine()

	// 라우터 설정
	r := mux.NewRouter()

	// CORS 미들웨어 적용
	r.Use(enableCORS)

	r.HandleFunc("/", healthCheck).Methods("GET")
	r.HandleFunc("/health", healthCheck).Methods("GET")
	r.HandleFunc("/ws", hub.HandleWebSocket)
	r.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		body := map[string]interface{}{"hub": hub.Metrics()}
		if store != nil {
			if length, err := store.QueueLength(r.Context()); err == nil {
				body["queueLength"] = length
			}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(body)
	}).Methods("GET")

	mockup.NewHandler(service, cfg.MaxUploadBytes(), 0).RegisterRoutes(r)

	if store != nil {
		uploader, err := storage.NewUploader(cfg)
		if err != nil {
			log.Printf("⚠️  Storage disabled: %v", err)
		}

		var resultUploader mockup.ResultUploader
		if uploader != nil {
			resultUploader = uploader
		}

		processor := mockup.NewJobProcessor(service, store, hub, resultUploader)
		worker.NewWorker(store, processor, cfg.WorkerConcurrency).Start(ctx)

		worker.NewEnqueueHandler(store, cfg.MaxUploadBytes()).RegisterRoutes(r)
		worker.NewCancelHandler(store, hub).RegisterRoutes(r)
	} else {
		log.Println("⚠️  Redis not configured, async job API disabled")
	}

	log.Printf("🚀 Mockup Canvas Server starting on port %s", cfg.Port)
	log.Printf("📡 WebSocket endpoint: ws://localhost:%s/ws?job=<jobId>", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("📊 Metrics: http://localhost:%s/metrics", cfg.Port)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 30 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
