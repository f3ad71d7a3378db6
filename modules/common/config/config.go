package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	BackendGemini = "gemini"
	BackendVertex = "vertex"
)

// Config 구조체 - 모든 환경변수를 담음
type Config struct {
	// Redis (비어 있으면 비동기 job 비활성화)
	RedisHost         string
	RedisPort         string
	RedisUsername     string
	RedisPassword     string
	RedisUseTLS       bool
	JobTTLMinutes     int
	WorkerConcurrency int

	// Supabase (비어 있으면 업로드 비활성화)
	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseBucket     string
	WebPQuality        int

	// Gemini API
	GeminiBackend  string
	GeminiAPIKey   string
	GeminiAPIKeys  string // 콤마 구분, 키 로테이션용
	BaseImageModel string
	EditImageModel string

	// Vertex AI
	VertexAIProject         string
	VertexAILocation        string
	VertexAICredentialsJSON string
	VertexAICredentialsPath string

	// Retry
	RetryMaxAttempts    int
	RetryInitialDelayMs int
	RetryMaxJitterMs    int

	// Server
	Port        string
	MaxUploadMB int
}

var globalConfig *Config

// LoadConfig - 환경변수 로드
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (있으면)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	// Redis UseTLS 파싱
	useTLS := true // 기본값
	if tlsStr := os.Getenv("REDIS_USE_TLS"); tlsStr != "" {
		if parsed, err := strconv.ParseBool(tlsStr); err == nil {
			useTLS = parsed
		}
	}

	globalConfig = &Config{
		// Redis
		RedisHost:         getEnv("REDIS_HOST", ""),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		RedisUsername:     getEnv("REDIS_USERNAME", ""),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisUseTLS:       useTLS,
		JobTTLMinutes:     getEnvInt("JOB_TTL_MINUTES", 60),
		WorkerConcurrency: getEnvInt("WORKER_CONCURRENCY", 2),

		// Supabase
		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabaseBucket:     getEnv("SUPABASE_BUCKET", "mockups"),
		WebPQuality:        getEnvInt("WEBP_QUALITY", 90),

		// Gemini API
		GeminiBackend:  strings.ToLower(getEnv("GEMINI_BACKEND", BackendGemini)),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiAPIKeys:  getEnv("GEMINI_API_KEYS", ""),
		BaseImageModel: getEnv("BASE_IMAGE_MODEL", "imagen-4.0-generate-001"),
		EditImageModel: getEnv("EDIT_IMAGE_MODEL", "gemini-2.5-flash-image-preview"),

		// Vertex AI
		VertexAIProject:         getEnv("VERTEXAI_PROJECT", ""),
		VertexAILocation:        getEnv("VERTEXAI_LOCATION", "us-central1"),
		VertexAICredentialsJSON: getEnv("VERTEXAI_CREDENTIALS_JSON", ""),
		VertexAICredentialsPath: getEnv("VERTEXAI_CREDENTIALS_PATH", ""),

		// Retry
		RetryMaxAttempts:    getEnvInt("RETRY_MAX_ATTEMPTS", 5),
		RetryInitialDelayMs: getEnvInt("RETRY_INITIAL_DELAY_MS", 10000),
		RetryMaxJitterMs:    getEnvInt("RETRY_MAX_JITTER_MS", 1000),

		// Server
		Port:        getEnv("PORT", "8080"),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 10),
	}

	// 필수 환경변수 검증
	if err := globalConfig.validate(); err != nil {
		return nil, err
	}

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Gemini: backend=%s keys=%d", globalConfig.GeminiBackend, len(globalConfig.GeminiAPIKeyList()))
	log.Printf("   Models: base=%s edit=%s", globalConfig.BaseImageModel, globalConfig.EditImageModel)
	log.Printf("   Retry: %d attempts, %dms initial delay", globalConfig.RetryMaxAttempts, globalConfig.RetryInitialDelayMs)
	if globalConfig.RedisEnabled() {
		log.Printf("   Redis: %s (TLS: %v)", globalConfig.GetRedisAddr(), globalConfig.RedisUseTLS)
	} else {
		log.Println("   Redis: disabled (async jobs off)")
	}
	if globalConfig.StorageEnabled() {
		log.Printf("   Supabase: %s bucket=%s", globalConfig.SupabaseURL, globalConfig.SupabaseBucket)
	} else {
		log.Println("   Supabase: disabled (results returned inline)")
	}

	return globalConfig, nil
}

// GetConfig - 로드된 설정 가져오기
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// validate - 필수 환경변수 검증
func (c *Config) validate() error {
	switch c.GeminiBackend {
	case BackendGemini:
		if len(c.GeminiAPIKeyList()) == 0 {
			return fmt.Errorf("GEMINI_API_KEY or GEMINI_API_KEYS is required")
		}
	case BackendVertex:
		if c.VertexAIProject == "" {
			return fmt.Errorf("VERTEXAI_PROJECT is required for vertex backend")
		}
		if c.VertexAILocation == "" {
			return fmt.Errorf("VERTEXAI_LOCATION is required for vertex backend")
		}
	default:
		return fmt.Errorf("GEMINI_BACKEND must be %q or %q, got %q", BackendGemini, BackendVertex, c.GeminiBackend)
	}
	if c.RetryMaxAttempts <= 0 {
		return fmt.Errorf("RETRY_MAX_ATTEMPTS must be positive")
	}
	if c.RetryInitialDelayMs <= 0 {
		return fmt.Errorf("RETRY_INITIAL_DELAY_MS must be positive")
	}
	if c.RetryMaxJitterMs < 0 {
		return fmt.Errorf("RETRY_MAX_JITTER_MS must not be negative")
	}
	if c.WorkerConcurrency <= 0 {
		return fmt.Errorf("WORKER_CONCURRENCY must be positive")
	}
	// 0이면 Redis 키가 만료되지 않음
	if c.JobTTLMinutes <= 0 {
		return fmt.Errorf("JOB_TTL_MINUTES must be positive")
	}
	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive")
	}
	if c.SupabaseURL != "" && c.SupabaseServiceKey == "" {
		return fmt.Errorf("SUPABASE_SERVICE_KEY is required when SUPABASE_URL is set")
	}
	return nil
}

// getEnv - 환경변수 가져오기 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt - 정수 환경변수 (파싱 실패 시 기본값)
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️  %s=%q is not a number, using %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

// GetRedisAddr - Redis 연결 문자열 생성
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}

// RedisEnabled - REDIS_HOST가 설정된 경우에만 job 큐 사용
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

// StorageEnabled - Supabase 업로드 사용 여부
func (c *Config) StorageEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceKey != ""
}

// GeminiAPIKeyList - GEMINI_API_KEYS + GEMINI_API_KEY (중복 제거, 순서 유지)
func (c *Config) GeminiAPIKeyList() []string {
	seen := map[string]bool{}
	var keys []string
	for _, k := range append(strings.Split(c.GeminiAPIKeys, ","), c.GeminiAPIKey) {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}

// JobTTL - job 레코드 만료 시간
func (c *Config) JobTTL() time.Duration {
	return time.Duration(c.JobTTLMinutes) * time.Minute
}

// RetryInitialDelay - 첫 재시도 대기
func (c *Config) RetryInitialDelay() time.Duration {
	return time.Duration(c.RetryInitialDelayMs) * time.Millisecond
}

// RetryMaxJitter - 재시도 jitter 상한
func (c *Config) RetryMaxJitter() time.Duration {
	return time.Duration(c.RetryMaxJitterMs) * time.Millisecond
}

// MaxUploadBytes - multipart 업로드 상한
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}
