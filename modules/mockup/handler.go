package mockup

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"mockup-canvas-server/modules/common/apperr"
	"mockup-canvas-server/modules/common/utils"
)

// Generator - 동기 생성 엔드포인트가 사용하는 오케스트레이터
type Generator interface {
	Generate(ctx context.Context, in Input, observe StateObserver) (*utils.Image, error)
}

// Handler - 목업 HTTP 핸들러
type Handler struct {
	generator      Generator
	maxUploadBytes int64
	timeout        time.Duration
}

// NewHandler - Handler 생성
// timeout은 재시도 대기 포함 전체 생성 시간 상한
func NewHandler(generator Generator, maxUploadBytes int64, timeout time.Duration) *Handler {
	return &Handler{generator: generator, maxUploadBytes: maxUploadBytes, timeout: timeout}
}

// RegisterRoutes - 라우트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/mockup/options", h.HandleOptions).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/mockup/prompts", h.HandlePrompts).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/mockup/generate", h.HandleGenerate).Methods("POST", "OPTIONS")
	log.Println("✅ Mockup routes registered: /api/mockup/options, /api/mockup/prompts, /api/mockup/generate")
}

// setHeaders - JSON + CORS 헤더, OPTIONS면 true
func setHeaders(w http.ResponseWriter, r *http.Request, methods string) bool {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods)
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

// ErrorBodyOf - 분류된 에러 → 응답 바디
func ErrorBodyOf(err error) *ErrorBody {
	return &ErrorBody{Kind: string(apperr.KindOf(err)), Message: apperr.MessageOf(err)}
}

// WriteError - Kind별 상태 코드로 에러 응답
func WriteError(w http.ResponseWriter, err error, body interface{}) {
	w.WriteHeader(apperr.HTTPStatus(apperr.KindOf(err)))
	json.NewEncoder(w).Encode(body)
}

// HandleOptions - GET /api/mockup/options
func (h *Handler) HandleOptions(w http.ResponseWriter, r *http.Request) {
	if setHeaders(w, r, "GET, OPTIONS") {
		return
	}
	json.NewEncoder(w).Encode(Options())
}

// HandlePrompts - POST /api/mockup/prompts (네트워크 호출 없음)
func (h *Handler) HandlePrompts(w http.ResponseWriter, r *http.Request) {
	if setHeaders(w, r, "POST, OPTIONS") {
		return
	}

	var cfg DesignConfiguration
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&cfg); err != nil {
		err = apperr.Configuration("Invalid request body: %v", err)
		WriteError(w, err, PromptsResponse{Error: ErrorBodyOf(err)})
		return
	}

	prompts, err := Compile(&cfg)
	if err == nil {
		_, err = NormalizeAspectRatio(cfg.AspectRatio)
	}
	if err != nil {
		log.Printf("⚠️  [Mockup] Prompt compile rejected: %v", err)
		WriteError(w, err, PromptsResponse{Error: ErrorBodyOf(err)})
		return
	}

	json.NewEncoder(w).Encode(PromptsResponse{Success: true, Prompts: prompts})
}

// HandleGenerate - POST /api/mockup/generate (동기 생성)
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if setHeaders(w, r, "POST, OPTIONS") {
		return
	}

	requestID := uuid.New().String()

	parsed, err := ParseGenerateRequest(w, r, h.maxUploadBytes)
	if err != nil {
		log.Printf("⚠️  [Mockup %s] Invalid generate request: %v", requestID, err)
		WriteError(w, err, GenerateResponse{RequestID: requestID, Error: ErrorBodyOf(err)})
		return
	}

	ctx := r.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	img, err := h.generator.Generate(ctx, Input{
		RequestID:  requestID,
		Config:     &parsed.Config,
		Artwork:    parsed.Artwork,
		Background: parsed.Background,
	}, nil)
	if err != nil {
		WriteError(w, err, GenerateResponse{RequestID: requestID, Error: ErrorBodyOf(err)})
		return
	}

	json.NewEncoder(w).Encode(GenerateResponse{
		Success:     true,
		RequestID:   requestID,
		MimeType:    img.MimeType,
		ImageBase64: base64.StdEncoding.EncodeToString(img.Data),
	})
}
