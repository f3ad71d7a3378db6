package vertexai

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/auth"
	"cloud.google.com/go/auth/credentials"
	"google.golang.org/genai"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// Options - Vertex AI 접속 정보
// CredentialsJSON이 있으면 우선, 없으면 CredentialsPath, 둘 다 없으면 ADC
type Options struct {
	Project         string
	Location        string
	CredentialsJSON string
	CredentialsPath string
}

// NewClient - Vertex AI 백엔드 genai 클라이언트 생성
func NewClient(ctx context.Context, opts Options) (*genai.Client, error) {
	creds, err := loadCredentials(opts)
	if err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Backend:     genai.BackendVertexAI,
		Project:     opts.Project,
		Location:    opts.Location,
		Credentials: creds,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Vertex AI client: %w", err)
	}

	log.Printf("✅ [VertexAI] Client initialized for project=%s, location=%s", opts.Project, opts.Location)
	return client, nil
}

// loadCredentials - 인증 정보 결정
func loadCredentials(opts Options) (*auth.Credentials, error) {
	var credsJSON []byte

	switch {
	case opts.CredentialsJSON != "":
		// 1. VERTEXAI_CREDENTIALS_JSON (배포용)
		log.Println("✅ [VertexAI] Using VERTEXAI_CREDENTIALS_JSON from environment")
		credsJSON = []byte(opts.CredentialsJSON)
	case opts.CredentialsPath != "":
		// 2. VERTEXAI_CREDENTIALS_PATH (로컬 테스트용)
		log.Printf("✅ [VertexAI] Using credentials from file: %s", opts.CredentialsPath)
		data, err := os.ReadFile(opts.CredentialsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file: %w", err)
		}
		credsJSON = data
	default:
		// 3. Application Default Credentials (ADC)
		log.Println("⚠️  [VertexAI] No explicit credentials found, using Application Default Credentials")
	}

	if credsJSON != nil {
		// JSON 유효성 검사
		var probe map[string]interface{}
		if err := json.Unmarshal(credsJSON, &probe); err != nil {
			return nil, fmt.Errorf("invalid JSON credentials: %w", err)
		}
	}

	creds, err := credentials.DetectDefault(&credentials.DetectOptions{
		Scopes:          []string{cloudPlatformScope},
		CredentialsJSON: credsJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to detect Vertex AI credentials: %w", err)
	}
	return creds, nil
}
