package gemini

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"google.golang.org/genai"

	"mockup-canvas-server/modules/common/utils"
)

// 편집 호출 안전 설정 - 네 가지 카테고리 모두 BLOCK_NONE
var editSafetySettings = []*genai.SafetySetting{
	{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockNone},
	{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockNone},
	{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockNone},
	{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockNone},
}

// Client - genai 클라이언트 풀 (호출마다 API 키 로테이션)
type Client struct {
	clients   []*genai.Client
	next      atomic.Uint64
	baseModel string
	editModel string
}

// NewClient - API 키마다 Gemini API 클라이언트 생성
func NewClient(ctx context.Context, apiKeys []string, baseModel, editModel string) (*Client, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("no API keys provided")
	}

	clients := make([]*genai.Client, 0, len(apiKeys))
	for i, apiKey := range apiKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client with key #%d: %w", i+1, err)
		}
		clients = append(clients, client)
	}

	log.Printf("✅ [Gemini] %d client(s) initialized (base=%s, edit=%s)", len(clients), baseModel, editModel)
	return NewClientFrom(clients, baseModel, editModel), nil
}

// NewClientFrom - 이미 만들어진 genai 클라이언트로 풀 구성 (Vertex 백엔드용)
func NewClientFrom(clients []*genai.Client, baseModel, editModel string) *Client {
	return &Client{clients: clients, baseModel: baseModel, editModel: editModel}
}

// pick - 라운드로빈으로 다음 클라이언트 선택
func (c *Client) pick() (*genai.Client, int) {
	n := c.next.Add(1) - 1
	idx := int(n % uint64(len(c.clients)))
	return c.clients[idx], idx
}

// GenerateBaseImage - Imagen text-to-image (phase 1)
// 응답 분류는 호출자 몫
func (c *Client) GenerateBaseImage(ctx context.Context, prompt, aspectRatio string) (*genai.GenerateImagesResponse, error) {
	client, idx := c.pick()
	log.Printf("🎨 [Gemini] GenerateImages model=%s aspect=%s key=#%d", c.baseModel, aspectRatio, idx+1)

	return client.Models.GenerateImages(ctx, c.baseModel, prompt, &genai.GenerateImagesConfig{
		NumberOfImages:   1,
		AspectRatio:      aspectRatio,
		OutputMIMEType:   "image/png",
		IncludeRAIReason: true,
	})
}

// EditImage - base 이미지 + 아트워크 + 편집 지시문 (phase 2)
// 파트 순서: base, artwork, text
func (c *Client) EditImage(ctx context.Context, base, artwork *utils.Image, prompt string) (*genai.GenerateContentResponse, error) {
	client, idx := c.pick()
	log.Printf("🖌️  [Gemini] GenerateContent model=%s base=%d bytes artwork=%d bytes (%s) key=#%d",
		c.editModel, len(base.Data), len(artwork.Data), artwork.MimeType, idx+1)

	content := &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			genai.NewPartFromBytes(base.Data, base.MimeType),
			genai.NewPartFromBytes(artwork.Data, artwork.MimeType),
			genai.NewPartFromText(prompt),
		},
	}

	return client.Models.GenerateContent(ctx, c.editModel, []*genai.Content{content}, &genai.GenerateContentConfig{
		ResponseModalities: []string{string(genai.ModalityImage), string(genai.ModalityText)},
		SafetySettings:     editSafetySettings,
	})
}
