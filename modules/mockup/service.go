package mockup

import (
	"context"
	"errors"
	"log"

	"google.golang.org/genai"

	"mockup-canvas-server/modules/common/apperr"
	"mockup-canvas-server/modules/common/gemini"
	"mockup-canvas-server/modules/common/utils"
)

const (
	msgBaseNoImage    = "Base image generation failed. The API did not return an image."
	msgBaseEmptyImage = "Base image generation failed. The API returned empty image data."
	msgEditNoImage    = "API did not return an image."
	msgEditMalformed  = "API response was empty or malformed."
	msgArtworkMissing = "An artwork image is required."
)

// 편집 응답에서 차단으로 취급하는 finishReason
var blockedFinishReasons = map[genai.FinishReason]bool{
	genai.FinishReasonProhibitedContent:      true,
	genai.FinishReasonSafety:                 true,
	genai.FinishReasonBlocklist:              true,
	genai.FinishReasonSPII:                   true,
	genai.FinishReasonImageSafety:            true,
	genai.FinishReasonImageProhibitedContent: true,
}

// BaseImageGenerator - phase 1 text-to-image 기능
type BaseImageGenerator interface {
	GenerateBaseImage(ctx context.Context, prompt, aspectRatio string) (*genai.GenerateImagesResponse, error)
}

// ImageEditor - phase 2 image edit 기능
type ImageEditor interface {
	EditImage(ctx context.Context, base, artwork *utils.Image, prompt string) (*genai.GenerateContentResponse, error)
}

// StateObserver - 상태 전이 알림 (nil 허용)
type StateObserver func(state State)

// Input - 한 번의 생성 요청
// Background가 있으면 phase 1을 건너뛰고 base 이미지로 사용
type Input struct {
	RequestID  string
	Config     *DesignConfiguration
	Artwork    *utils.Image
	Background *utils.Image
}

// Service - 2단계 생성 오케스트레이터
// 요청 간 공유 상태가 없어서 동시에 호출해도 안전
type Service struct {
	generator BaseImageGenerator
	editor    ImageEditor
	policy    gemini.Policy
}

// NewService - 오케스트레이터 생성
func NewService(generator BaseImageGenerator, editor ImageEditor, policy gemini.Policy) *Service {
	return &Service{generator: generator, editor: editor, policy: policy}
}

// Generate - base 생성 → edit 순서로 호출하고 최종 이미지 반환
// 모든 실패는 apperr 분류 에러
func (s *Service) Generate(ctx context.Context, in Input, observe StateObserver) (*utils.Image, error) {
	notify := func(state State) {
		if observe != nil {
			observe(state)
		}
	}
	fail := func(err error) (*utils.Image, error) {
		log.Printf("❌ [Mockup %s] Generation failed (%s): %v", in.RequestID, apperr.KindOf(err), err)
		notify(StateFailed)
		return nil, err
	}

	notify(StateIdle)

	// 1. 프롬프트 컴파일 (네트워크 호출 전에 설정 검증)
	notify(StateCompilingBasePrompt)
	if in.Config == nil {
		return fail(apperr.Configuration("Missing design configuration."))
	}
	prompts, err := Compile(in.Config)
	if err != nil {
		return fail(err)
	}
	aspectRatio, err := NormalizeAspectRatio(in.Config.AspectRatio)
	if err != nil {
		return fail(err)
	}
	if in.Artwork == nil || len(in.Artwork.Data) == 0 {
		return fail(apperr.Configuration(msgArtworkMissing))
	}
	artwork, err := utils.FitArtwork(in.Artwork, utils.MaxArtworkEdge)
	if err != nil {
		return fail(err)
	}

	log.Printf("🚀 [Mockup %s] product=%s aspect=%s text=%t style=%s",
		in.RequestID, in.Config.ProductType, aspectRatio, hasText(in.Config), in.Config.DesignStyle)
	log.Printf("   📝 Base prompt: %s", truncate(prompts.BasePrompt, 80))

	// 2. Phase 1 - base 이미지 (배경 아트워크가 있으면 생략)
	var base *utils.Image
	if in.Background != nil && len(in.Background.Data) > 0 {
		log.Printf("🖼️  [Mockup %s] Using supplied background as base image (%d bytes)", in.RequestID, len(in.Background.Data))
		base, err = utils.FitArtwork(in.Background, utils.MaxArtworkEdge)
		if err != nil {
			return fail(err)
		}
	} else {
		notify(StateAwaitingBaseImage)
		resp, err := gemini.Do(ctx, s.policy, "base image", func(ctx context.Context) (*genai.GenerateImagesResponse, error) {
			return s.generator.GenerateBaseImage(ctx, prompts.BasePrompt, aspectRatio)
		})
		if err != nil {
			return fail(classifyRemote(err))
		}
		base, err = extractBaseImage(resp)
		if err != nil {
			return fail(err)
		}
		log.Printf("✅ [Mockup %s] Base image generated: %d bytes", in.RequestID, len(base.Data))
	}

	// 3. Phase 2 - 아트워크 적용
	notify(StateCompilingEditPrompt)
	log.Printf("   📝 Edit prompt: %s", truncate(prompts.EditPrompt, 80))

	notify(StateAwaitingEditedImage)
	resp, err := gemini.Do(ctx, s.policy, "edit image", func(ctx context.Context) (*genai.GenerateContentResponse, error) {
		return s.editor.EditImage(ctx, base, artwork, prompts.EditPrompt)
	})
	if err != nil {
		return fail(classifyRemote(err))
	}
	result, err := extractEditedImage(resp)
	if err != nil {
		return fail(err)
	}

	log.Printf("✅ [Mockup %s] Mockup generated: %d bytes (%s)", in.RequestID, len(result.Data), result.MimeType)
	notify(StateDone)
	return result, nil
}

// classifyRemote - 분류 안 된 원격 에러는 unknown_remote (원래 메시지 유지)
func classifyRemote(err error) error {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperr.UnknownRemote(err)
}

// extractBaseImage - Imagen 응답에서 첫 이미지 추출
func extractBaseImage(resp *genai.GenerateImagesResponse) (*utils.Image, error) {
	if resp == nil || len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0] == nil || resp.GeneratedImages[0].Image == nil {
		return nil, apperr.EmptyResult(msgBaseNoImage)
	}

	generated := resp.GeneratedImages[0]
	if len(generated.Image.ImageBytes) == 0 {
		if generated.RAIFilteredReason != "" {
			log.Printf("⚠️  [Mockup] Base image filtered: %s", generated.RAIFilteredReason)
		}
		return nil, apperr.EmptyResult(msgBaseEmptyImage)
	}

	mimeType := generated.Image.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}
	return &utils.Image{Data: generated.Image.ImageBytes, MimeType: mimeType}, nil
}

// extractEditedImage - 편집 응답에서 인라인 이미지 추출
// 안전 차단 신호는 ContentBlocked, 이미지 없는 정상 응답은 EmptyResult
func extractEditedImage(resp *genai.GenerateContentResponse) (*utils.Image, error) {
	if resp == nil {
		return nil, apperr.EmptyResult(msgEditMalformed)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		log.Printf("⚠️  [Mockup] Prompt blocked: %s", resp.PromptFeedback.BlockReason)
		return nil, apperr.ContentBlocked()
	}

	if len(resp.Candidates) == 0 {
		log.Printf("⚠️  [Mockup] No candidates in edit response")
		return nil, apperr.ContentBlocked()
	}

	hasParts := false
	for _, candidate := range resp.Candidates {
		if candidate == nil {
			continue
		}
		if blockedFinishReasons[candidate.FinishReason] {
			log.Printf("⚠️  [Mockup] Candidate blocked: finishReason=%s", candidate.FinishReason)
			return nil, apperr.ContentBlocked()
		}
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			hasParts = true
			// InlineData 확인 (이미지는 InlineData로 반환됨)
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = "image/png"
				}
				return &utils.Image{Data: part.InlineData.Data, MimeType: mimeType}, nil
			}
			if part.Text != "" {
				log.Printf("   💬 Model text: %s", truncate(part.Text, 80))
			}
		}
	}

	if !hasParts {
		log.Printf("⚠️  [Mockup] Edit response has no content parts")
		return nil, apperr.ContentBlocked()
	}
	return nil, apperr.EmptyResult(msgEditNoImage)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
