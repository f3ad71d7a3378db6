package mockup

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"reflect"
	"strings"
	"testing"
	"time"

	"google.golang.org/genai"

	"mockup-canvas-server/modules/common/apperr"
	"mockup-canvas-server/modules/common/gemini"
	"mockup-canvas-server/modules/common/utils"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func pngImage(t *testing.T) *utils.Image {
	return &utils.Image{Data: pngBytes(t, 4, 4), MimeType: "image/png"}
}

func instantPolicy() gemini.Policy {
	return gemini.Policy{
		MaxAttempts:  5,
		InitialDelay: 10 * time.Second,
		Sleep:        func(ctx context.Context, d time.Duration) error { return ctx.Err() },
		Jitter:       func(time.Duration) time.Duration { return 0 },
	}
}

// fakeModels - phase 1/2 호출을 순서대로 기록
type fakeModels struct {
	calls []string

	baseResp *genai.GenerateImagesResponse
	baseErrs []error

	editResp *genai.GenerateContentResponse
	editErr  error

	editBase    *utils.Image
	editArtwork *utils.Image
	editPrompt  string
	aspectRatio string
}

func (f *fakeModels) GenerateBaseImage(ctx context.Context, prompt, aspectRatio string) (*genai.GenerateImagesResponse, error) {
	f.calls = append(f.calls, "base")
	f.aspectRatio = aspectRatio
	if len(f.baseErrs) > 0 {
		err := f.baseErrs[0]
		f.baseErrs = f.baseErrs[1:]
		return nil, err
	}
	return f.baseResp, nil
}

func (f *fakeModels) EditImage(ctx context.Context, base, artwork *utils.Image, prompt string) (*genai.GenerateContentResponse, error) {
	f.calls = append(f.calls, "edit")
	f.editBase = base
	f.editArtwork = artwork
	f.editPrompt = prompt
	if f.editErr != nil {
		return nil, f.editErr
	}
	return f.editResp, nil
}

func baseResponse(data []byte) *genai.GenerateImagesResponse {
	return &genai.GenerateImagesResponse{
		GeneratedImages: []*genai.GeneratedImage{
			{Image: &genai.Image{ImageBytes: data, MIMEType: "image/png"}},
		},
	}
}

func editResponse(parts ...*genai.Part) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Role: "model", Parts: parts}, FinishReason: genai.FinishReasonStop},
		},
	}
}

func newFakeModels(t *testing.T) *fakeModels {
	return &fakeModels{
		baseResp: baseResponse([]byte("base-bytes")),
		editResp: editResponse(
			genai.NewPartFromText("here you go"),
			genai.NewPartFromBytes([]byte("edited-bytes"), "image/png"),
		),
	}
}

func mugInput(t *testing.T) Input {
	cfg := sampleConfig(ProductTeaMug)
	cfg.AspectRatio = "16:9"
	return Input{RequestID: "req-1", Config: cfg, Artwork: pngImage(t)}
}

func TestGenerateRunsBothPhases(t *testing.T) {
	models := newFakeModels(t)
	service := NewService(models, models, instantPolicy())

	var states []State
	img, err := service.Generate(context.Background(), mugInput(t), func(s State) { states = append(states, s) })
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if string(img.Data) != "edited-bytes" || img.MimeType != "image/png" {
		t.Fatalf("result = %q (%s), want edited-bytes", img.Data, img.MimeType)
	}
	if !reflect.DeepEqual(models.calls, []string{"base", "edit"}) {
		t.Fatalf("calls = %v, want [base edit]", models.calls)
	}
	if models.aspectRatio != "16:9" {
		t.Fatalf("aspect ratio = %q, want 16:9", models.aspectRatio)
	}
	if string(models.editBase.Data) != "base-bytes" {
		t.Fatalf("edit should receive the phase 1 image, got %q", models.editBase.Data)
	}
	if models.editPrompt != mugEditPrompt {
		t.Fatalf("edit prompt mismatch")
	}

	want := []State{
		StateIdle, StateCompilingBasePrompt, StateAwaitingBaseImage,
		StateCompilingEditPrompt, StateAwaitingEditedImage, StateDone,
	}
	if !reflect.DeepEqual(states, want) {
		t.Fatalf("states = %v, want %v", states, want)
	}
}

func TestGenerateRetriesRateLimitedBaseCall(t *testing.T) {
	models := newFakeModels(t)
	models.baseErrs = []error{errors.New("429 RESOURCE_EXHAUSTED"), errors.New("429 RESOURCE_EXHAUSTED")}
	service := NewService(models, models, instantPolicy())

	if _, err := service.Generate(context.Background(), mugInput(t), nil); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !reflect.DeepEqual(models.calls, []string{"base", "base", "base", "edit"}) {
		t.Fatalf("calls = %v", models.calls)
	}
}

func TestGenerateUsesBackgroundAsBase(t *testing.T) {
	models := newFakeModels(t)
	service := NewService(models, models, instantPolicy())

	in := mugInput(t)
	in.Background = &utils.Image{Data: pngBytes(t, 8, 8), MimeType: "image/png"}

	var states []State
	if _, err := service.Generate(context.Background(), in, func(s State) { states = append(states, s) }); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !reflect.DeepEqual(models.calls, []string{"edit"}) {
		t.Fatalf("calls = %v, want [edit]", models.calls)
	}
	if !bytes.Equal(models.editBase.Data, in.Background.Data) {
		t.Fatalf("edit should receive the supplied background")
	}
	for _, s := range states {
		if s == StateAwaitingBaseImage {
			t.Fatalf("background input should skip phase 1, states = %v", states)
		}
	}
}

func TestGenerateConfigurationErrorsMakeNoCalls(t *testing.T) {
	cases := map[string]func(in *Input){
		"laser engraving": func(in *Input) { in.Config.ProductType = ProductLaserEngraving },
		"bad aspect":      func(in *Input) { in.Config.AspectRatio = "3:2" },
		"no artwork":      func(in *Input) { in.Artwork = nil },
		"no config":       func(in *Input) { in.Config = nil },
	}
	for name, mutate := range cases {
		models := newFakeModels(t)
		service := NewService(models, models, instantPolicy())

		in := mugInput(t)
		mutate(&in)

		var last State
		_, err := service.Generate(context.Background(), in, func(s State) { last = s })
		if !errors.Is(err, apperr.ErrConfiguration) {
			t.Fatalf("%s: err = %v, want configuration error", name, err)
		}
		if len(models.calls) != 0 {
			t.Fatalf("%s: expected no remote calls, got %v", name, models.calls)
		}
		if last != StateFailed {
			t.Fatalf("%s: last state = %s, want failed", name, last)
		}
	}
}

func TestGenerateRejectsCorruptArtwork(t *testing.T) {
	valid := pngBytes(t, 64, 64)
	cases := map[string]func(in *Input){
		"no header":            func(in *Input) { in.Artwork = &utils.Image{Data: []byte("not an image"), MimeType: "image/png"} },
		"truncated body":       func(in *Input) { in.Artwork = &utils.Image{Data: valid[:60], MimeType: "image/png"} },
		"truncated background": func(in *Input) { in.Background = &utils.Image{Data: valid[:60], MimeType: "image/png"} },
	}

	for name, mutate := range cases {
		models := newFakeModels(t)
		service := NewService(models, models, instantPolicy())

		in := mugInput(t)
		mutate(&in)

		_, err := service.Generate(context.Background(), in, nil)
		if !errors.Is(err, apperr.ErrInputEncoding) {
			t.Fatalf("%s: err = %v, want input encoding error", name, err)
		}
		if len(models.calls) != 0 {
			t.Fatalf("%s: expected no remote calls, got %v", name, models.calls)
		}
	}
}

func TestGenerateEmptyBaseImage(t *testing.T) {
	cases := map[string]*genai.GenerateImagesResponse{
		"no images":   {},
		"empty bytes": {GeneratedImages: []*genai.GeneratedImage{{Image: &genai.Image{}, RAIFilteredReason: "filtered"}}},
		"nil image":   {GeneratedImages: []*genai.GeneratedImage{{}}},
	}
	for name, resp := range cases {
		models := newFakeModels(t)
		models.baseResp = resp
		service := NewService(models, models, instantPolicy())

		_, err := service.Generate(context.Background(), mugInput(t), nil)
		if !errors.Is(err, apperr.ErrEmptyResult) {
			t.Fatalf("%s: err = %v, want empty result", name, err)
		}
		if !strings.HasPrefix(apperr.MessageOf(err), "Base image generation failed") {
			t.Fatalf("%s: message = %q", name, apperr.MessageOf(err))
		}
		if !reflect.DeepEqual(models.calls, []string{"base"}) {
			t.Fatalf("%s: phase 2 must not run, calls = %v", name, models.calls)
		}
	}
}

func TestGenerateContentBlocked(t *testing.T) {
	cases := map[string]*genai.GenerateContentResponse{
		"prohibited content": {
			Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonProhibitedContent}},
		},
		"image safety": {
			Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonImageSafety, Content: &genai.Content{}}},
		},
		"no candidates": {},
		"prompt feedback": {
			PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
		},
		"no parts": {
			Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonStop, Content: &genai.Content{}}},
		},
	}
	for name, resp := range cases {
		models := newFakeModels(t)
		models.editResp = resp
		service := NewService(models, models, instantPolicy())

		_, err := service.Generate(context.Background(), mugInput(t), nil)
		if !errors.Is(err, apperr.ErrContentBlocked) {
			t.Fatalf("%s: err = %v, want content blocked", name, err)
		}
		if apperr.MessageOf(err) != apperr.MsgContentBlocked {
			t.Fatalf("%s: message = %q", name, apperr.MessageOf(err))
		}
	}
}

func TestGenerateEditWithoutImage(t *testing.T) {
	models := newFakeModels(t)
	models.editResp = editResponse(genai.NewPartFromText("I cannot do that"))
	service := NewService(models, models, instantPolicy())

	_, err := service.Generate(context.Background(), mugInput(t), nil)
	if !errors.Is(err, apperr.ErrEmptyResult) {
		t.Fatalf("err = %v, want empty result", err)
	}
	if apperr.MessageOf(err) != msgEditNoImage {
		t.Fatalf("message = %q, want %q", apperr.MessageOf(err), msgEditNoImage)
	}
}

func TestGenerateRemoteErrors(t *testing.T) {
	models := newFakeModels(t)
	models.editErr = errors.New("connection reset by peer")
	service := NewService(models, models, instantPolicy())

	_, err := service.Generate(context.Background(), mugInput(t), nil)
	if !errors.Is(err, apperr.ErrUnknownRemote) {
		t.Fatalf("err = %v, want unknown remote", err)
	}
	if apperr.MessageOf(err) != "connection reset by peer" {
		t.Fatalf("message = %q, want original message", apperr.MessageOf(err))
	}

	models = newFakeModels(t)
	models.baseErrs = []error{
		apperr.ErrRateLimited, apperr.ErrRateLimited, apperr.ErrRateLimited,
		apperr.ErrRateLimited, apperr.ErrRateLimited,
	}
	service = NewService(models, models, instantPolicy())

	_, err = service.Generate(context.Background(), mugInput(t), nil)
	if !errors.Is(err, apperr.ErrServiceBusy) {
		t.Fatalf("err = %v, want service busy", err)
	}
	if len(models.calls) != 5 {
		t.Fatalf("calls = %v, want 5 base attempts", models.calls)
	}
}

func TestGenerateResizesLargeArtwork(t *testing.T) {
	models := newFakeModels(t)
	service := NewService(models, models, instantPolicy())

	in := mugInput(t)
	in.Artwork = &utils.Image{Data: pngBytes(t, 4096, 10), MimeType: "image/png"}

	if _, err := service.Generate(context.Background(), in, nil); err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(models.editArtwork.Data))
	if err != nil {
		t.Fatalf("decode resized artwork: %v", err)
	}
	if cfg.Width != utils.MaxArtworkEdge {
		t.Fatalf("resized width = %d, want %d", cfg.Width, utils.MaxArtworkEdge)
	}
}
