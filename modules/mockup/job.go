package mockup

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"mockup-canvas-server/modules/common/apperr"
	"mockup-canvas-server/modules/common/cancel"
	"mockup-canvas-server/modules/common/model"
	"mockup-canvas-server/modules/common/utils"
)

// JobStore - job 레코드 저장소 (Redis)
type JobStore interface {
	Get(ctx context.Context, jobID string) (*model.MockupJob, error)
	Save(ctx context.Context, job *model.MockupJob) error
	IsJobCancelled(ctx context.Context, jobID string) bool
}

// Publisher - job 상태 전이 알림 (websocket 허브)
type Publisher interface {
	PublishState(jobID, state string)
	PublishJob(job *model.MockupJob)
}

// ResultUploader - 완성 이미지 업로드 (Supabase Storage)
type ResultUploader interface {
	UploadMockup(img *utils.Image, userID, jobID string) (url string, contentType string, err error)
}

// JobProcessor - 큐에서 꺼낸 job 하나를 끝까지 처리
type JobProcessor struct {
	generator    Generator
	store        JobStore
	publisher    Publisher
	uploader     ResultUploader
	pollInterval time.Duration
}

// NewJobProcessor - publisher/uploader는 nil 허용
func NewJobProcessor(generator Generator, store JobStore, publisher Publisher, uploader ResultUploader) *JobProcessor {
	return &JobProcessor{
		generator:    generator,
		store:        store,
		publisher:    publisher,
		uploader:     uploader,
		pollInterval: cancel.DefaultPollInterval,
	}
}

// NewJob - 파싱된 요청으로 pending job 레코드 생성
func NewJob(jobID string, parsed *ParsedRequest) (*model.MockupJob, error) {
	configJSON, err := json.Marshal(parsed.Config)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	job := &model.MockupJob{
		JobID:     jobID,
		UserID:    parsed.UserID,
		Status:    model.StatusPending,
		State:     string(StateIdle),
		Config:    configJSON,
		Artwork:   utils.EncodeDataURL(parsed.Artwork),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if parsed.Background != nil {
		job.BackgroundArtwork = utils.EncodeDataURL(parsed.Background)
	}
	return job, nil
}

// ProcessJob - job 실행 (상태 저장 + 알림 + 업로드)
func (p *JobProcessor) ProcessJob(ctx context.Context, jobID string) {
	log.Printf("🚀 [Job] Processing job: %s", jobID)

	job, err := p.store.Get(ctx, jobID)
	if err != nil {
		log.Printf("❌ [Job] Failed to fetch job %s: %v", jobID, err)
		return
	}
	if job.IsFinished() {
		log.Printf("⚠️  [Job] Job %s already %s, skipping", jobID, job.Status)
		return
	}

	if cancel.CheckBeforePhase(ctx, p.store, jobID, "processing") {
		p.finishCancelled(ctx, job)
		return
	}

	started := time.Now()
	job.Status = model.StatusProcessing
	job.StartedAt = &started
	p.save(ctx, job)

	in, err := decodeJobInput(job)
	if err != nil {
		p.finishFailed(ctx, job, err)
		return
	}

	genCtx, stop := cancel.WithJobCancel(ctx, p.store, jobID, p.pollInterval)
	defer stop()

	img, err := p.generator.Generate(genCtx, in, func(state State) {
		job.State = string(state)
		if p.publisher != nil {
			p.publisher.PublishState(jobID, string(state))
		}
	})

	// 취소 플래그가 있으면 결과와 상관없이 user_cancelled 유지
	if p.store.IsJobCancelled(ctx, jobID) || (err != nil && errors.Is(err, context.Canceled) && ctx.Err() == nil) {
		p.finishCancelled(ctx, job)
		return
	}
	if err != nil {
		p.finishFailed(ctx, job, err)
		return
	}

	p.finishCompleted(ctx, job, img)
}

// decodeJobInput - 저장된 설정/data URL 복원
func decodeJobInput(job *model.MockupJob) (Input, error) {
	var cfg DesignConfiguration
	if err := json.Unmarshal(job.Config, &cfg); err != nil {
		return Input{}, apperr.Configuration("Invalid stored configuration: %v", err)
	}

	artwork, err := utils.DecodeDataURL(job.Artwork)
	if err != nil {
		return Input{}, err
	}

	in := Input{RequestID: job.JobID, Config: &cfg, Artwork: artwork}
	if job.BackgroundArtwork != "" {
		background, err := utils.DecodeDataURL(job.BackgroundArtwork)
		if err != nil {
			return Input{}, err
		}
		in.Background = background
	}
	return in, nil
}

func (p *JobProcessor) finishCompleted(ctx context.Context, job *model.MockupJob, img *utils.Image) {
	job.ResultMimeType = img.MimeType

	uploaded := false
	if p.uploader != nil {
		url, contentType, err := p.uploader.UploadMockup(img, job.UserID, job.JobID)
		if err != nil {
			log.Printf("⚠️  [Job] Upload failed for %s, returning inline: %v", job.JobID, err)
		} else {
			job.ResultURL = url
			job.ResultMimeType = contentType
			uploaded = true
		}
	}
	if !uploaded {
		job.ResultBase64 = utils.ConvertImageToBase64(img.Data)
	}

	completed := time.Now()
	job.Status = model.StatusCompleted
	job.CompletedAt = &completed
	p.save(ctx, job)
	log.Printf("✅ [Job] Job %s completed in %v", job.JobID, completed.Sub(job.CreatedAt).Round(time.Millisecond))
}

func (p *JobProcessor) finishFailed(ctx context.Context, job *model.MockupJob, err error) {
	completed := time.Now()
	job.Status = model.StatusFailed
	job.State = string(StateFailed)
	job.ErrorKind = string(apperr.KindOf(err))
	job.ErrorMessage = apperr.MessageOf(err)
	job.CompletedAt = &completed
	p.save(ctx, job)
	log.Printf("❌ [Job] Job %s failed (%s): %s", job.JobID, job.ErrorKind, job.ErrorMessage)
}

func (p *JobProcessor) finishCancelled(ctx context.Context, job *model.MockupJob) {
	completed := time.Now()
	job.Status = model.StatusUserCancelled
	job.CompletedAt = &completed
	p.save(ctx, job)
	log.Printf("🛑 [Job] Job %s cancelled by user", job.JobID)
}

// save - 저장 후 알림 (저장 실패는 로그만)
func (p *JobProcessor) save(ctx context.Context, job *model.MockupJob) {
	if err := p.store.Save(ctx, job); err != nil {
		log.Printf("❌ [Job] Failed to save job %s: %v", job.JobID, err)
	}
	if p.publisher != nil {
		p.publisher.PublishJob(job)
	}
}
