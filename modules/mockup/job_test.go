package mockup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mockup-canvas-server/modules/common/apperr"
	"mockup-canvas-server/modules/common/model"
	"mockup-canvas-server/modules/common/utils"
)

// memoryStore - Redis 대신 쓰는 job 저장소
type memoryStore struct {
	mu        sync.Mutex
	jobs      map[string]model.MockupJob
	cancelled map[string]bool
	history   []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{jobs: map[string]model.MockupJob{}, cancelled: map[string]bool{}}
}

func (m *memoryStore) Get(ctx context.Context, jobID string) (*model.MockupJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[jobID]
	if !ok {
		return nil, errors.New("job not found")
	}
	return &job, nil
}

func (m *memoryStore) Save(ctx context.Context, job *model.MockupJob) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[job.JobID] = *job
	m.history = append(m.history, job.Status)
	return nil
}

func (m *memoryStore) IsJobCancelled(ctx context.Context, jobID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cancelled[jobID]
}

func (m *memoryStore) cancel(jobID string) {
	m.mu.Lock()
	m.cancelled[jobID] = true
	m.mu.Unlock()
}

type recordingPublisher struct {
	states []string
	jobs   []string
}

func (p *recordingPublisher) PublishState(jobID, state string) {
	p.states = append(p.states, state)
}

func (p *recordingPublisher) PublishJob(job *model.MockupJob) {
	p.jobs = append(p.jobs, job.Status)
}

type stubUploader struct {
	err error
}

func (u *stubUploader) UploadMockup(img *utils.Image, userID, jobID string) (string, string, error) {
	if u.err != nil {
		return "", "", u.err
	}
	return "https://cdn.example.com/" + userID + "/" + jobID + ".webp", "image/webp", nil
}

// observingGenerator - 상태를 흉내내고 결과/에러 반환
type observingGenerator struct {
	img    *utils.Image
	err    error
	before func(ctx context.Context) error
}

func (g *observingGenerator) Generate(ctx context.Context, in Input, observe StateObserver) (*utils.Image, error) {
	observe(StateIdle)
	observe(StateCompilingBasePrompt)
	if g.before != nil {
		if err := g.before(ctx); err != nil {
			observe(StateFailed)
			return nil, err
		}
	}
	if g.err != nil {
		observe(StateFailed)
		return nil, g.err
	}
	observe(StateDone)
	return g.img, nil
}

func seedJob(t *testing.T, store *memoryStore, jobID string) {
	t.Helper()
	job, err := NewJob(jobID, &ParsedRequest{
		Config:  *sampleConfig(ProductTeaMug),
		Artwork: pngImage(t),
		UserID:  "user-1",
	})
	if err != nil {
		t.Fatalf("NewJob: %v", err)
	}
	if job.Status != model.StatusPending || job.Artwork == "" {
		t.Fatalf("unexpected new job: %+v", job)
	}
	store.Save(context.Background(), job)
}

func TestProcessJobCompletesWithUpload(t *testing.T) {
	store := newMemoryStore()
	seedJob(t, store, "job-1")
	publisher := &recordingPublisher{}
	gen := &observingGenerator{img: &utils.Image{Data: []byte("png"), MimeType: "image/png"}}

	NewJobProcessor(gen, store, publisher, &stubUploader{}).ProcessJob(context.Background(), "job-1")

	job, _ := store.Get(context.Background(), "job-1")
	if job.Status != model.StatusCompleted {
		t.Fatalf("status = %s, want completed", job.Status)
	}
	if job.ResultURL != "https://cdn.example.com/user-1/job-1.webp" || job.ResultMimeType != "image/webp" {
		t.Fatalf("unexpected result: url=%q mime=%q", job.ResultURL, job.ResultMimeType)
	}
	if job.ResultBase64 != "" {
		t.Fatalf("uploaded job should not carry inline data")
	}
	if job.State != string(StateDone) || job.StartedAt == nil || job.CompletedAt == nil {
		t.Fatalf("unexpected bookkeeping: %+v", job)
	}
	if len(publisher.states) != 3 || publisher.states[2] != string(StateDone) {
		t.Fatalf("published states = %v", publisher.states)
	}
}

func TestProcessJobFallsBackToInline(t *testing.T) {
	store := newMemoryStore()
	seedJob(t, store, "job-2")
	gen := &observingGenerator{img: &utils.Image{Data: []byte("png"), MimeType: "image/png"}}

	NewJobProcessor(gen, store, nil, &stubUploader{err: errors.New("bucket missing")}).ProcessJob(context.Background(), "job-2")

	job, _ := store.Get(context.Background(), "job-2")
	if job.Status != model.StatusCompleted {
		t.Fatalf("status = %s, want completed", job.Status)
	}
	if job.ResultBase64 != utils.ConvertImageToBase64([]byte("png")) || job.ResultMimeType != "image/png" {
		t.Fatalf("inline result missing: %+v", job)
	}
}

func TestProcessJobRecordsFailure(t *testing.T) {
	store := newMemoryStore()
	seedJob(t, store, "job-3")
	gen := &observingGenerator{err: apperr.ContentBlocked()}

	NewJobProcessor(gen, store, nil, nil).ProcessJob(context.Background(), "job-3")

	job, _ := store.Get(context.Background(), "job-3")
	if job.Status != model.StatusFailed {
		t.Fatalf("status = %s, want failed", job.Status)
	}
	if job.ErrorKind != string(apperr.KindContentBlocked) || job.ErrorMessage != apperr.MsgContentBlocked {
		t.Fatalf("error = %s / %s", job.ErrorKind, job.ErrorMessage)
	}
}

func TestProcessJobCancelledBeforeStart(t *testing.T) {
	store := newMemoryStore()
	seedJob(t, store, "job-4")
	store.cancel("job-4")
	gen := &observingGenerator{before: func(ctx context.Context) error {
		t.Fatalf("generator must not run for a cancelled job")
		return nil
	}}

	NewJobProcessor(gen, store, nil, nil).ProcessJob(context.Background(), "job-4")

	job, _ := store.Get(context.Background(), "job-4")
	if job.Status != model.StatusUserCancelled {
		t.Fatalf("status = %s, want user_cancelled", job.Status)
	}
}

func TestProcessJobCancelledWhileRunning(t *testing.T) {
	store := newMemoryStore()
	seedJob(t, store, "job-5")
	gen := &observingGenerator{before: func(ctx context.Context) error {
		store.cancel("job-5")
		select {
		case <-ctx.Done():
			return apperr.UnknownRemote(ctx.Err())
		case <-time.After(5 * time.Second):
			return errors.New("context was not cancelled")
		}
	}}

	processor := NewJobProcessor(gen, store, nil, nil)
	processor.pollInterval = 10 * time.Millisecond
	processor.ProcessJob(context.Background(), "job-5")

	job, _ := store.Get(context.Background(), "job-5")
	if job.Status != model.StatusUserCancelled {
		t.Fatalf("status = %s, want user_cancelled", job.Status)
	}
}

func TestProcessJobSkipsFinishedJobs(t *testing.T) {
	store := newMemoryStore()
	seedJob(t, store, "job-6")
	job, _ := store.Get(context.Background(), "job-6")
	job.Status = model.StatusCompleted
	store.Save(context.Background(), job)

	gen := &observingGenerator{before: func(ctx context.Context) error {
		t.Fatalf("generator must not run for a finished job")
		return nil
	}}
	NewJobProcessor(gen, store, nil, nil).ProcessJob(context.Background(), "job-6")

	if last := store.history[len(store.history)-1]; last != model.StatusCompleted {
		t.Fatalf("finished job was rewritten to %s", last)
	}
}

func TestDecodeJobInputRoundTrip(t *testing.T) {
	store := newMemoryStore()
	seedJob(t, store, "job-7")
	job, _ := store.Get(context.Background(), "job-7")

	in, err := decodeJobInput(job)
	if err != nil {
		t.Fatalf("decodeJobInput: %v", err)
	}
	if in.Config.ProductType != ProductTeaMug || in.Artwork.MimeType != "image/png" || in.Background != nil {
		t.Fatalf("unexpected input: %+v", in)
	}

	job.Artwork = "data:image/png;base64,AAAA"
	if _, err := decodeJobInput(job); !errors.Is(err, apperr.ErrInputEncoding) {
		t.Fatalf("err = %v, want input encoding", err)
	}
}
