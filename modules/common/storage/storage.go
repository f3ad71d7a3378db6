package storage

import (
	"bytes"
	"fmt"
	"log"
	"time"

	storage_go "github.com/supabase-community/storage-go"
	supa "github.com/supabase-community/supabase-go"

	"mockup-canvas-server/modules/common/config"
	"mockup-canvas-server/modules/common/utils"
)

// Uploader - 완성된 목업을 Supabase Storage 버킷에 업로드
type Uploader struct {
	storage *storage_go.Client
	bucket  string
	quality float32
}

// NewUploader - Supabase 클라이언트 생성 (설정이 없으면 nil)
func NewUploader(cfg *config.Config) (*Uploader, error) {
	if !cfg.StorageEnabled() {
		log.Println("⚠️  [Storage] Supabase not configured, uploads disabled")
		return nil, nil
	}

	client, err := supa.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, &supa.ClientOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to create Supabase client: %w", err)
	}

	log.Printf("✅ [Storage] Uploader initialized (bucket: %s)", cfg.SupabaseBucket)
	return &Uploader{
		storage: client.Storage,
		bucket:  cfg.SupabaseBucket,
		quality: float32(cfg.WebPQuality),
	}, nil
}

// ObjectPath - 업로드 경로 (user 폴더 아래 job 단위)
func ObjectPath(userID, jobID, ext string) string {
	if userID == "" {
		userID = "anonymous"
	}
	return fmt.Sprintf("mockups/user-%s/%s.%s", userID, jobID, ext)
}

// UploadMockup - WebP로 변환 후 업로드하고 public URL과 content type 반환
// WebP 변환 실패 시 원본 형식 그대로 업로드
func (u *Uploader) UploadMockup(img *utils.Image, userID, jobID string) (string, string, error) {
	data := img.Data
	contentType := img.MimeType
	ext := "png"
	if contentType == "image/jpeg" {
		ext = "jpg"
	}

	if webpData, err := utils.ConvertToWebP(img.Data, u.quality); err != nil {
		log.Printf("⚠️  [Storage] WebP conversion failed, uploading original: %v", err)
	} else {
		data = webpData
		contentType = "image/webp"
		ext = "webp"
	}

	filePath := ObjectPath(userID, jobID, ext)
	log.Printf("📤 [Storage] Uploading %s (%d bytes)", filePath, len(data))

	upsert := true
	cacheControl := "3600"
	start := time.Now()
	_, err := u.storage.UploadFile(u.bucket, filePath, bytes.NewReader(data), storage_go.FileOptions{
		ContentType:  &contentType,
		CacheControl: &cacheControl,
		Upsert:       &upsert,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload mockup: %w", err)
	}

	publicURL := u.storage.GetPublicUrl(u.bucket, filePath).SignedURL
	log.Printf("✅ [Storage] Uploaded %s (%d bytes) in %v", filePath, len(data), time.Since(start).Round(time.Millisecond))
	return publicURL, contentType, nil
}
