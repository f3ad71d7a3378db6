package mockup

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime"
	"net/http"
	"strings"

	"mockup-canvas-server/modules/common/apperr"
	"mockup-canvas-server/modules/common/utils"
)

// ParsedRequest - 검증/디코딩이 끝난 생성 요청
type ParsedRequest struct {
	Config     DesignConfiguration
	Artwork    *utils.Image
	Background *utils.Image
	UserID     string
}

// ParseGenerateRequest - JSON(data URL) 또는 multipart(config + 파일) 요청 파싱
// 프롬프트 컴파일과 비율 검증까지 마쳐서 잘못된 설정은 원격 호출 전에 거절
func ParseGenerateRequest(w http.ResponseWriter, r *http.Request, maxBytes int64) (*ParsedRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var (
		parsed *ParsedRequest
		err    error
	)
	if strings.HasPrefix(mediaType, "multipart/") {
		parsed, err = parseMultipart(w, r, maxBytes)
	} else {
		parsed, err = parseJSON(w, r, maxBytes)
	}
	if err != nil {
		return nil, err
	}

	if _, err := Compile(&parsed.Config); err != nil {
		return nil, err
	}
	if _, err := NormalizeAspectRatio(parsed.Config.AspectRatio); err != nil {
		return nil, err
	}
	if parsed.Artwork == nil {
		return nil, apperr.Configuration(msgArtworkMissing)
	}
	return parsed, nil
}

func parseJSON(w http.ResponseWriter, r *http.Request, maxBytes int64) (*ParsedRequest, error) {
	var req GenerateRequest
	// base64 data URL 두 개 여유
	body := http.MaxBytesReader(w, r.Body, maxBytes*3)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return nil, apperr.Configuration("Invalid request body: %v", err)
	}

	parsed := &ParsedRequest{Config: req.Config, UserID: req.UserID}
	if req.Artwork != "" {
		img, err := utils.DecodeDataURL(req.Artwork)
		if err != nil {
			return nil, err
		}
		parsed.Artwork = img
	}
	if req.BackgroundArtwork != "" {
		img, err := utils.DecodeDataURL(req.BackgroundArtwork)
		if err != nil {
			return nil, err
		}
		parsed.Background = img
	}
	return parsed, nil
}

func parseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) (*ParsedRequest, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, apperr.Configuration("Invalid multipart form: %v", err)
	}

	raw := r.FormValue("config")
	if raw == "" {
		return nil, apperr.Configuration("Missing config field.")
	}

	parsed := &ParsedRequest{UserID: r.FormValue("userId")}
	if err := json.Unmarshal([]byte(raw), &parsed.Config); err != nil {
		return nil, apperr.Configuration("Invalid config field: %v", err)
	}

	artwork, err := formImage(r, "artwork")
	if err != nil {
		return nil, err
	}
	parsed.Artwork = artwork

	background, err := formImage(r, "backgroundArtwork")
	if err != nil {
		return nil, err
	}
	parsed.Background = background
	return parsed, nil
}

// formImage - multipart 파일 필드 → 이미지 (필드가 없으면 nil)
func formImage(r *http.Request, field string) (*utils.Image, error) {
	file, header, err := r.FormFile(field)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.InputEncoding(fmt.Sprintf("The %s file could not be read.", field), err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apperr.InputEncoding(fmt.Sprintf("The %s file could not be read.", field), err)
	}

	img, err := utils.FromBytes(data)
	if err != nil {
		return nil, err
	}
	log.Printf("📎 [Mockup] %s uploaded: %s (%d bytes, %s)", field, header.Filename, len(data), img.MimeType)
	return img, nil
}
