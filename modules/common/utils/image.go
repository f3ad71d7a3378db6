package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // GIF 디코더 등록
	_ "image/jpeg" // JPEG 디코더 등록
	"image/png"
	"log"
	"math"
	"regexp"
	"strings"

	_ "github.com/gen2brain/webp" // WebP 디코더 등록
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"

	"mockup-canvas-server/modules/common/apperr"
)

// MaxArtworkEdge - 이 크기를 넘는 아트워크는 PNG로 축소해서 전송
const MaxArtworkEdge = 2048

// Image - 원격 호출에 인라인으로 전달되는 이미지 (raw bytes + media type)
type Image struct {
	Data     []byte
	MimeType string
}

var dataURLPattern = regexp.MustCompile(`^data:([^;,]+);base64,`)

// FromBytes - 바이너리를 이미지로 검증하고 media type 판별
// 헤더만 보지 않고 전체 디코딩, 잘리거나 손상된 입력은 InputEncodingError
func FromBytes(data []byte) (*Image, error) {
	if len(data) == 0 {
		return nil, apperr.InputEncoding("The image file is empty.", nil)
	}

	_, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, apperr.InputEncoding("The image file could not be read. Please upload a PNG, JPEG, GIF or WebP image.", err)
	}

	return &Image{Data: data, MimeType: "image/" + format}, nil
}

// DecodeDataURL - data:<mime>;base64,<payload> 를 이미지로 변환
func DecodeDataURL(dataURL string) (*Image, error) {
	dataURL = strings.TrimSpace(dataURL)
	match := dataURLPattern.FindStringSubmatch(dataURL)
	if match == nil {
		return nil, apperr.InputEncoding("The image is not a valid base64 data URL.", nil)
	}

	data, err := base64.StdEncoding.DecodeString(dataURL[len(match[0]):])
	if err != nil {
		return nil, apperr.InputEncoding("The image data URL has an invalid base64 payload.", err)
	}

	img, err := FromBytes(data)
	if err != nil {
		return nil, err
	}
	log.Printf("🔍 Data URL decoded: declared=%s detected=%s (%d bytes)", match[1], img.MimeType, len(data))
	return img, nil
}

// EncodeDataURL - 이미지를 data URL로 변환 (설정 저장/복원용)
func EncodeDataURL(img *Image) string {
	return fmt.Sprintf("data:%s;base64,%s", img.MimeType, base64.StdEncoding.EncodeToString(img.Data))
}

// ConvertImageToBase64 - 이미지 바이너리를 base64로 변환
func ConvertImageToBase64(imageData []byte) string {
	base64Str := base64.StdEncoding.EncodeToString(imageData)
	log.Printf("🔄 Image converted to base64: %d chars (preview: %s...)",
		len(base64Str),
		base64Str[:min(50, len(base64Str))])
	return base64Str
}

// ConvertToWebP - PNG/JPEG/WebP 바이너리를 WebP로 변환
func ConvertToWebP(data []byte, quality float32) ([]byte, error) {
	log.Printf("🔄 Converting image to WebP (quality: %.1f)", quality)

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// WebP 인코딩
	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, quality)
	if err != nil {
		return nil, fmt.Errorf("failed to create WebP encoder options: %w", err)
	}

	var webpBuffer bytes.Buffer
	if err := webp.Encode(&webpBuffer, img, options); err != nil {
		return nil, fmt.Errorf("failed to encode WebP: %w", err)
	}

	webpData := webpBuffer.Bytes()

	log.Printf("✅ %s converted to WebP: %d bytes → %d bytes (%.1f%% reduction)",
		strings.ToUpper(format), len(data), len(webpData),
		float64(len(data)-len(webpData))/float64(len(data))*100)

	return webpData, nil
}

// FitArtwork - 전체 디코딩으로 손상 여부 확인 후
// 긴 변이 maxEdge를 넘으면 비율 유지하며 축소해 PNG로 재인코딩, 작은 이미지는 그대로 반환
func FitArtwork(img *Image, maxEdge int) (*Image, error) {
	src, _, err := image.Decode(bytes.NewReader(img.Data))
	if err != nil {
		return nil, apperr.InputEncoding("The image file could not be read.", err)
	}
	bounds := src.Bounds()
	if bounds.Dx() <= maxEdge && bounds.Dy() <= maxEdge {
		return img, nil
	}

	scale := math.Min(float64(maxEdge)/float64(bounds.Dx()), float64(maxEdge)/float64(bounds.Dy()))
	dst := ResizeImage(src, scale)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode resized artwork: %w", err)
	}

	log.Printf("📐 Artwork resized: %dx%d → %dx%d", bounds.Dx(), bounds.Dy(), dst.Bounds().Dx(), dst.Bounds().Dy())
	return &Image{Data: buf.Bytes(), MimeType: "image/png"}, nil
}

// ResizeImage - scale 배율로 리사이즈 (Nearest Neighbor, 투명도 유지)
func ResizeImage(src image.Image, scale float64) image.Image {
	srcBounds := src.Bounds()
	newWidth := max(1, int(float64(srcBounds.Dx())*scale))
	newHeight := max(1, int(float64(srcBounds.Dy())*scale))

	dst := image.NewNRGBA(image.Rect(0, 0, newWidth, newHeight))

	for y := 0; y < newHeight; y++ {
		for x := 0; x < newWidth; x++ {
			srcX := srcBounds.Min.X + min(int(float64(x)/scale), srcBounds.Dx()-1)
			srcY := srcBounds.Min.Y + min(int(float64(y)/scale), srcBounds.Dy()-1)
			dst.Set(x, y, src.At(srcX, srcY))
		}
	}

	return dst
}
