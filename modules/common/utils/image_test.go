package utils

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"mockup-canvas-server/modules/common/apperr"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 255, G: uint8(x), B: uint8(y), A: 128})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestFromBytesDetectsFormat(t *testing.T) {
	img, err := FromBytes(encodePNG(t, 3, 3))
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	if img.MimeType != "image/png" {
		t.Fatalf("mime = %q, want image/png", img.MimeType)
	}

	var buf bytes.Buffer
	jpeg.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2)), nil)
	img, err = FromBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("FromBytes jpeg: %v", err)
	}
	if img.MimeType != "image/jpeg" {
		t.Fatalf("mime = %q, want image/jpeg", img.MimeType)
	}
}

func TestFromBytesRejectsGarbage(t *testing.T) {
	for name, data := range map[string][]byte{
		"empty":   nil,
		"garbage": []byte("definitely not an image"),
	} {
		if _, err := FromBytes(data); !errors.Is(err, apperr.ErrInputEncoding) {
			t.Fatalf("%s: err = %v, want input encoding", name, err)
		}
	}
}

func TestFromBytesRejectsTruncatedBody(t *testing.T) {
	data := encodePNG(t, 64, 64)
	truncated := data[:60]

	// 헤더는 정상
	if _, format, err := image.DecodeConfig(bytes.NewReader(truncated)); err != nil || format != "png" {
		t.Fatalf("DecodeConfig = %q, %v; want png header", format, err)
	}
	if _, err := FromBytes(truncated); !errors.Is(err, apperr.ErrInputEncoding) {
		t.Fatalf("err = %v, want input encoding", err)
	}

	if _, err := FitArtwork(&Image{Data: truncated, MimeType: "image/png"}, MaxArtworkEdge); !errors.Is(err, apperr.ErrInputEncoding) {
		t.Fatalf("FitArtwork err = %v, want input encoding", err)
	}

	url := "data:image/png;base64," + base64.StdEncoding.EncodeToString(truncated)
	if _, err := DecodeDataURL(url); !errors.Is(err, apperr.ErrInputEncoding) {
		t.Fatalf("DecodeDataURL err = %v, want input encoding", err)
	}
}

func TestDataURLRoundTrip(t *testing.T) {
	original := &Image{Data: encodePNG(t, 5, 5), MimeType: "image/png"}

	decoded, err := DecodeDataURL(EncodeDataURL(original))
	if err != nil {
		t.Fatalf("DecodeDataURL: %v", err)
	}
	if !bytes.Equal(decoded.Data, original.Data) || decoded.MimeType != original.MimeType {
		t.Fatalf("round trip mismatch")
	}

	// 선언된 타입보다 실제 바이트 기준
	mislabeled := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(original.Data)
	decoded, err = DecodeDataURL(mislabeled)
	if err != nil {
		t.Fatalf("DecodeDataURL: %v", err)
	}
	if decoded.MimeType != "image/png" {
		t.Fatalf("mime = %q, want detected image/png", decoded.MimeType)
	}
}

func TestDecodeDataURLErrors(t *testing.T) {
	for _, input := range []string{
		"",
		"not a data url",
		"data:image/png,rawpayload",
		"data:image/png;base64,!!!",
		"data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("plain text")),
	} {
		if _, err := DecodeDataURL(input); !errors.Is(err, apperr.ErrInputEncoding) {
			t.Fatalf("DecodeDataURL(%q) err = %v, want input encoding", input, err)
		}
	}
}

func TestFitArtwork(t *testing.T) {
	small := &Image{Data: encodePNG(t, 32, 16), MimeType: "image/png"}
	got, err := FitArtwork(small, 16)
	if err != nil {
		t.Fatalf("FitArtwork: %v", err)
	}
	cfg, _, _ := image.DecodeConfig(bytes.NewReader(got.Data))
	if cfg.Width != 16 || cfg.Height != 8 {
		t.Fatalf("resized = %dx%d, want 16x8", cfg.Width, cfg.Height)
	}
	if got.MimeType != "image/png" {
		t.Fatalf("mime = %q, want image/png", got.MimeType)
	}

	unchanged, err := FitArtwork(small, 64)
	if err != nil {
		t.Fatalf("FitArtwork: %v", err)
	}
	if unchanged != small {
		t.Fatalf("images within the limit should be returned as-is")
	}

	if _, err := FitArtwork(&Image{Data: []byte("nope")}, 64); !errors.Is(err, apperr.ErrInputEncoding) {
		t.Fatalf("err = %v, want input encoding", err)
	}
}

func TestResizeImageKeepsAlpha(t *testing.T) {
	src, _ := png.Decode(bytes.NewReader(encodePNG(t, 4, 4)))
	dst := ResizeImage(src, 0.5)
	if dst.Bounds().Dx() != 2 || dst.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v, want 2x2", dst.Bounds())
	}
	_, _, _, a := dst.At(0, 0).RGBA()
	if a == 0xffff {
		t.Fatalf("alpha channel lost")
	}
}

func TestConvertImageToBase64(t *testing.T) {
	if got := ConvertImageToBase64([]byte("hi")); got != "aGk=" {
		t.Fatalf("got %q, want aGk=", got)
	}
}
