package mockup

import (
	"fmt"
	"strings"

	"mockup-canvas-server/modules/common/apperr"
	"mockup-canvas-server/modules/descriptor"
)

const qualityPrompt = "8K, ultra-high resolution, photorealistic, DSLR photo with a 50mm f/1.8 lens, sharp focus, professional commercial photography, cinematic lighting, soft shadows, beautiful bokeh, high dynamic range."

// realismBlock - 프린트가 제품 표면에 자연스럽게 붙도록 하는 공통 지시문
var realismBlock = []string{
	"- **CRITICAL REALISM INSTRUCTIONS:**",
	"- The design must be perfectly integrated onto the product's surface, looking like a high-end, realistic print or embroidery, not a flat sticker.",
	"- **Texture Mapping:** The underlying fabric or material texture (e.g., cotton weave, fleece, leather grain) must be subtly visible through the design, especially in lighter areas of the print.",
	"- **Warping & Draping:** The design must precisely follow all contours, folds, wrinkles, and seams of the product. The perspective of the design must match the product's angle perfectly.",
	"- **Lighting & Shadows:** The lighting of the design (highlights, mid-tones, shadows) must perfectly match the lighting of the product in the photo. Shadows cast by wrinkles in the fabric must realistically fall across the design. The design's colors should be slightly affected by the ambient light color.",
}

const (
	outputFinalImage  = "- Output ONLY the final image."
	outputEditedImage = "- Output ONLY the final, edited image."
	outputPhotoImage  = "- Output ONLY the final, photorealistic image."
)

// fragments - 순서대로 합쳐지는 프롬프트 조각 (빈 조각은 건너뜀)
type fragments []string

func (f fragments) add(lines ...string) fragments {
	return append(f, lines...)
}

func (f fragments) join() string {
	out := make([]string, 0, len(f))
	for _, line := range f {
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}

// hasText - 공백만 있는 텍스트는 없는 것으로 취급
func hasText(c *DesignConfiguration) bool {
	return strings.TrimSpace(c.Text) != ""
}

// textStyling - 폰트/색상/효과 세 줄 (contrast는 outline 계열 효과용)
func textStyling(c *DesignConfiguration, contrast string) []string {
	return []string{
		fmt.Sprintf(`- The text must be rendered in the "%s" font.`, descriptor.FontName(c.Font)),
		fmt.Sprintf(`- The text color must be "%s".`, descriptor.ColorName(c.TextColor)),
		"- " + descriptor.TextStyleInstruction(c.TextStyle, contrast, c.GradientStartColor, c.GradientEndColor),
	}
}

// lookup - productType에 해당하는 제품 정의 (없으면 ConfigurationError)
func lookup(productType ProductType) (*productDef, error) {
	def, ok := products[productType]
	if !ok {
		return nil, apperr.Configuration("Invalid product type: %s", productType)
	}
	return def, nil
}

// BasePrompt - phase 1 프롬프트 (디자인 없는 빈 제품 장면)
func BasePrompt(c *DesignConfiguration) (string, error) {
	def, err := lookup(c.ProductType)
	if err != nil {
		return "", err
	}
	return def.base(c), nil
}

// EditPrompt - phase 2 프롬프트 (base 이미지에 아트워크/텍스트 적용)
func EditPrompt(c *DesignConfiguration) (string, error) {
	def, err := lookup(c.ProductType)
	if err != nil {
		return "", err
	}
	return def.edit(c), nil
}

// Compile - base/edit 프롬프트를 함께 생성 (네트워크 호출 없음)
func Compile(c *DesignConfiguration) (*Prompts, error) {
	def, err := lookup(c.ProductType)
	if err != nil {
		return nil, err
	}
	return &Prompts{
		BasePrompt: def.base(c),
		EditPrompt: def.edit(c),
	}, nil
}

// NormalizeAspectRatio - 빈 값은 1:1, 허용 목록 외에는 ConfigurationError
func NormalizeAspectRatio(ratio string) (string, error) {
	if ratio == "" {
		return DefaultAspectRatio, nil
	}
	for _, r := range AspectRatios {
		if r == ratio {
			return ratio, nil
		}
	}
	return "", apperr.Configuration("Invalid aspect ratio: %s", ratio)
}
