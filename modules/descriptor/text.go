package descriptor

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Fonts - 텍스트 폰트 ID 목록
var Fonts = []string{
	"anton", "archivo_black", "bangers", "bebas_neue", "caveat", "creepster",
	"dancing_script", "impact", "lato", "lobster", "merriweather", "monoton",
	"montserrat", "nosifier", "oswald", "pacifico", "permanent_marker",
	"playfair_display", "poppins", "press_start_2p", "roboto", "rock_salt",
	"special_elite", "zilla_slab",
}

// FontName - "bebas_neue" -> "Bebas Neue"
func FontName(id string) string {
	words := strings.Split(id, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// TextStyles - 텍스트 효과 ID 목록
var TextStyles = []string{
	"none", "outline", "shadow", "glow", "neon", "3d", "metallic", "chrome",
	"gradient", "pastel_rainbow", "distressed", "fire", "ice", "wooden",
	"comic", "glitch", "script", "varsity",
}

// TextStyleInstruction - 텍스트 효과별 렌더링 지시문
// contrast는 outline/varsity 외곽선 색, gradient는 시작/끝 색이 모두 있을 때만 색 지정
func TextStyleInstruction(style, contrast, gradientStart, gradientEnd string) string {
	switch style {
	case "outline":
		return fmt.Sprintf("Each letter must have a thin, sharp outline. The outline color must be exactly %s.", contrast)
	case "shadow":
		return "The text must have a professional, soft drop shadow to give it depth."
	case "glow":
		return "The text should have a vibrant, neon-like glow effect around it."
	case "neon":
		return "The text must look like a realistic, brightly glowing neon sign. The glow should be vibrant and emanate from the letters."
	case "3d":
		return "The text must be rendered in a bold 3D block style with realistic shading."
	case "metallic":
		return "The text should have a realistic metallic texture, like brushed gold or polished silver."
	case "chrome":
		return "The text must have a hyper-realistic, polished chrome effect, with metallic reflections and highlights that suggest a curved, shiny surface."
	case "gradient":
		if gradientStart != "" && gradientEnd != "" {
			return fmt.Sprintf("The text must be rendered with a smooth vertical gradient, transitioning from %s at the top to %s at the bottom.", gradientStart, gradientEnd)
		}
		return "The text must be rendered with a smooth vertical gradient effect."
	case "pastel_rainbow":
		return "The text must be rendered with a smooth horizontal gradient of soft pastel rainbow colors (e.g., light pink, soft orange, pale yellow, mint green, baby blue, lavender)."
	case "distressed":
		return "The text should have a rugged, distressed, and cracked texture, as if it has been weathered over time."
	case "fire":
		return "The text must be rendered as if it is engulfed in realistic, vibrant flames."
	case "ice":
		return "The text must be rendered to look like it is made of solid, clear or slightly frosted ice, with realistic frosty textures and chilly highlights."
	case "wooden":
		return "The text should appear as if it is carved from or made of realistic wood, with complete wood grain texture and natural lighting effects."
	case "comic":
		return "The text should be in a dynamic, comic-book style, with a bold outline and possibly a halftone dot pattern fill."
	case "glitch":
		return "The text must have a modern digital glitch effect, with color channel separation and pixel distortion."
	case "script":
		return "The text must be rendered in an elegant, flowing, and connected script style, as if written with a calligraphy pen."
	case "varsity":
		return fmt.Sprintf(`The text should be in a classic, blocky "varsity" or "collegiate" athletic style. Each letter must have a thick, contrasting outline (use %s for the outline).`, contrast)
	default:
		return "The text should be rendered cleanly without any additional effects."
	}
}
