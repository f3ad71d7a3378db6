package mockup

import "strings"

const (
	StyleClassic   = "classic"
	StyleFullFront = "full_front"
	StyleFullWrap  = "full_wrap"
)

// IsFullCoverage - 아트워크만으로 전체를 덮는 스타일 (텍스트 무시)
func IsFullCoverage(style string) bool {
	return style == StyleFullFront || style == StyleFullWrap
}

// DesignStyles - 가먼트 디자인 스타일 ID 목록
var DesignStyles = []string{
	"classic", "split", "sketch", "slasher", "vintage_stamp", "retro_wave",
	"minimalist_line", "grunge_overlay", "stacked_text", "emblem", "photo_text",
	"cyberpunk_glitch", "full_wrap", "full_front", "american_traditional_tattoo",
	"watercolor_splash", "art_deco", "pop_art", "cosmic_galaxy", "japanese_ukiyo-e",
	"distressed_vintage", "typography_focus", "abstract_geometric", "vintage_poster",
	"geometric_pattern", "hand_drawn_sketch",
}

// styleClause - 텍스트 스타일 블록 앞/뒤에 붙는 스타일 지시문
// {garment}는 제품 명사로 치환
type styleClause struct {
	beforeText []string
	afterText  []string
}

var classicClause = styleClause{
	afterText: []string{"- Typeset the text in a semi-circular arc below the logo."},
}

var designStyleClauses = map[string]styleClause{
	"slasher": {afterText: []string{
		"- The text style should be distressed and dripping, reminiscent of classic slasher horror movie posters.",
		"- Position the text creatively around the logo.",
	}},
	"split": {afterText: []string{
		"- The font should be bold, grungy, and distressed.",
		"- Arrange the text vertically in two columns, with the logo in the center between them.",
	}},
	"sketch": {
		beforeText: []string{"- The logo should be transformed into a gritty, monochrome charcoal sketch."},
		afterText:  []string{"- The text should have a simple, faded, type-written effect below the sketch."},
	},
	"vintage_stamp": {afterText: []string{
		"- Arrange the text in a circular path that wraps around the logo, creating a classic stamp or seal effect.",
		"- The font should be a classic serif or sans-serif type.",
	}},
	"retro_wave": {afterText: []string{
		"- The text should be bold and positioned below the logo.",
		"- Apply a vibrant, 80s-inspired retro wave aesthetic, possibly with a neon glow or a chrome finish to the text.",
	}},
	"minimalist_line": {afterText: []string{
		"- Create a clean, minimalist composition.",
		"- Place the logo on the left chest area and the text vertically aligned on the right side of the shirt.",
	}},
	"grunge_overlay": {afterText: []string{
		"- The text must be placed directly on top of the logo, creating a layered effect.",
		"- Apply a heavy grunge or distressed texture to both the text and logo so they look unified and worn out.",
	}},
	"cyberpunk_glitch": {afterText: []string{
		"- The text should be rendered in a futuristic, digital font. Apply a heavy cyberpunk-style glitch effect to both the logo and the text, with neon colors like magenta, cyan, and electric blue, creating a vibrant, high-tech, and distorted look.",
	}},
	"stacked_text": {afterText: []string{
		"- The text should be arranged in a stacked, vertical layout. Each word should be on its own line, centered. Use a bold, condensed sans-serif font. Position the stacked text block below the logo for a clean, modern typographic composition.",
	}},
	"emblem": {afterText: []string{
		"- Combine the logo and text into a single, cohesive badge or emblem. The text should wrap around or be integrated within a circular or shield-like shape that also contains the logo. The entire emblem should look like a unified patch or seal.",
	}},
	"photo_text": {afterText: []string{
		"- The text should be placed directly *inside* the main subject of the logo image, as if it is part of the original photo. The text should follow the contours and lighting of the object it is placed on, creating a seamless and integrated effect. Use a bold, clear font that complements the image.",
	}},
	"american_traditional_tattoo": {afterText: []string{
		"- Combine the logo and text into a classic American Traditional tattoo design.",
		"- The logo should be the centerpiece, rendered with bold black outlines and a limited, high-contrast color palette (e.g., red, yellow, green, black).",
		"- The text should be integrated into a flowing banner or ribbon that wraps around the logo.",
		"- The entire design must have a clean, inked-on appearance.",
	}},
	"watercolor_splash": {afterText: []string{
		"- The design should appear as if it was painted directly onto the shirt with watercolors.",
		"- The logo should blend softly into the fabric, with soft, feathered edges.",
		"- Surround and overlay the logo and text with artistic, vibrant watercolor splashes and splatters.",
		"- The text should also have a soft, painted look.",
	}},
	"art_deco": {afterText: []string{
		"- Reinterpret the logo and text in a sophisticated Art Deco style.",
		"- Frame the logo with strong, elegant geometric shapes, intricate line work, and symmetrical patterns reminiscent of 1920s architecture and design.",
		"- The text should be rendered in a classic Art Deco sans-serif font, integrated into the geometric frame.",
		"- Use a color palette with metallic golds, silvers, and bold contrasting colors like black or navy.",
	}},
	"pop_art": {afterText: []string{
		"- Transform the design into a vibrant Pop Art piece inspired by Andy Warhol and Roy Lichtenstein.",
		"- The logo should be rendered with bold outlines and bright, flat colors.",
		"- Incorporate a distinct halftone dot pattern (Ben-Day dots) into parts of the design.",
		"- The text should be in a bold, comic-book style, possibly enclosed in a speech bubble or action-style container.",
	}},
	"cosmic_galaxy": {afterText: []string{
		"- Fill the logo and text with a stunning, high-resolution image of a vibrant nebula or galaxy.",
		`- The text and logo shapes should act as a "window" to the cosmic scene inside.`,
		"- Add subtle glowing star highlights and cosmic dust effects around the design to enhance the theme.",
	}},
	"japanese_ukiyo-e": {afterText: []string{
		"- Re-imagine the logo and text in the style of a traditional Japanese Ukiyo-e woodblock print.",
		`- Integrate iconic Ukiyo-e elements like stylized waves (like "The Great Wave off Kanagawa"), clouds, or cherry blossoms around the logo.`,
		"- The color palette should be muted and reminiscent of traditional prints.",
		"- The text should be rendered in a font that complements the artistic style, perhaps with a brush-stroke effect.",
	}},
	"distressed_vintage": {afterText: []string{
		"- The entire design (logo and text) must have a heavy, realistic distressed and cracked ink effect.",
		"- The graphic should look like a well-worn, faded print from a vintage {garment} from the 1980s.",
		"- Slightly desaturate the colors to enhance the vintage feel.",
	}},
	"typography_focus": {afterText: []string{
		"- The design's primary focus must be the text. Make it large, bold, and the center of attention.",
		"- The logo should be used as a smaller, secondary element, integrated subtly above or below the main text.",
	}},
	"abstract_geometric": {afterText: []string{
		"- Frame the logo and text with a dynamic and artistic composition of abstract geometric shapes (lines, triangles, circles).",
		"- The overall aesthetic should be modern, clean, and visually striking.",
	}},
	"vintage_poster": {afterText: []string{
		"- Combine the logo and text into a design reminiscent of a 1950s or 1960s vintage travel poster.",
		"- Use a limited, muted color palette, bold and stylized typography, and add a subtle paper texture overlay to the entire design for an authentic retro feel.",
	}},
	"geometric_pattern": {afterText: []string{
		"- Create a modern, abstract design by integrating the logo within a repeating pattern of clean geometric shapes like triangles, hexagons, or circles.",
		"- The text should be placed cleanly within the pattern.",
		"- The overall effect should be contemporary and artistic.",
	}},
	"hand_drawn_sketch": {afterText: []string{
		"- Transform the logo and text into a delicate, hand-drawn pencil or ink sketch.",
		"- The lines should be fine and slightly imperfect, giving it an authentic, artistic, and organic feel.",
		"- The text should also appear hand-lettered.",
	}},
}

// clauseFor - 스타일 지시문 (모르는 스타일은 classic)
func clauseFor(style, garment string) styleClause {
	clause, ok := designStyleClauses[style]
	if !ok {
		clause = classicClause
	}
	r := strings.NewReplacer("{garment}", garment)
	return styleClause{
		beforeText: replaceAll(r, clause.beforeText),
		afterText:  replaceAll(r, clause.afterText),
	}
}

func replaceAll(r *strings.Replacer, lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = r.Replace(line)
	}
	return out
}
