package mockup

import (
	"fmt"

	"mockup-canvas-server/modules/descriptor"
)

const (
	ignoreTextInstruction        = "- **IMPORTANT:** Ignore any text prompt. The design is based solely on the provided image."
	ignoreTextPatternInstruction = "- **IMPORTANT:** Ignore any text prompt. The design is based solely on the provided image pattern."
)

// garmentEdit - 가먼트(티셔츠/맨투맨/후디/플랫레이) edit 프롬프트 정의
type garmentEdit struct {
	garment   string // 스타일 지시문에 들어가는 명사
	persona   string
	combineOn string // combine 문장 끝 (" on the garment" 등)
	placement string // 제품 전용 배치 문장 (없으면 "")
	preserve  string
	output    string

	fullFront        []string
	fullWrap         []string
	coveragePreserve string
}

func (g *garmentEdit) compile(c *DesignConfiguration) string {
	if IsFullCoverage(c.DesignStyle) {
		return g.coverage(c.DesignStyle)
	}

	withText := hasText(c)

	design := "- The design consists of the provided logo image."
	combine := fmt.Sprintf("- Professionally combine the logo into a cohesive, artistic composition%s.", g.combineOn)
	if withText {
		design = fmt.Sprintf(`- The design consists of the provided logo image and the text: "%s".`, c.Text)
		combine = fmt.Sprintf("- Professionally combine the logo and text into a cohesive, artistic composition%s.", g.combineOn)
	}

	base := fragments{g.persona, design, combine, g.placement}.
		add(realismBlock...).
		add(g.preserve, g.output)

	if !withText {
		return base.join()
	}

	clause := clauseFor(c.DesignStyle, g.garment)
	return base.
		add(clause.beforeText...).
		add(textStyling(c, descriptor.ContrastColor(c.ProductColor))...).
		add(clause.afterText...).
		join()
}

// coverage - full_front/full_wrap 전용 프롬프트 (텍스트 무시)
func (g *garmentEdit) coverage(style string) string {
	var intro []string
	ignore := ignoreTextInstruction
	if style == StyleFullWrap {
		intro = g.fullWrap
		ignore = ignoreTextPatternInstruction
	} else {
		intro = g.fullFront
	}

	return fragments(nil).
		add(intro...).
		add(realismBlock...).
		add(g.coveragePreserve, ignore, outputEditedImage).
		join()
}

const (
	fullFrontPersona = "As a world-class photorealistic mockup artist, your task is to create a full-front print mockup."
	fullWrapPersona  = "As a world-class photorealistic mockup artist, your task is to create an all-over print mockup."
	fullFrontScale   = "- The image should be scaled to fit the front of the garment, from just below the collar to the bottom hem, and from side seam to side seam, without repeating or tiling."
)

func modelGarmentEdit(garment, wrapAreas, placement, frontScale string) *garmentEdit {
	return &garmentEdit{
		garment:   garment,
		persona:   fmt.Sprintf("As a world-class photorealistic mockup artist, your task is to add a design to the %s in the provided image.", garment),
		combineOn: " on the garment",
		placement: placement,
		preserve:  fmt.Sprintf("- Do not change the model, the %s color, or the background. Only add the design.", colorNoun(garment)),
		output:    outputPhotoImage,
		fullFront: []string{
			fullFrontPersona,
			fmt.Sprintf("- Take the provided logo/artwork image and apply it as a single, large graphic that covers the entire front surface of the %s.", garment),
			frontScale,
		},
		fullWrap: []string{
			fullWrapPersona,
			fmt.Sprintf("- Take the provided logo/artwork image and apply it as a seamless, repeating pattern that covers the entire visible surface of the %s, including %s, and any visible parts of the back.", garment, wrapAreas),
		},
		coveragePreserve: fmt.Sprintf("- Do not change the model, the background, or the %s's shape.", garment),
	}
}

// colorNoun - 티셔츠 보존 문장은 "shirt color"
func colorNoun(garment string) string {
	if garment == "t-shirt" {
		return "shirt"
	}
	return garment
}

var (
	tshirtEdit     = modelGarmentEdit("t-shirt", "the front, sleeves", "", fullFrontScale)
	sweatshirtEdit = modelGarmentEdit("sweatshirt", "the front, sleeves", "", fullFrontScale)
	hoodieEdit     = modelGarmentEdit("hoodie", "the front, sleeves, hood",
		"- The design must be realistically placed above the front pocket if one is visible.",
		"- The image should be scaled to fit the front of the garment, from just below the collar to the bottom hem, and from side seam to side seam. Avoid printing over the front pocket if one is visible.")

	flatLayEdit = &garmentEdit{
		garment:   "t-shirt",
		persona:   "As a world-class photorealistic mockup artist, your task is to add a graphic design to the T-shirt in the flat lay image.",
		combineOn: "",
		placement: "- The design must be prominently displayed on the t-shirt.",
		preserve:  "- **DO NOT CHANGE** any other elements in the flat lay scene (e.g., accessories, background). Only add the design to the T-shirt.",
		output:    outputEditedImage,
		fullFront: []string{
			"As a world-class photorealistic mockup artist, create a full-front print mockup on the t-shirt within the provided flat lay image.",
			"- Take the provided logo/artwork image and apply it as a single, large graphic that covers the entire front surface of the t-shirt.",
			fullFrontScale,
		},
		fullWrap: []string{
			"As a world-class photorealistic mockup artist, create an all-over print mockup on the t-shirt within the provided flat lay image.",
			"- Take the provided logo/artwork image and apply it as a seamless, repeating pattern that covers the entire visible surface of the t-shirt.",
		},
		coveragePreserve: "- **DO NOT CHANGE** any other elements of the flat lay scene (accessories, background).",
	}
)

// accessoryEdit - 텍스트를 선택적으로 추가하는 소품 edit 프롬프트
type accessoryEdit struct {
	header         string
	designNoText   string // 빈 값이면 design 문장 없음
	designWithText string
	body           []string
	realism        bool
	preserve       string
	textLead       string // %s = 텍스트
	contrast       string // 고정 외곽선 색 (빈 값이면 제품 색 기준)
}

func (a *accessoryEdit) compile(c *DesignConfiguration) string {
	withText := hasText(c)

	design := a.designNoText
	if withText {
		design = a.designWithText
	}

	f := fragments{a.header, design}.add(a.body...)
	if a.realism {
		f = f.add(realismBlock...)
	}
	f = f.add(a.preserve)

	if withText {
		contrast := a.contrast
		if contrast == "" {
			contrast = descriptor.ContrastColor(c.ProductColor)
		}
		f = f.add(
			fmt.Sprintf(a.textLead, c.Text),
			fmt.Sprintf(`- Render it in the "%s" font with color "%s".`, descriptor.FontName(c.Font), descriptor.ColorName(c.TextColor)),
			"- "+descriptor.TextStyleInstruction(c.TextStyle, contrast, c.GradientStartColor, c.GradientEndColor),
		)
	}

	return f.add(outputFinalImage).join()
}

const (
	logoDesignNoText   = "- The design consists of the provided logo image."
	logoDesignWithText = "- The design consists of the provided logo image and text."
)

var (
	bagEdit = &accessoryEdit{
		header:         "As a photorealistic mockup artist, add a design to the bag in the provided image.",
		designNoText:   logoDesignNoText,
		designWithText: logoDesignWithText,
		body:           []string{"- Combine the elements into a cohesive composition on the front of the bag."},
		realism:        true,
		preserve:       "- Do not change the bag, the hand holding it, or the background.",
		textLead:       `- The text "%s" must be added to the bag.`,
	}

	walletEdit = &accessoryEdit{
		header:         "As a product mockup artist, add a design to the plain leather wallet in the provided image.",
		designNoText:   logoDesignNoText,
		designWithText: logoDesignWithText,
		body: []string{
			"- Combine the elements into a cohesive, centered composition on the front of the wallet.",
			"- The design must look like a high-quality, photorealistic print or embossing on the leather.",
		},
		realism:  true,
		preserve: "- Do not change the wallet, its surroundings, or the background.",
		textLead: `- The text "%s" must be added to the wallet.`,
	}

	capEdit = &accessoryEdit{
		header:         "As a product mockup artist, add a design to the plain cap in the provided image.",
		designNoText:   logoDesignNoText,
		designWithText: logoDesignWithText,
		body: []string{
			"- Combine the elements into a cohesive, centered composition on the front panel of the cap.",
			"- The design must look like a high-quality, photorealistic embroidery or print.",
		},
		realism:  true,
		preserve: "- Do not change the cap, its surroundings, or the background.",
		textLead: `- The text "%s" must be added to the cap.`,
	}

	pillowEdit = &accessoryEdit{
		header:         "As a product mockup artist, add a design to the plain pillow in the provided image.",
		designNoText:   logoDesignNoText,
		designWithText: logoDesignWithText,
		body:           []string{"- Combine the elements into a cohesive, centered composition on the front of the pillow."},
		realism:        true,
		preserve:       "- Do not change the pillow, its surroundings, or the background.",
		textLead:       `- The text "%s" must be added to the pillow.`,
	}

	phoneCaseEdit = &accessoryEdit{
		header: "As a product mockup artist, add a design to the plain phone case in the provided image.",
		body: []string{
			"- The provided logo image must be applied as a full-wrap design, covering the entire back of the phone case.",
			"- The design must look like a high-quality, permanent print that follows the contours of the case and wraps around the camera cutout realistically.",
		},
		realism:  true,
		preserve: "- Do not change the phone case, its surroundings, or the background.",
		textLead: `- The text "%s" must be added on top of the design.`,
	}

	// 스티커/포스터는 흰색이므로 외곽선은 항상 black
	stickerEdit = &accessoryEdit{
		header:         "As a sticker designer, your task is to apply a design to the blank sticker in the image.",
		designNoText:   "- The design is composed of the provided logo image.",
		designWithText: "- The design is composed of the provided logo image and text.",
		body: []string{
			"- Combine these elements into a single, cohesive sticker design.",
			"- The plain white sticker in the image must be completely replaced by this new design.",
			"- The final design must conform to the sticker's shape and material properties (e.g., glossy, holographic).",
			"- **CRITICAL:** Do not change the setting, the surface the sticker is on, or the background. Only replace the blank sticker with the design.",
		},
		textLead: `- The design should incorporate the text "%s".`,
		contrast: descriptor.ContrastBlack,
	}

	posterEdit = &accessoryEdit{
		header:         "As a professional graphic designer, place a complete design onto the blank poster in the provided image.",
		designNoText:   "- The design consists of the provided artwork image.",
		designWithText: "- The design consists of the provided artwork image and text.",
		body: []string{
			"- Combine these elements into a single, compelling, and well-composed poster design.",
			"- Apply this final design to the blank poster area.",
			"- Ensure the lighting, shadows, and perspective of the design match the scene perfectly for a photorealistic composite.",
		},
		preserve: "- Do not change the poster's surroundings (frame, wall, hands, etc.) or the background.",
		textLead: `- The design should incorporate the text "%s".`,
		contrast: descriptor.ContrastBlack,
	}
)

// 텍스트를 쓰지 않는 제품의 고정 edit 프롬프트
const (
	frameEditPrompt = `As a professional photo editor, place artwork inside the empty frame in the provided image.
- Inside the empty wooden frame, place the provided artwork image.
- **CRITICAL:** The artwork must look like a high-quality, textured painting or print.
- Ensure the lighting, shadows, and reflections on the artwork's surface match the scene perfectly for a photorealistic composite. The artwork should appear to be behind the frame's glass or have a matte finish, matching the scene.
- Do not change the frame, the person holding it, or the background.
- Output ONLY the final image.`

	mugEditPrompt = `As a product mockup artist, add a design to the plain mug in the provided image.
- On the plain mug, add the provided logo image.
- The logo must look like a high-quality, permanent print that wraps naturally around the curve of the mug.
- Ensure lighting, shadows, and reflections on the logo match the mug's surface and the scene.
- Do not change the mug, the person holding it, or the background.
- Output ONLY the final image.`

	sipperGlassEditPrompt = `As a product mockup artist, add a design to the plain sipper glass in the provided image.
- On the plain glass, add the provided artwork image.
- The artwork must look like a high-quality, permanent print that wraps naturally around the curve of the glass.
- Ensure lighting, shadows, and reflections on the artwork match the glass's surface and the scene.
- Do not change the glass, the person holding it, or the background.
- Output ONLY the final image.`

	tumblerWrapEditPrompt = `As a product mockup artist, add a design to the plain tumbler in the provided image.
- On the plain tumbler, add the provided artwork image as a full wrap.
- The artwork must look like a high-quality, permanent print that wraps seamlessly and naturally around the curve of the tumbler.
- Ensure lighting, shadows, and reflections on the artwork match the tumbler's surface and the scene.
- Do not change the tumbler, the person holding it, or the background.
- Output ONLY the final image.`

	halloweenTumblerEditPrompt = `As a product mockup artist, add a design to the plain tumbler in the provided image.
- On the plain tumbler, add the provided artwork image as a full wrap.
- The artwork must look like a high-quality, permanent print that wraps seamlessly and naturally around the curve of the tumbler.
- Ensure lighting, shadows, and reflections on the artwork match the tumbler's surface and the scene.
- Do not change the tumbler itself or the background setting.
- Output ONLY the final image.`

	tumblerTrioEditPrompt = `As an expert product mockup artist, your task is to add a seamless panoramic design to the three tumblers in the provided image.
- You are provided with a single artwork image. This artwork must be applied as a full, continuous wrap across all three tumblers.
- The three tumblers represent a single, unwrapped design. The leftmost tumbler should show the left part of the artwork, the middle tumbler should show the center, and the rightmost tumbler should show the right part.
- The artwork must look like a high-quality, permanent print that wraps seamlessly and naturally around each tumbler's curve.
- Ensure the lighting, shadows, and reflections on the artwork match the tumblers' surfaces and the scene for maximum realism.
- **CRITICAL:** Do not change the tumblers themselves, their positions, or the background setting. Only add the artwork.
- Output ONLY the final image.`

	puzzleEditPrompt = `As a product mockup artist, add a design to the blank jigsaw puzzle in the provided image.
- The provided artwork image must be applied as the main design, covering the entire surface of the puzzle.
- The design must look like a high-quality, permanent print.
- **CRITICAL:** Subtly overlay the puzzle piece cut lines on top of the artwork. The lines should be visible but not distracting, giving a realistic puzzle texture.
- Ensure lighting, shadows, and reflections on the design match the puzzle's surface and the scene.
- Do not change the puzzle's shape, its surroundings, or the background.
- Output ONLY the final image.`
)
