package mockup

import (
	"fmt"

	"mockup-canvas-server/modules/descriptor"
)

// productDef - 제품별 프롬프트 정의
// base/edit 함수는 해당 제품에 필요한 필드만 읽음
type productDef struct {
	base func(c *DesignConfiguration) string
	edit func(c *DesignConfiguration) string
}

var products = map[ProductType]*productDef{
	ProductTshirt:           {base: garmentBase("t-shirt"), edit: tshirtEdit.compile},
	ProductSweatshirt:       {base: garmentBase("sweatshirt"), edit: sweatshirtEdit.compile},
	ProductHoodie:           {base: garmentBase("hoodie"), edit: hoodieEdit.compile},
	ProductFlatLay:          {base: flatLayBase, edit: flatLayEdit.compile},
	ProductBag:              {base: bagBase, edit: bagEdit.compile},
	ProductWallet:           {base: walletBase, edit: walletEdit.compile},
	ProductCap:              {base: capBase, edit: capEdit.compile},
	ProductPillow:           {base: pillowBase, edit: pillowEdit.compile},
	ProductWoodenFrame:      {base: frameBase, edit: fixed(frameEditPrompt)},
	ProductTeaMug:           {base: mugBase, edit: fixed(mugEditPrompt)},
	ProductSipperGlass:      {base: sipperGlassBase, edit: fixed(sipperGlassEditPrompt)},
	ProductTumblerWrap:      {base: tumblerBase, edit: fixed(tumblerWrapEditPrompt)},
	ProductHalloweenTumbler: {base: halloweenTumblerBase, edit: fixed(halloweenTumblerEditPrompt)},
	ProductTumblerTrio:      {base: tumblerTrioBase, edit: fixed(tumblerTrioEditPrompt)},
	ProductPhoneCase:        {base: phoneCaseBase, edit: phoneCaseEdit.compile},
	ProductSticker:          {base: stickerBase, edit: stickerEdit.compile},
	ProductPoster:           {base: posterBase, edit: posterEdit.compile},
	ProductJigsawPuzzle:     {base: puzzleBase, edit: fixed(puzzleEditPrompt)},
}

// ProductTypes - 카탈로그 노출 순서 (laser_engraving은 프롬프트 정의 없음)
var ProductTypes = []ProductType{
	ProductTshirt, ProductSweatshirt, ProductHoodie, ProductFlatLay, ProductBag,
	ProductWallet, ProductCap, ProductPillow, ProductWoodenFrame, ProductTeaMug,
	ProductSipperGlass, ProductTumblerWrap, ProductHalloweenTumbler, ProductTumblerTrio,
	ProductLaserEngraving, ProductPhoneCase, ProductSticker, ProductPoster, ProductJigsawPuzzle,
}


func fixed(prompt string) func(*DesignConfiguration) string {
	return func(*DesignConfiguration) string { return prompt }
}

func garmentBase(garment string) func(c *DesignConfiguration) string {
	return func(c *DesignConfiguration) string {
		color := descriptor.ColorName(c.ProductColor)
		if c.Pose == descriptor.PoseFlatLay {
			return fmt.Sprintf("Top-down commercial product photo. A plain, unbranded, high-quality %s %s is laid perfectly flat on a clean, neutral-colored wooden surface. The %s has a few subtle, natural-looking wrinkles to show fabric texture. The lighting is soft and even, creating gentle, realistic shadows. The background is simple and out of focus. %s",
				color, garment, garment, qualityPrompt)
		}
		return fmt.Sprintf("Commercial product mockup photo, waist-up portrait. A hyperrealistic model, %s, in a %s with a natural expression. The model has extremely detailed, natural skin texture with subtle pores and looks completely authentic. The model is wearing a plain, unbranded, high-quality %s %s with detailed fabric weave and texture visible. The garment is shown clearly for a mockup. The background is a clean, modern, heavily out-of-focus studio setting. %s",
			descriptor.Audiences.Resolve(c.Audience), descriptor.Poses.Resolve(c.Pose), color, garment, qualityPrompt)
	}
}

func flatLayBase(c *DesignConfiguration) string {
	return fmt.Sprintf("Top-down commercial product photo. A perfectly arranged flat lay composition featuring a plain, unbranded, high-quality %s t-shirt with visible fabric texture. Scene: %s. The lighting is soft and even, creating gentle, realistic shadows. %s",
		descriptor.ColorName(c.ProductColor), descriptor.FlatLayStyles.Resolve(c.FlatLayStyle), qualityPrompt)
}

func bagBase(c *DesignConfiguration) string {
	return fmt.Sprintf("Commercial product lifestyle photo. A person's hand and arm with hyperrealistic, natural skin texture, holding a plain, unbranded %s bag in %s. The focus is on the bag, highlighting its detailed material texture. The background is a stylish, heavily blurred urban or cafe setting with strong bokeh. %s",
		descriptor.BagMaterials.Resolve(c.BagMaterial), descriptor.ColorName(c.ProductColor), qualityPrompt)
}

func walletBase(c *DesignConfiguration) string {
	return fmt.Sprintf("Commercial product photo of a plain, unbranded %s in a %s color, highlighting the detailed leather texture. Scene: %s. The background has a beautiful, strong bokeh effect. %s",
		descriptor.WalletStyles.Resolve(c.WalletStyle), descriptor.ColorName(c.ProductColor), descriptor.WalletModels.Resolve(c.WalletModel), qualityPrompt)
}

func frameBase(c *DesignConfiguration) string {
	return fmt.Sprintf("Commercial product photo. A hyperrealistic model, %s, with natural skin texture, is holding up a plain, empty %s in a %s finish. The focus is on the empty frame, showing its detailed wood grain. The background is beautifully blurred with strong bokeh. %s",
		descriptor.FrameModels.Resolve(c.FrameModel), descriptor.FrameStyles.Resolve(c.FrameStyle), descriptor.ColorName(c.ProductColor), qualityPrompt)
}

func mugBase(c *DesignConfiguration) string {
	return fmt.Sprintf("Commercial product photo. A hyperrealistic model, %s, with natural skin texture, is holding a plain, unbranded %s in a %s color. The focus is on the mug, showing its texture. The background has a beautiful, strong bokeh effect. %s",
		descriptor.MugModels.Resolve(c.MugModel), descriptor.MugStyles.Resolve(c.MugStyle), descriptor.ColorName(c.ProductColor), qualityPrompt)
}

func sipperGlassBase(c *DesignConfiguration) string {
	// 흰색 선택 시 음료는 투명
	beverage := descriptor.ColorName(c.ProductColor)
	if c.ProductColor == "#FFFFFF" {
		beverage = "clear"
	}
	return fmt.Sprintf("Commercial product photo. A hyperrealistic model, %s, holding a plain, unbranded %s containing a %s beverage. The focus is on the sipper glass, showing realistic condensation and reflections. The background is beautifully blurred with strong bokeh. %s",
		descriptor.SipperGlassModels.Resolve(c.SipperGlassModel), descriptor.SipperGlassStyles.Resolve(c.SipperGlassStyle), beverage, qualityPrompt)
}

func tumblerBase(c *DesignConfiguration) string {
	return fmt.Sprintf("Commercial product photo. A hyperrealistic model, %s, holding a plain, unbranded %s in a %s color. The focus is on the tumbler, highlighting its material finish (matte, steel). The background is beautifully blurred with strong bokeh. %s",
		descriptor.TumblerModels.Resolve(c.TumblerModel), descriptor.TumblerStyles.Resolve(c.TumblerStyle), descriptor.ColorName(c.ProductColor), qualityPrompt)
}

func halloweenTumblerBase(c *DesignConfiguration) string {
	return fmt.Sprintf("Commercial product photo. A plain, unbranded %s in a %s color is placed in the center of %s. The focus is on the tumbler, highlighting its material and the atmospheric lighting. The background has a beautiful, strong bokeh effect. %s",
		descriptor.HalloweenTumblerStyles.Resolve(c.HalloweenTumblerStyle), descriptor.ColorName(c.ProductColor), descriptor.HalloweenTumblerSettings.Resolve(c.HalloweenTumblerSetting), qualityPrompt)
}

func tumblerTrioBase(c *DesignConfiguration) string {
	return fmt.Sprintf("Commercial product photo. %s are standing in a neat row, side-by-side, on %s. They are all plain, unbranded, and have a %s base color. The focus is on the three tumblers, highlighting their material and reflections. The background has a beautiful bokeh effect. %s",
		descriptor.TumblerTrioStyles.Resolve(c.TumblerTrioStyle), descriptor.TumblerTrioSettings.Resolve(c.TumblerTrioSetting), descriptor.ColorName(c.ProductColor), qualityPrompt)
}

func phoneCaseBase(c *DesignConfiguration) string {
	return fmt.Sprintf("Commercial product photo. A plain, unbranded phone case with a %s in a %s color is shown. Scene: %s. The focus is on the phone case, highlighting its material and realistic reflections. The background is beautifully blurred with strong bokeh. %s",
		descriptor.PhoneCaseStyles.Resolve(c.PhoneCaseStyle), descriptor.ColorName(c.ProductColor), descriptor.PhoneCaseModels.Resolve(c.PhoneCaseModel), qualityPrompt)
}

// stickerBase - 스티커는 색상 선택과 무관하게 흰색
func stickerBase(c *DesignConfiguration) string {
	return fmt.Sprintf("Commercial product photo. A plain, unbranded, white %s is shown. Scene: %s. The focus is on the sticker, which is clean and empty, showing its material finish. The background is beautifully blurred with strong bokeh. %s",
		descriptor.StickerStyles.Resolve(c.StickerStyle), descriptor.StickerSettings.Resolve(c.StickerSetting), qualityPrompt)
}

func posterBase(c *DesignConfiguration) string {
	return fmt.Sprintf("Commercial product photo. A plain, unbranded, white %s is shown. Scene: %s. The focus is on the empty poster, showing its paper texture. The background is beautifully blurred with strong bokeh. %s",
		descriptor.PosterStyles.Resolve(c.PosterStyle), descriptor.PosterSettings.Resolve(c.PosterSetting), qualityPrompt)
}

func capBase(c *DesignConfiguration) string {
	return fmt.Sprintf("Commercial product photo. Scene: %s, featuring a plain, unbranded %s in a %s color. The focus is on the cap, showing detailed fabric texture. The background is beautifully blurred with strong bokeh. %s",
		descriptor.CapModels.Resolve(c.CapModel), descriptor.CapStyles.Resolve(c.CapStyle), descriptor.ColorName(c.ProductColor), qualityPrompt)
}

func pillowBase(c *DesignConfiguration) string {
	return fmt.Sprintf("Commercial product photo. A plain, unbranded %s in a %s color is placed in the center of the scene: %s. The focus is on the pillow, highlighting its detailed fabric texture and softness. The background has a beautiful bokeh effect. %s",
		descriptor.PillowStyles.Resolve(c.PillowStyle), descriptor.ColorName(c.ProductColor), descriptor.PillowSettings.Resolve(c.PillowSetting), qualityPrompt)
}

// puzzleBase - 퍼즐은 항상 빈 흰색
func puzzleBase(c *DesignConfiguration) string {
	return fmt.Sprintf("Commercial product photo. Scene: %s. The %s is completely blank and white, ready for an artwork to be applied, showing the subtle texture of the pieces. The focus is on the puzzle. The background has a beautiful bokeh effect. %s",
		descriptor.PuzzleSettings.Resolve(c.PuzzleSetting), descriptor.PuzzleStyles.Resolve(c.PuzzleStyle), qualityPrompt)
}
