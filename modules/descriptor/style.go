package descriptor

// 제품별 스타일(재질/마감) 설명

var FrameStyles = &Table{
	Name:    "frameStyle",
	Default: "a high-quality wooden frame",
	Entries: []Entry{
		{ID: "classic_ornate", Description: "a classic, ornate, and intricately carved wooden frame"},
		{ID: "modern_minimalist", Description: "a modern, minimalist wooden frame with clean lines and a smooth finish"},
		{ID: "rustic_barnwood", Description: "a rustic frame made from reclaimed barnwood, with a weathered and textured look"},
		{ID: "modern_mahogany", Description: "a modern, minimalist frame with a rich, dark red mahogany finish"},
	},
}

var MugStyles = &Table{
	Name:    "mugStyle",
	Default: "a high-quality mug",
	Entries: []Entry{
		{ID: "classic_ceramic", Description: "a classic, high-quality ceramic mug"},
		{ID: "modern_glass", Description: "a sleek, modern double-walled glass mug"},
		{ID: "vintage_enamel", Description: "a vintage-style enamel camping mug"},
	},
}

var SipperGlassStyles = &Table{
	Name:    "sipperGlassStyle",
	Default: "a high-quality sipper glass",
	Entries: []Entry{
		{ID: "classic_can_shape", Description: "a classic, can-shaped glass"},
		{ID: "modern_tapered", Description: "a sleek, modern tapered glass"},
		{ID: "frosted_finish", Description: "a glass with a stylish frosted finish"},
	},
}

var TumblerStyles = &Table{
	Name:    "tumblerStyle",
	Default: "a high-quality tumbler",
	Entries: []Entry{
		{ID: "stainless_steel", Description: "a classic, high-quality stainless steel tumbler with a lid"},
		{ID: "matte_finish", Description: "a tumbler with a modern, non-reflective matte finish"},
		{ID: "glossy_white", Description: "a glossy white tumbler, perfect for sublimation prints"},
	},
}

var HalloweenTumblerStyles = &Table{
	Name:    "halloweenTumblerStyle",
	Default: "a high-quality tumbler",
	Entries: []Entry{
		{ID: "glossy_black", Description: "a high-quality tumbler with a glossy black finish"},
		{ID: "matte_black", Description: "a high-quality tumbler with a modern, non-reflective matte black finish"},
		{ID: "stainless_steel", Description: "a classic, high-quality stainless steel tumbler with a lid"},
	},
}

var TumblerTrioStyles = &Table{
	Name:    "tumblerTrioStyle",
	Default: "three identical high-quality tumblers",
	Entries: []Entry{
		{ID: "glossy_white", Description: "three identical high-quality tumblers with a glossy white finish, perfect for sublimation prints"},
		{ID: "matte_white", Description: "three identical high-quality tumblers with a modern, non-reflective matte white finish"},
		{ID: "stainless_steel", Description: "three identical classic, high-quality stainless steel tumblers with lids"},
	},
}

// PhoneCaseStyles - "phone case with a ..." 뒤에 붙는 구절
var PhoneCaseStyles = &Table{
	Name:    "phoneCaseStyle",
	Default: "a high-quality",
	Entries: []Entry{
		{ID: "glossy", Description: "a high-quality glossy finish"},
		{ID: "matte", Description: "a modern, non-reflective matte finish"},
		{ID: "clear", Description: "a transparent, clear"},
	},
}

var StickerStyles = &Table{
	Name:    "stickerStyle",
	Default: "a high-quality sticker",
	Entries: []Entry{
		{ID: "die_cut_glossy", Description: "die-cut sticker with a glossy vinyl finish"},
		{ID: "kiss_cut_matte", Description: "kiss-cut sticker on a square backing with a matte finish"},
		{ID: "holographic", Description: "die-cut sticker with a vibrant holographic finish"},
	},
}

var PosterStyles = &Table{
	Name:    "posterStyle",
	Default: "a high-quality poster",
	Entries: []Entry{
		{ID: "glossy_finish", Description: "poster with a glossy finish"},
		{ID: "matte_finish", Description: "poster with a non-reflective matte finish"},
	},
}

var WalletStyles = &Table{
	Name:    "walletStyle",
	Default: "a high-quality leather wallet",
	Entries: []Entry{
		{ID: "bifold", Description: "a classic bifold leather wallet"},
		{ID: "cardholder", Description: "a slim, minimalist leather cardholder wallet"},
		{ID: "zipper", Description: "a modern leather wallet with a zipper closure"},
	},
}

var CapStyles = &Table{
	Name:    "capStyle",
	Default: "a high-quality cap",
	Entries: []Entry{
		{ID: "structured_baseball", Description: "a classic, structured baseball cap with a curved brim"},
		{ID: "unstructured_dad_hat", Description: `a casual, unstructured "dad hat" with a soft crown`},
		{ID: "snapback", Description: "a stylish snapback cap with a flat brim"},
	},
}

var PillowStyles = &Table{
	Name:    "pillowStyle",
	Default: "a high-quality pillow",
	Entries: []Entry{
		{ID: "square_cotton", Description: "a square throw pillow made of high-quality cotton"},
		{ID: "lumbar_linen", Description: "a rectangular lumbar pillow with a textured linen finish"},
		{ID: "round_velvet", Description: "a round decorative pillow made of plush velvet"},
	},
}

var PuzzleStyles = &Table{
	Name:    "puzzleStyle",
	Default: "a high-quality jigsaw puzzle",
	Entries: []Entry{
		{ID: "rectangle_cardboard", Description: "a rectangular jigsaw puzzle made of high-quality cardboard with standard interlocking pieces"},
		{ID: "heart_shaped_wood", Description: "a heart-shaped jigsaw puzzle made of laser-cut wood with unique, thematic pieces"},
	},
}

// BagMaterials - 재질 ID가 그대로 프롬프트에 들어감 ("a plain, unbranded canvas bag")
var BagMaterials = &Table{
	Name:    "bagMaterial",
	Default: "canvas",
	Entries: []Entry{
		{ID: "canvas", Description: "canvas"},
		{ID: "leather", Description: "leather"},
		{ID: "nylon", Description: "nylon"},
		{ID: "denim", Description: "denim"},
	},
}

// EngravingMaterials - 카탈로그 노출용 (레이저 각인은 프롬프트 정의 없음)
var EngravingMaterials = &Table{
	Name: "engravingMaterial",
	Entries: []Entry{
		{ID: "wood_plaque", Description: "wood_plaque"},
		{ID: "slate_coaster", Description: "slate_coaster"},
		{ID: "metal_card", Description: "metal_card"},
	},
}
