package mockup

import "mockup-canvas-server/modules/descriptor"

// Catalog - UI가 컨트롤을 구성할 수 있도록 노출하는 옵션 ID 목록
type Catalog struct {
	ProductTypes  []ProductType                 `json:"productTypes"`
	ProductColors []descriptor.ProductColor     `json:"productColors"`
	AspectRatios  []string                      `json:"aspectRatios"`
	Fonts         []string                      `json:"fonts"`
	TextStyles    []string                      `json:"textStyles"`
	DesignStyles  []string                      `json:"designStyles"`
	Poses         []string                      `json:"poses"`
	Audiences     []string                      `json:"audiences"`
	Products      map[ProductType]ProductFields `json:"products"`
}

// ProductFields - 제품별 옵션 그룹 (필드 이름 → ID 목록)
type ProductFields map[string][]string

// catalogFields - 제품별로 읽는 설정 필드와 테이블
var catalogFields = map[ProductType]map[string]*descriptor.Table{
	ProductFlatLay:          {"flatLayStyle": descriptor.FlatLayStyles},
	ProductBag:              {"bagMaterial": descriptor.BagMaterials},
	ProductWallet:           {"walletStyle": descriptor.WalletStyles, "walletModel": descriptor.WalletModels},
	ProductCap:              {"capStyle": descriptor.CapStyles, "capModel": descriptor.CapModels},
	ProductPillow:           {"pillowStyle": descriptor.PillowStyles, "pillowSetting": descriptor.PillowSettings},
	ProductWoodenFrame:      {"frameStyle": descriptor.FrameStyles, "frameModel": descriptor.FrameModels},
	ProductTeaMug:           {"mugStyle": descriptor.MugStyles, "mugModel": descriptor.MugModels},
	ProductSipperGlass:      {"sipperGlassStyle": descriptor.SipperGlassStyles, "sipperGlassModel": descriptor.SipperGlassModels},
	ProductTumblerWrap:      {"tumblerStyle": descriptor.TumblerStyles, "tumblerModel": descriptor.TumblerModels},
	ProductHalloweenTumbler: {"halloweenTumblerStyle": descriptor.HalloweenTumblerStyles, "halloweenTumblerSetting": descriptor.HalloweenTumblerSettings},
	ProductTumblerTrio:      {"tumblerTrioStyle": descriptor.TumblerTrioStyles, "tumblerTrioSetting": descriptor.TumblerTrioSettings},
	ProductLaserEngraving:   {"engravingMaterial": descriptor.EngravingMaterials},
	ProductPhoneCase:        {"phoneCaseStyle": descriptor.PhoneCaseStyles, "phoneCaseModel": descriptor.PhoneCaseModels},
	ProductSticker:          {"stickerStyle": descriptor.StickerStyles, "stickerSetting": descriptor.StickerSettings},
	ProductPoster:           {"posterStyle": descriptor.PosterStyles, "posterSetting": descriptor.PosterSettings},
	ProductJigsawPuzzle:     {"puzzleStyle": descriptor.PuzzleStyles, "puzzleSetting": descriptor.PuzzleSettings},
}

// Options - 전체 옵션 카탈로그
func Options() *Catalog {
	products := make(map[ProductType]ProductFields, len(catalogFields))
	for productType, fields := range catalogFields {
		group := make(ProductFields, len(fields))
		for field, table := range fields {
			group[field] = table.IDs()
		}
		products[productType] = group
	}

	return &Catalog{
		ProductTypes:  ProductTypes,
		ProductColors: descriptor.ProductColors,
		AspectRatios:  AspectRatios,
		Fonts:         descriptor.Fonts,
		TextStyles:    descriptor.TextStyles,
		DesignStyles:  DesignStyles,
		Poses:         descriptor.Poses.IDs(),
		Audiences:     descriptor.Audiences.IDs(),
		Products:      products,
	}
}
