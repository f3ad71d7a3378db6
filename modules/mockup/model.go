package mockup

// ProductType - 목업 제품 종류
type ProductType string

const (
	ProductTshirt           ProductType = "tshirt"
	ProductSweatshirt       ProductType = "sweatshirt"
	ProductHoodie           ProductType = "hoodie"
	ProductFlatLay          ProductType = "flat_lay"
	ProductBag              ProductType = "bag"
	ProductWallet           ProductType = "wallet"
	ProductCap              ProductType = "cap"
	ProductPillow           ProductType = "pillow"
	ProductWoodenFrame      ProductType = "wooden_frame"
	ProductTeaMug           ProductType = "tea_mug"
	ProductSipperGlass      ProductType = "sipper_glass"
	ProductTumblerWrap      ProductType = "tumbler_wrap"
	ProductHalloweenTumbler ProductType = "halloween_tumbler"
	ProductTumblerTrio      ProductType = "tumbler_trio"
	ProductLaserEngraving   ProductType = "laser_engraving"
	ProductPhoneCase        ProductType = "phone_case"
	ProductSticker          ProductType = "sticker"
	ProductPoster           ProductType = "poster"
	ProductJigsawPuzzle     ProductType = "jigsaw_puzzle"
)

// AspectRatios - base 이미지 생성에 허용되는 비율
var AspectRatios = []string{"1:1", "16:9", "9:16"}

const DefaultAspectRatio = "1:1"

// DesignConfiguration - 한 번의 생성 요청을 결정하는 설정값
// productType에 해당하는 필드만 읽고 나머지는 무시
type DesignConfiguration struct {
	ProductType  ProductType `json:"productType"`
	ProductColor string      `json:"productColor"`
	AspectRatio  string      `json:"aspectRatio"`

	// 텍스트
	Text               string `json:"text"`
	Font               string `json:"font"`
	TextColor          string `json:"textColor"`
	TextStyle          string `json:"textStyle"`
	GradientStartColor string `json:"gradientStartColor,omitempty"`
	GradientEndColor   string `json:"gradientEndColor,omitempty"`

	// 가먼트 (tshirt, sweatshirt, hoodie, flat_lay)
	DesignStyle string `json:"style"`
	Pose        string `json:"pose"`
	Audience    string `json:"audience"`

	BagMaterial string `json:"bagMaterial,omitempty"`

	FrameStyle string `json:"frameStyle,omitempty"`
	FrameModel string `json:"frameModel,omitempty"`

	MugStyle string `json:"mugStyle,omitempty"`
	MugModel string `json:"mugModel,omitempty"`

	SipperGlassStyle string `json:"sipperGlassStyle,omitempty"`
	SipperGlassModel string `json:"sipperGlassModel,omitempty"`

	TumblerStyle string `json:"tumblerStyle,omitempty"`
	TumblerModel string `json:"tumblerModel,omitempty"`

	HalloweenTumblerStyle   string `json:"halloweenTumblerStyle,omitempty"`
	HalloweenTumblerSetting string `json:"halloweenTumblerSetting,omitempty"`

	TumblerTrioStyle   string `json:"tumblerTrioStyle,omitempty"`
	TumblerTrioSetting string `json:"tumblerTrioSetting,omitempty"`

	EngravingMaterial string `json:"engravingMaterial,omitempty"`

	PhoneCaseStyle string `json:"phoneCaseStyle,omitempty"`
	PhoneCaseModel string `json:"phoneCaseModel,omitempty"`

	StickerStyle   string `json:"stickerStyle,omitempty"`
	StickerSetting string `json:"stickerSetting,omitempty"`

	PosterStyle   string `json:"posterStyle,omitempty"`
	PosterSetting string `json:"posterSetting,omitempty"`

	WalletStyle string `json:"walletStyle,omitempty"`
	WalletModel string `json:"walletModel,omitempty"`

	CapStyle string `json:"capStyle,omitempty"`
	CapModel string `json:"capModel,omitempty"`

	PillowStyle   string `json:"pillowStyle,omitempty"`
	PillowSetting string `json:"pillowSetting,omitempty"`

	FlatLayStyle string `json:"flatLayStyle,omitempty"`

	PuzzleStyle   string `json:"puzzleStyle,omitempty"`
	PuzzleSetting string `json:"puzzleSetting,omitempty"`
}

// Prompts - 컴파일 결과 (phase 1 / phase 2)
type Prompts struct {
	BasePrompt string `json:"basePrompt"`
	EditPrompt string `json:"editPrompt"`
}

// State - 오케스트레이터 상태
type State string

const (
	StateIdle                State = "idle"
	StateCompilingBasePrompt State = "compiling_base_prompt"
	StateAwaitingBaseImage   State = "awaiting_base_image"
	StateCompilingEditPrompt State = "compiling_edit_prompt"
	StateAwaitingEditedImage State = "awaiting_edited_image"
	StateDone                State = "done"
	StateFailed              State = "failed"
)

// ErrorBody - 분류된 에러 응답
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// GenerateRequest - POST /api/mockup/generate, /api/mockup/jobs 요청 (JSON)
// artwork/backgroundArtwork는 data URL
type GenerateRequest struct {
	Config            DesignConfiguration `json:"config"`
	Artwork           string              `json:"artwork"`
	BackgroundArtwork string              `json:"backgroundArtwork,omitempty"`
	UserID            string              `json:"userId,omitempty"`
}

// GenerateResponse - 동기 생성 응답
type GenerateResponse struct {
	Success     bool       `json:"success"`
	RequestID   string     `json:"requestId,omitempty"`
	MimeType    string     `json:"mimeType,omitempty"`
	ImageBase64 string     `json:"imageBase64,omitempty"`
	Error       *ErrorBody `json:"error,omitempty"`
}

// PromptsResponse - 프롬프트 미리보기 응답
type PromptsResponse struct {
	Success bool       `json:"success"`
	Prompts *Prompts   `json:"prompts,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}
