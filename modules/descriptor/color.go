package descriptor

import (
	"strconv"
	"strings"
)

// ProductColor - 팔레트 색상 (이름 + hex)
type ProductColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// ProductColors - 제품 색상 팔레트
var ProductColors = []ProductColor{
	{Name: "White", Hex: "#FFFFFF"},
	{Name: "Black", Hex: "#272727"},
	{Name: "Jet Black", Hex: "#111111"},
	{Name: "Grey", Hex: "#808080"},
	{Name: "Charcoal", Hex: "#4A4A4A"},
	{Name: "Silver", Hex: "#C0C0C0"},
	{Name: "Cream", Hex: "#FEF3C7"},
	{Name: "Beige", Hex: "#D2B48C"},
	{Name: "Red", Hex: "#B91C1C"},
	{Name: "Maroon", Hex: "#800000"},
	{Name: "Burgundy", Hex: "#9F1239"},
	{Name: "Rose", Hex: "#FB7185"},
	{Name: "Pink", Hex: "#F472B6"},
	{Name: "Hot Pink", Hex: "#D946EF"},
	{Name: "Light Pink", Hex: "#FBCFE8"},
	{Name: "Coral", Hex: "#FF7F50"},
	{Name: "Orange", Hex: "#FFA500"},
	{Name: "Bright Orange", Hex: "#F97316"},
	{Name: "Gold", Hex: "#FFD700"},
	{Name: "Yellow", Hex: "#FBBF24"},
	{Name: "Electric Lime", Hex: "#BEF264"},
	{Name: "Lime", Hex: "#A3E635"},
	{Name: "Green", Hex: "#16A34A"},
	{Name: "Forest Green", Hex: "#15803D"},
	{Name: "Mint Green", Hex: "#6EE7B7"},
	{Name: "Teal", Hex: "#2DD4BF"},
	{Name: "Turquoise", Hex: "#40E0D0"},
	{Name: "Cyan", Hex: "#22D3EE"},
	{Name: "Sky Blue", Hex: "#38BDF8"},
	{Name: "Baby Blue", Hex: "#BFDBFE"},
	{Name: "Blue", Hex: "#2563EB"},
	{Name: "Royal Blue", Hex: "#4338CA"},
	{Name: "Indigo", Hex: "#6366F1"},
	{Name: "Navy", Hex: "#001f3f"},
	{Name: "Purple", Hex: "#A78BFA"},
	{Name: "Lavender", Hex: "#C4B5FD"},
	{Name: "Lilac", Hex: "#D8B4FE"},
	{Name: "Fuchsia", Hex: "#E879F9"},
	{Name: "Brown", Hex: "#78350F"},
	{Name: "Walnut", Hex: "#5C4033"},
	{Name: "Pine", Hex: "#A67B5B"},
	{Name: "Oak", Hex: "#C2A47C"},
	{Name: "Mahogany", Hex: "#C04000"},
}

// ColorName - hex 값을 팔레트 색상 이름으로 변환 (없으면 hex 그대로)
func ColorName(hex string) string {
	for _, c := range ProductColors {
		if strings.EqualFold(c.Hex, hex) {
			return c.Name
		}
	}
	return hex
}

const (
	ContrastBlack = "black"
	ContrastWhite = "white"
)

// ContrastColor - 배경색 밝기 기준으로 가독성 좋은 텍스트 색상 반환
// brightness = (R*299 + G*587 + B*114) / 1000, 128 초과면 black
// 3자리 hex 지원, 잘못된 값은 white
func ContrastColor(hex string) string {
	clean := strings.TrimPrefix(hex, "#")

	if len(clean) == 3 {
		var b strings.Builder
		for _, ch := range clean {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		clean = b.String()
	}

	if len(clean) != 6 {
		return ContrastWhite
	}

	r, errR := strconv.ParseUint(clean[0:2], 16, 8)
	g, errG := strconv.ParseUint(clean[2:4], 16, 8)
	b, errB := strconv.ParseUint(clean[4:6], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return ContrastWhite
	}

	brightness := float64(r*299+g*587+b*114) / 1000
	if brightness > 128 {
		return ContrastBlack
	}
	return ContrastWhite
}
