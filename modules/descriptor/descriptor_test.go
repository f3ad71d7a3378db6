package descriptor

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestContrastColor(t *testing.T) {
	cases := []struct {
		hex  string
		want string
	}{
		{"#FFFFFF", ContrastBlack},
		{"#000000", ContrastWhite},
		{"#fff", ContrastBlack},
		{"#000", ContrastWhite},
		{"FFD700", ContrastBlack},
		{"#272727", ContrastWhite},
		{"#808080", ContrastWhite},
		{"#818181", ContrastBlack},
		{"", ContrastWhite},
		{"#12345", ContrastWhite},
		{"#GGGGGG", ContrastWhite},
	}
	for _, tc := range cases {
		if got := ContrastColor(tc.hex); got != tc.want {
			t.Errorf("ContrastColor(%q) = %q, want %q", tc.hex, got, tc.want)
		}
	}
}

func TestColorName(t *testing.T) {
	if got := ColorName("#FFFFFF"); got != "White" {
		t.Fatalf("ColorName(#FFFFFF) = %q, want White", got)
	}
	if got := ColorName("#001F3F"); got != "Navy" {
		t.Fatalf("ColorName is case-insensitive: got %q want Navy", got)
	}
	if got := ColorName("#123456"); got != "#123456" {
		t.Fatalf("unknown hex should pass through, got %q", got)
	}
}

func TestFontName(t *testing.T) {
	cases := map[string]string{
		"bebas_neue":     "Bebas Neue",
		"press_start_2p": "Press Start 2p",
		"impact":         "Impact",
		"émoji_sans":     "Émoji Sans",
		"ñandu__display": "Ñandu  Display",
		"":               "",
	}
	for id, want := range cases {
		got := FontName(id)
		if got != want {
			t.Errorf("FontName(%q) = %q, want %q", id, got, want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("FontName(%q) produced invalid UTF-8", id)
		}
	}
}

func TestTableResolveFallsBackToDefault(t *testing.T) {
	if got := Poses.Resolve("no_such_pose"); got != poseStanding {
		t.Fatalf("Poses default = %q, want %q", got, poseStanding)
	}
	if got := BagMaterials.Resolve("no_such_material"); got != BagMaterials.Default {
		t.Fatalf("BagMaterials default = %q, want %q", got, BagMaterials.Default)
	}
	for _, id := range MugStyles.IDs() {
		if MugStyles.Resolve(id) == "" {
			t.Fatalf("Resolve(%q) returned empty description", id)
		}
	}
}

func TestTextStyleInstruction(t *testing.T) {
	got := TextStyleInstruction("outline", ContrastBlack, "", "")
	if !strings.Contains(got, "exactly black") {
		t.Fatalf("outline should use contrast color, got %q", got)
	}

	got = TextStyleInstruction("gradient", "", "Red", "Blue")
	if !strings.Contains(got, "from Red at the top to Blue at the bottom") {
		t.Fatalf("gradient with both colors: got %q", got)
	}

	got = TextStyleInstruction("gradient", "", "Red", "")
	if strings.Contains(got, "Red") {
		t.Fatalf("gradient with one color should not name it, got %q", got)
	}

	if got := TextStyleInstruction("unknown", "", "", ""); !strings.Contains(got, "without any additional effects") {
		t.Fatalf("unknown style fallback: got %q", got)
	}
}
