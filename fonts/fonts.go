package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Regular FontName = "regular"
	Bold    FontName = "bold"
	Title   FontName = "title"
	Prompt  FontName = "prompt"
	Small   FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face the game draws with, built from the Go fonts.
func LoadDefaults() {
	LoadFontWithSize(Regular, goregular.TTF, 18)
	LoadFontWithSize(Bold, gobold.TTF, 24)
	LoadFontWithSize(Title, gobold.TTF, 44)
	LoadFontWithSize(Prompt, gobold.TTF, 72)
	LoadFontWithSize(Small, goregular.TTF, 14)
}

func LoadFont(name FontName, ttf []byte) {
	LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

// Width measures s in pixels when drawn with face f.
func Width(f FontName, s string) int {
	return font.MeasureString(getFont(f), s).Round()
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
