package fonts

import (
	"fmt"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Body     FontName = "body"
	BodyBold FontName = "body-bold"
	Small    FontName = "small"
	Eyebrow  FontName = "eyebrow"
	Heading  FontName = "heading"
	Title    FontName = "title"
	Display  FontName = "display"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers every face the site uses from the Go fonts.
func LoadDefaults() {
	LoadFontWithSize(Body, goregular.TTF, 17)
	LoadFontWithSize(BodyBold, gobold.TTF, 17)
	LoadFontWithSize(Small, goregular.TTF, 13)
	LoadFontWithSize(Eyebrow, gobold.TTF, 14)
	LoadFontWithSize(Heading, gobold.TTF, 22)
	LoadFontWithSize(Title, gobold.TTF, 36)
	LoadFontWithSize(Display, gobold.TTF, 60)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}

// Measure returns the advance width of s in pixels.
func Measure(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// LineHeight returns the distance between baselines for face.
func LineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}

// Ascent returns the distance from the top of a line to its baseline.
func Ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

// Wrap breaks s into lines no wider than maxWidth. Words longer than a line
// are kept whole on their own line.
func Wrap(face font.Face, s string, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if Measure(face, candidate) <= maxWidth {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}
