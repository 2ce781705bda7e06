package export

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// shapingFont is read-only and safe for concurrent use; faces built from it
// are not.
var shapingFont = sync.OnceValues(func() (*font.Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("export: parse shaping font: %w", err)
	}
	return face.Font, nil
})

// MeasureCaption returns the shaped advance width of text at size pixels,
// including kerning.
func MeasureCaption(text string, size float64) (float64, error) {
	if text == "" || size <= 0 {
		return 0, nil
	}
	f, err := shapingFont()
	if err != nil {
		return 0, err
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f),
		Size:      fixed.Int26_6(size * 64),
		Script:    scriptOf(runes),
		Language:  language.NewLanguage("en"),
	}
	var shaper shaping.HarfbuzzShaper
	out := shaper.Shape(input)

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	return float64(adv) / 64, nil
}

// scriptOf returns the script of the first non-space rune, Latin if none.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
