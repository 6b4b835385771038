package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts and builds the faces used by Draw
func (e *EbitenRenderer) loadFonts() error {
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("loading sans font: %w", err)
	}

	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomonobold.TTF))
	if err != nil {
		return fmt.Errorf("loading mono font: %w", err)
	}

	e.sansFontSource = sans
	e.monoFontSource = mono
	e.uiFace = &text.GoTextFace{Source: sans, Size: uiFontSize}
	e.clueFace = &text.GoTextFace{Source: mono, Size: clueFontSize}
	return nil
}
