package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// faces are the text faces used by the board.
type faces struct {
	item   *text.GoTextFace
	hud    *text.GoTextFace
	title  *text.GoTextFace
	banner *text.GoTextFace
}

func loadFaces() (faces, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return faces{}, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return faces{}, fmt.Errorf("load bold font: %w", err)
	}
	return faces{
		item:   &text.GoTextFace{Source: regular, Size: 17},
		hud:    &text.GoTextFace{Source: regular, Size: 14},
		title:  &text.GoTextFace{Source: bold, Size: 26},
		banner: &text.GoTextFace{Source: bold, Size: 28},
	}, nil
}

// wrapText breaks s into at most maxLines lines no wider than maxW,
// ellipsizing the last line if the text does not fit.
func wrapText(s string, face text.Face, maxW float64, maxLines int) []string {
	words := bytes.Fields([]byte(s))
	var lines []string
	cur := ""
	for _, w := range words {
		word := string(w)
		try := word
		if cur != "" {
			try = cur + " " + word
		}
		if cur == "" || text.Advance(try, face) <= maxW {
			cur = try
			continue
		}
		lines = append(lines, cur)
		cur = word
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	if len(lines) <= maxLines {
		return lines
	}
	lines = lines[:maxLines]
	last := []rune(lines[maxLines-1])
	for len(last) > 0 && text.Advance(string(last)+"…", face) > maxW {
		last = last[:len(last)-1]
	}
	lines[maxLines-1] = string(last) + "…"
	return lines
}
