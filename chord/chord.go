package chord

import (
	"fmt"
	"strings"

	"github.com/jsphweid/mcpreduce/model"
)

// Encoder resolves a chord symbol into its root pitch class, a root
// relative pitch class bitmap and the bass interval above the root.
type Encoder interface {
	Encode(symbol string) (root int, chroma model.Chroma, bass int, err error)
}

// EncoderFunc adapts a plain function to Encoder.
type EncoderFunc func(symbol string) (int, model.Chroma, int, error)

func (f EncoderFunc) Encode(symbol string) (int, model.Chroma, int, error) {
	return f(symbol)
}

// Rotate shifts chroma right by shift positions, so that a root relative
// bitmap becomes an absolute one. Negative shifts rotate left.
func Rotate(chroma model.Chroma, shift int) model.Chroma {
	var res model.Chroma
	shift = ((shift % 12) + 12) % 12
	for i, v := range chroma {
		res[(i+shift)%12] = v
	}
	return res
}

// CreateChordKey names a chroma by its active pitch classes, e.g. "0-4-7".
func CreateChordKey(chroma model.Chroma) string {
	var parts []string
	for i, v := range chroma {
		if v != 0 {
			parts = append(parts, fmt.Sprintf("%v", i))
		}
	}
	return strings.Join(parts, "-")
}

// StripControl removes control characters that leak into symbols from the
// annotation tooling.
func StripControl(symbol string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, symbol)
}
