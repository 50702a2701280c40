package chord

import (
	"strconv"
	"strings"

	"github.com/jsphweid/mcpreduce/model"
	"github.com/pkg/errors"
)

var ErrUnknownSymbol = errors.New("unknown chord symbol")

var pitchClasses = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// semitones above the root for each scale degree
var degrees = map[int]int{
	1: 0, 2: 2, 3: 4, 4: 5, 5: 7, 6: 9, 7: 11,
	8: 12, 9: 14, 10: 16, 11: 17, 12: 19, 13: 21,
}

func bitmap(intervals ...int) model.Chroma {
	var c model.Chroma
	for _, i := range intervals {
		c[i%12] = 1
	}
	return c
}

// Extended qualities collapse onto their seventh chord.
var qualities = map[string]model.Chroma{
	"":        {},
	"maj":     bitmap(0, 4, 7),
	"min":     bitmap(0, 3, 7),
	"aug":     bitmap(0, 4, 8),
	"dim":     bitmap(0, 3, 6),
	"sus2":    bitmap(0, 2, 7),
	"sus4":    bitmap(0, 5, 7),
	"7":       bitmap(0, 4, 7, 10),
	"maj7":    bitmap(0, 4, 7, 11),
	"min7":    bitmap(0, 3, 7, 10),
	"minmaj7": bitmap(0, 3, 7, 11),
	"maj6":    bitmap(0, 4, 7, 9),
	"min6":    bitmap(0, 3, 7, 9),
	"dim7":    bitmap(0, 3, 6, 9),
	"hdim7":   bitmap(0, 3, 6, 10),
	"9":       bitmap(0, 4, 7, 10),
	"maj9":    bitmap(0, 4, 7, 11),
	"min9":    bitmap(0, 3, 7, 10),
	"11":      bitmap(0, 4, 7, 10),
	"min11":   bitmap(0, 3, 7, 10),
	"13":      bitmap(0, 4, 7, 10),
	"maj13":   bitmap(0, 4, 7, 11),
	"min13":   bitmap(0, 3, 7, 10),
	"b9":      bitmap(0, 4, 7, 10),
	"#9":      bitmap(0, 4, 7, 10),
	"#11":     bitmap(0, 4, 7, 10),
	"b13":     bitmap(0, 4, 7, 10),
	"1":       bitmap(0),
	"5":       bitmap(0, 7),
}

// HarteEncoder understands the Harte chord syntax used by the annotations:
// root[:quality][(extensions)][/bass], plus N and X for no chord.
type HarteEncoder struct{}

func (HarteEncoder) Encode(symbol string) (int, model.Chroma, int, error) {
	var chroma model.Chroma
	symbol = strings.TrimSpace(symbol)
	if symbol == "N" || symbol == "X" {
		return -1, chroma, -1, nil
	}

	rest, bassDegree := symbol, ""
	if i := strings.LastIndexByte(symbol, '/'); i >= 0 {
		rest, bassDegree = symbol[:i], symbol[i+1:]
	}

	rootName, quality := rest, "maj"
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		rootName, quality = rest[:i], rest[i+1:]
	}

	var extensions string
	if i := strings.IndexByte(quality, '('); i >= 0 {
		if !strings.HasSuffix(quality, ")") {
			return 0, chroma, 0, errors.Wrapf(ErrUnknownSymbol, "%q: unbalanced extensions", symbol)
		}
		quality, extensions = quality[:i], quality[i+1:len(quality)-1]
	} else if i := strings.IndexByte(rootName, '('); i >= 0 {
		// "C(b7)" has no explicit quality, extensions apply to nothing
		if !strings.HasSuffix(rootName, ")") {
			return 0, chroma, 0, errors.Wrapf(ErrUnknownSymbol, "%q: unbalanced extensions", symbol)
		}
		rootName, extensions, quality = rootName[:i], rootName[i+1:len(rootName)-1], ""
	}

	root, err := parsePitchClass(rootName)
	if err != nil {
		return 0, chroma, 0, errors.Wrapf(err, "%q", symbol)
	}

	chroma, ok := qualities[quality]
	if !ok {
		return 0, chroma, 0, errors.Wrapf(ErrUnknownSymbol, "%q: unknown quality %q", symbol, quality)
	}

	if extensions != "" {
		for _, ext := range strings.Split(extensions, ",") {
			ext = strings.TrimSpace(ext)
			omit := strings.HasPrefix(ext, "*")
			interval, err := parseDegree(strings.TrimPrefix(ext, "*"))
			if err != nil {
				return 0, chroma, 0, errors.Wrapf(err, "%q", symbol)
			}
			if omit {
				chroma[interval] = 0
			} else {
				chroma[interval] = 1
			}
		}
	}

	bass := 0
	if bassDegree != "" {
		bass, err = parseDegree(bassDegree)
		if err != nil {
			return 0, chroma, 0, errors.Wrapf(err, "%q", symbol)
		}
		chroma[bass] = 1
	}

	return root, chroma, bass, nil
}

func parsePitchClass(name string) (int, error) {
	if name == "" {
		return 0, errors.Wrap(ErrUnknownSymbol, "empty root")
	}
	pc, ok := pitchClasses[name[0]]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownSymbol, "bad root %q", name)
	}
	for _, r := range name[1:] {
		switch r {
		case '#':
			pc++
		case 'b':
			pc--
		default:
			return 0, errors.Wrapf(ErrUnknownSymbol, "bad root %q", name)
		}
	}
	return ((pc % 12) + 12) % 12, nil
}

// parseDegree turns a scale degree like "b7" or "#11" into semitones above
// the root, reduced to one octave.
func parseDegree(degree string) (int, error) {
	shift := 0
	i := 0
	for ; i < len(degree); i++ {
		if degree[i] == '#' {
			shift++
		} else if degree[i] == 'b' {
			shift--
		} else {
			break
		}
	}
	n, err := strconv.Atoi(degree[i:])
	if err != nil {
		return 0, errors.Wrapf(ErrUnknownSymbol, "bad degree %q", degree)
	}
	semis, ok := degrees[n]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownSymbol, "bad degree %q", degree)
	}
	return (((semis + shift) % 12) + 12) % 12, nil
}
