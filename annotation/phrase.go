package annotation

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/jsphweid/mcpreduce/apperr"
	"github.com/jsphweid/mcpreduce/model"
	"github.com/jsphweid/mcpreduce/util"
	"github.com/pkg/errors"
)

// ReadPhraseLabel parses the first line of a phrase label file.
func ReadPhraseLabel(r io.Reader, source string) ([]model.Phrase, error) {
	reader := bufio.NewReader(r)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "reading %s", source)
	}
	phrases, err := ParsePhraseLabel(strings.TrimSpace(line))
	return phrases, errors.Wrap(err, source)
}

// ParsePhraseLabel splits a string like "i4A8B8o2" into phrases. A new
// token begins at every letter. Whitespace around a length is ignored.
func ParsePhraseLabel(label string) ([]model.Phrase, error) {
	var names []string
	for _, r := range label {
		if unicode.IsSpace(r) && len(names) == 0 {
			continue
		}
		if unicode.IsLetter(r) {
			names = append(names, "")
		} else if len(names) == 0 {
			return nil, apperr.Parse("phrase label", 0, "%q does not start with a phrase type", label)
		}
		names[len(names)-1] += string(r)
	}

	phrases := make([]model.Phrase, len(names))
	lengths := make([]int, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		runes := []rune(name)
		typ, size := string(runes[0]), strings.TrimSpace(string(runes[1:]))
		if size == "" {
			return nil, apperr.Parse("phrase label", 0, "phrase %q has no length", name)
		}
		n, err := strconv.Atoi(size)
		if err != nil || n < 0 {
			return nil, apperr.Parse("phrase label", 0, "phrase %q has a bad length", name)
		}
		phrases[i] = model.Phrase{Name: name, Type: typ, Length: n}
		lengths[i] = n
	}

	for i, start := range util.ExclusiveCumSum(lengths) {
		phrases[i].Start = start
	}
	return phrases, nil
}
