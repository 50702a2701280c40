package annotation

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// eachLine calls fn with the whitespace separated fields of every non blank
// line. Line numbers start at 1.
func eachLine(r io.Reader, fn func(num int, fields []string) error) error {
	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if err := fn(num, fields); err != nil {
			return err
		}
	}
	return errors.Wrap(scanner.Err(), "reading annotation")
}
