package fileinput

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
)

// ErrNoProgram is returned by Load when an input contains no values.
var ErrNoProgram = errors.New("no program values")

// Location names a line in an input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// ParseError reports a token that could not be parsed as an integer.
type ParseError struct {
	Location
	Token string
	Err   error
}

func (pe ParseError) Error() string {
	return fmt.Sprintf("%v: invalid value %q: %v", pe.Location, pe.Token, pe.Err)
}

func (pe ParseError) Unwrap() error { return pe.Err }

// Open loads program values from the named file.
func Open(name string) ([]int, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load reads all of r and parses it as comma separated integers; see
// ParseInts. If r implements Name() string, as an *os.File does, that name is
// used in any ParseError.
func Load(r io.Reader) ([]int, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	name := nameOf(r)
	values, err := ParseInts(Location{Name: name, Line: 1}, string(b))
	if err == nil && len(values) == 0 {
		err = fmt.Errorf("%v: %w", name, ErrNoProgram)
	}
	return values, err
}

// ParseInts parses comma separated integers from text, after trimming any
// surrounding whitespace. Line breaks separate values just like commas do, and
// a comma may trail at the end of a line; whitespace around each value is
// ignored, as are blank lines.
// The loc argument names the first line of text, and is advanced for every
// line break when reporting a ParseError.
func ParseInts(loc Location, text string) ([]int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	var values []int
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			loc.Line++
			continue
		}
		tokens := strings.Split(line, ",")
		for i, token := range tokens {
			token = strings.TrimSpace(token)
			if token == "" && i == len(tokens)-1 && i > 0 {
				break // trailing comma
			}
			n, err := strconv.ParseInt(token, 10, strconv.IntSize)
			if err != nil {
				return nil, ParseError{loc, token, err}
			}
			values = append(values, int(n))
		}
		loc.Line++
	}
	return values, nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
