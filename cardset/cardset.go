// Package cardset bundles the card lines of whole sets.
package cardset

import (
	"bufio"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"

	mtg "github.com/m0t0k1ch1/mtg-multitool-go"
	"github.com/m0t0k1ch1/mtg-multitool-go/collection"
)

const fileExt = ".txt"

var (
	ErrUnknownSet  = errors.New("unknown set")
	ErrUnknownCard = errors.New("unknown card")
)

//go:embed *.txt
var embedded embed.FS

// Names returns the names of the bundled sets, such as "LTR".
func Names() []string {
	files, err := fs.Glob(embedded, "*"+fileExt)
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(files))
	for _, file := range files {
		names = append(names, strings.ToUpper(strings.TrimSuffix(file, fileExt)))
	}
	sort.Strings(names)

	return names
}

// Lines returns the card lines of a set, in order. Blank lines are
// skipped. Set names are case-insensitive.
func Lines(set string) ([]string, error) {
	f, err := embedded.Open(path.Clean(strings.ToLower(strings.TrimSpace(set))) + fileExt)
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownSet, "%q", set)
	}
	defer f.Close()

	lines := []string{}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan set %q", set)
	}

	return lines, nil
}

// Collection returns a collection of every card of a set, each owned 0
// times.
func Collection(set string, opts ...collection.Option) (*collection.Collection, error) {
	lines, err := Lines(set)
	if err != nil {
		return nil, err
	}

	c, err := collection.New(lines, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build collection of set %q", set)
	}

	return c, nil
}

// ConstName derives a constant-like name from the name field of a card
// line: "Faramir, Field Commander" gives "FARAMIR__FIELD_COMMANDER".
func ConstName(line string) (string, error) {
	fields := strings.SplitN(line, mtg.FieldSeparator, 3)
	if len(fields) < 2 || strings.TrimSpace(fields[1]) == "" {
		return "", mtg.ErrMissingName
	}

	name := strings.ToUpper(strings.TrimSpace(fields[1]))
	name = strings.Map(func(r rune) rune {
		switch r {
		case ' ', ',':
			return '_'
		case '"':
			return -1
		default:
			return r
		}
	}, name)

	return name, nil
}

// Line returns the line of a set whose ConstName is constName.
func Line(set, constName string) (string, error) {
	lines, err := Lines(set)
	if err != nil {
		return "", err
	}

	for _, line := range lines {
		name, err := ConstName(line)
		if err != nil {
			continue
		}
		if name == constName {
			return line, nil
		}
	}

	return "", errors.Wrapf(ErrUnknownCard, "%q in set %q", constName, set)
}
