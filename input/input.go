// Package input reads puzzle input files.
//
// Inputs live in a single directory and are named after the puzzle
// they belong to: <dir>/<id>.txt, e.g. input/2019_02.txt.
package input

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultDir is the directory inputs are read from unless configured otherwise.
const DefaultDir = "input"

// Loader resolves puzzle ids to input files.
type Loader struct {
	Dir string
}

// NewLoader creates a loader for the given directory.
// An empty dir selects DefaultDir.
func NewLoader(dir string) *Loader {
	if dir == "" {
		dir = DefaultDir
	}
	return &Loader{Dir: dir}
}

// Path returns the file name for the given puzzle id.
func (l *Loader) Path(id string) string {
	return filepath.Join(l.Dir, id+".txt")
}

// ReadAll returns the whole input file for the given id.
func (l *Loader) ReadAll(id string) (string, error) {
	data, err := os.ReadFile(l.Path(id))
	if err != nil {
		return "", errors.Wrapf(err, "input %s", id)
	}
	return string(data), nil
}

// ReadLines returns the lines of the input file for the given id,
// without line terminators.
func (l *Loader) ReadLines(id string) ([]string, error) {
	fd, err := os.Open(l.Path(id))
	if err != nil {
		return nil, errors.Wrapf(err, "input %s", id)
	}
	defer fd.Close()

	var lines []string
	scanner := bufio.NewScanner(fd)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "input %s", id)
	}

	return lines, nil
}
