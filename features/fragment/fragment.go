// Package fragment picks random description lines from plain text files.
//
// A description file is a newline-delimited list of candidate descriptions;
// every non-empty line is one candidate. Files may be UTF-8 (with or without BOM)
// or any charset chardet can recognize.
package fragment

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ttombbab/vibeprompt/constants"
	"github.com/ttombbab/vibeprompt/util/stringutil"
)

// Source samples fragments from description files.
// It is not safe for concurrent use, because *rand.Rand is not.
type Source struct {
	rnd    *rand.Rand
	logger log.FieldLogger
}

// New creates a Source. A nil rnd uses a time seeded generator,
// a nil logger uses the logrus standard logger.
func New(rnd *rand.Rand, logger log.FieldLogger) *Source {
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Source{rnd: rnd, logger: logger}
}

// NewSeeded creates a Source whose picks are reproducible for the same seed.
func NewSeeded(seed uint64, logger log.FieldLogger) *Source {
	return New(rand.New(rand.NewPCG(seed, seed)), logger)
}

// Lines loads the description set of file: all trimmed non-empty lines, in file order.
func (s *Source) Lines(file string) ([]string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	data, charset, err := stringutil.DecodeAuto(data)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", file, err)
	}
	if charset != "UTF-8" {
		s.logger.Debugf("%q: decoded from charset %s", file, charset)
	}
	return stringutil.NonEmptyLines(stringutil.StringFromBytes(data)), nil
}

// Sample returns one uniformly random description from file.
// A missing, unreadable or empty file yields ok == false; the reason is logged, never returned.
func (s *Source) Sample(file string) (description string, ok bool) {
	lines, err := s.Lines(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warnf("Error: File not found: %s", file)
		} else {
			s.logger.Warnf("Error reading file %s: %v", file, err)
		}
		return "", false
	}
	if description, ok = s.Pick(lines); !ok {
		s.logger.Warnf("No description in file %s", file)
	}
	return description, ok
}

// Pick returns a uniformly random element of candidates, or ok == false if there is none.
func (s *Source) Pick(candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[s.rnd.IntN(len(candidates))], true
}

// VibeFile returns the description file of vibe in dir, i.e. "{dir}/{vibe}.txt".
func VibeFile(dir string, vibe string) string {
	return filepath.Join(dir, vibe+constants.DESCRIPTION_EXT)
}

// SeasonFile returns the description file of season in dir, i.e. "{dir}/{season}.txt".
func SeasonFile(dir string, season string) string {
	return filepath.Join(dir, season+constants.DESCRIPTION_EXT)
}
