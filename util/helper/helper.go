// functions with side effect
package helper

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/go-sprout/sprout"
	"github.com/go-sprout/sprout/group/all"
	"github.com/gobwas/glob"
	"github.com/natefinch/atomic"

	"github.com/ttombbab/vibeprompt/util"
)

// Recognize "*.txt" style glob, return parsed filenames.
// Args that are not glob patterns (or match nothing) are kept as is.
func ParseFilenameArgs(args ...string) []string {
	names := []string{}
	seen := map[string]struct{}{}
	for _, arg := range args {
		filenames := ParseGlobFilenames(arg)
		if len(filenames) == 0 {
			filenames = []string{arg}
		}
		for _, name := range filenames {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// ParseGlobFilenames expands a shell-like glob pattern (e.g. "*.txt") into
// matching filenames on disk.
//
// Notes / behavior:
//   - Returns matches sorted lexicographically.
//   - If pattern has no glob meta chars, there are no matches, or pattern is invalid,
//     returns nil.
//   - For relative patterns, results are relative to the current working dir.
//   - This does NOT implement full bash features (brace expansion, extglob, etc.).
func ParseGlobFilenames(pattern string) []string {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" || !strings.ContainsAny(pattern, globMetas) {
		return nil
	}

	// Expand "~/" (common shell convenience).
	if strings.HasPrefix(pattern, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			pattern = filepath.Join(home, pattern[2:])
		}
	}

	// Normalize to slash for matching; use '/' as separator for gobwas/glob.
	patSlash := filepath.ToSlash(filepath.Clean(pattern))

	g, err := glob.Compile(patSlash, '/')
	if err != nil {
		return nil
	}

	walkRoot := computeWalkRoot(pattern)
	isAbs := filepath.IsAbs(pattern)

	var matches []string
	_ = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Ignore unreadable dirs/files.
			return nil
		}
		var target string
		if isAbs {
			abs, err := filepath.Abs(path)
			if err != nil {
				return nil
			}
			target = filepath.ToSlash(abs)
		} else {
			target = filepath.ToSlash(filepath.Clean(path))
		}
		if g.Match(target) {
			matches = append(matches, filepath.FromSlash(target))
		}
		return nil
	})

	sort.Strings(matches)
	return matches
}

// Metachars: *, ?, [, ] (we treat '{' too, though we don't implement brace expansion).
const globMetas = "*?[{"

func computeWalkRoot(pattern string) string {
	// Find the longest prefix before any glob metachar.
	prefix := pattern
	if i := strings.IndexAny(pattern, globMetas); i >= 0 {
		prefix = pattern[:i]
	}

	// Root should be a directory: chop to last separator in the non-meta prefix.
	lastSep := strings.LastIndexAny(prefix, `/\`)
	if lastSep < 0 {
		return "."
	}
	prefix = prefix[:lastSep+1]
	if prefix == "" {
		return "."
	}
	return filepath.Clean(prefix)
}

// WriteOutput writes contents to output. "-" (or empty) means w (usually stdout);
// otherwise the contents is atomically written to the output file,
// which must not exist unless force is true.
func WriteOutput(w io.Writer, output string, contents string, force bool) error {
	if output == "" || output == "-" {
		_, err := io.WriteString(w, contents)
		return err
	}
	if !force {
		if exists, err := util.FileExists(output); err != nil || exists {
			return fmt.Errorf("output file %q exists or can't access, err=%v", output, err)
		}
	}
	return atomic.WriteFile(output, strings.NewReader(contents))
}

// sprout provided template funcs
var templateFuncs map[string]any

func init() {
	handler := sprout.New()
	handler.AddGroups(all.RegistryGroup())
	templateFuncs = handler.Build()
}

// Get a Go text template instance from tpl string.
// If tpl starts with "@" char, treat it (the rest part after @) as a file name
// and read template contents from it instead.
func GetTemplate(tpl string, strict bool) (*template.Template, error) {
	if strings.HasPrefix(tpl, "@") {
		contents, err := os.ReadFile(tpl[1:])
		if err != nil {
			return nil, err
		}
		tpl = string(contents)
	}
	templateInstance := template.New("template").Funcs(templateFuncs)
	if strict {
		templateInstance = templateInstance.Option("missingkey=error")
	}
	return templateInstance.Parse(tpl)
}
