package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"strings"
	"text/template"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Check whether a file (or dir) with name exists in file system.
// If it encounter an file system access error, return false,err
func FileExists(name string) (bool, error) {
	_, err := os.Stat(name)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

// Parse http content-type header and return mediatype, e.g. "text/html".
// contentType: the http Content-Type header, e.g. "text/html; charset=utf-8"
func MediaType(contentType string) string {
	if contentType != "" {
		if mediatype, _, err := mime.ParseMediaType(contentType); err == nil {
			return mediatype
		}
	}
	return ""
}

// Normalize contentType to one of "json", "yaml", "toml".
// contentType could be: a mediatype (e.g. "application/json"), or a file type or extension (e.g. "json" or ".json").
// Return empty string if it's not a supported type.
func Format(contentType string) string {
	if strings.ContainsRune(contentType, '/') {
		contentType = MediaType(contentType)
	}
	switch contentType {
	case "application/json", "text/json", "json", ".json":
		return "json"
	case "application/yaml", "text/yaml", "yaml", ".yaml", "yml", ".yml":
		return "yaml"
	case "application/toml", "text/toml", "toml", ".toml":
		return "toml"
	}
	return ""
}

// Unmarshal a json / yaml / toml input into target according to contentType.
// If contentType is empty or is not a supported type, return an error.
// Empty input leaves target untouched.
func Unmarshal(contentType string, input io.Reader, target any) error {
	format := Format(contentType)
	if format == "" {
		return fmt.Errorf("Unmarshal: unsupported contentType %s", contentType)
	}
	body, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	switch format {
	case "json":
		err = json.Unmarshal(body, target)
	case "yaml":
		err = yaml.Unmarshal(body, target)
	case "toml":
		err = toml.Unmarshal(body, target)
	}
	return err
}

// Marshal a object to json / yaml / toml string according to contentType.
func Marshal(contentType string, input any) (data []byte, err error) {
	switch Format(contentType) {
	case "json":
		return json.MarshalIndent(input, "", "  ")
	case "yaml":
		return yaml.Marshal(input)
	case "toml":
		return toml.Marshal(input)
	default:
		return nil, fmt.Errorf("Marshal: unsupported format %s", contentType)
	}
}

// Execute Go text template and return rendered string.
// The result string is trim spaced.
func ExecTemplate(tpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template execution error: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// Return filtered ss. The ret is nil if and only if ss is nil.
func FilterSlice[T any](ss []T, test func(T) bool) (ret []T) {
	if ss != nil {
		ret = []T{}
	}
	for _, s := range ss {
		if test(s) {
			ret = append(ret, s)
		}
	}
	return
}

// Return v if it's not zero value; otherwise the first non-zero fallback.
func FirstNonZero[T comparable](v T, fallbacks ...T) T {
	var zero T
	if v != zero {
		return v
	}
	for _, f := range fallbacks {
		if f != zero {
			return f
		}
	}
	return zero
}
