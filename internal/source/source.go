// Package source reads script files into Go strings.
package source

import (
	"fmt"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts raw file content to a string. A UTF-16 byte order mark
// selects UTF-16 decoding; a UTF-8 mark is stripped; anything else is taken
// as UTF-8.
func Decode(content []byte) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, content)
	if err != nil {
		return "", fmt.Errorf("failed to decode source: %w", err)
	}
	return string(out), nil
}

// Read loads and decodes the file at path.
func Read(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	src, err := Decode(content)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}
