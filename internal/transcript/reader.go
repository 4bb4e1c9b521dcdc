// Package transcript reads exported chat transcripts into lines.
package transcript

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
)

// Extension is the only file type accepted for transcripts.
const Extension = ".txt"

// Read consumes r fully and returns its lines. Invalid UTF-8 is dropped.
func Read(r io.Reader) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, domain.IOError("read transcript", err)
	}
	return SplitLines(Decode(raw)), nil
}

// ReadFile reads a .txt transcript from disk.
func ReadFile(path string) ([]string, error) {
	if err := ValidateName(path); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, domain.IOError("open transcript", err)
	}
	defer f.Close()

	return Read(f)
}

// ValidateName rejects files that are not plain-text exports.
func ValidateName(name string) error {
	if !strings.EqualFold(filepath.Ext(name), Extension) {
		return domain.ValidationError("transcript must be a "+Extension+" file: "+filepath.Base(name), nil)
	}
	return nil
}

// Decode converts raw bytes to a string, discarding invalid UTF-8 sequences.
func Decode(raw []byte) string {
	return string(bytes.ToValidUTF8(raw, nil))
}

// SplitLines splits text on every line boundary a chat export may contain:
// \n, \r\n, \r, \v, \f, \x1c-\x1e, NEL, LINE SEPARATOR and PARAGRAPH SEPARATOR.
// A trailing terminator does not produce an empty final line.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i, r := range text {
		if !isLineBreak(r) {
			continue
		}
		if i < start {
			// second half of a \r\n pair
			continue
		}
		lines = append(lines, text[start:i])
		start = i + len(string(r))
		if r == '\r' && start < len(text) && text[start] == '\n' {
			start++
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
