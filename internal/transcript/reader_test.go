package transcript

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"lf", "a\nb\nc", []string{"a", "b", "c"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"bare cr", "a\rb", []string{"a", "b"}},
		{"mixed", "a\r\n\nb\rc\n", []string{"a", "", "b", "c"}},
		{"blank lines kept", "\n\n", []string{"", ""}},
		{"unicode separators", "a\u2028b\u2029c\u0085d", []string{"a", "b", "c", "d"}},
		{"form feed", "a\fb", []string{"a", "b"}},
		{"no terminator", "single", []string{"single"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SplitLines(tc.input))
		})
	}

	assert.Empty(t, SplitLines(""))
}

func TestDecode_DropsInvalidBytes(t *testing.T) {
	raw := []byte("[03/08/24] Box \xffSilvassa: E2E\xc3-X5 👍")
	assert.Equal(t, "[03/08/24] Box Silvassa: E2E-X5 👍", Decode(raw))
}

func TestRead(t *testing.T) {
	lines, err := Read(strings.NewReader("[03/08/24, 10:15] Box Silvassa: E2E-X5\r\n[03/08/24, 10:16] Box Silvassa: done\r\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"[03/08/24, 10:15] Box Silvassa: E2E-X5",
		"[03/08/24, 10:16] Box Silvassa: done",
	}, lines)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestRead_Error(t *testing.T) {
	_, err := Read(failingReader{})
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrorTypeIO))
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0o644))

	lines, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"line one", "line two"}, lines)
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadFile(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrorTypeIO))

	pdf := filepath.Join(dir, "chat.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("x"), 0o644))
	_, err = ReadFile(pdf)
	require.Error(t, err)
	assert.True(t, domain.IsType(err, domain.ErrorTypeValidation))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("WhatsApp Chat.txt"))
	assert.NoError(t, ValidateName("EXPORT.TXT"))
	assert.Error(t, ValidateName("chat.zip"))
	assert.Error(t, ValidateName("chat"))
}
