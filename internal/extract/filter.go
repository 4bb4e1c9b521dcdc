package extract

import (
	"strings"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
)

// rejection records why a line was skipped.
type rejection int

const (
	accepted rejection = iota
	rejectBlank
	rejectNoMarker
	rejectDiscard
	rejectUndated
	rejectSparse
)

// IsEligible reports whether a line is worth parsing at all: it must be
// non-blank, carry the source marker, contain no discard phrase and start
// with a bracketed date.
func IsEligible(line string) bool {
	return screen(line) == accepted
}

func screen(line string) rejection {
	if strings.TrimSpace(line) == "" {
		return rejectBlank
	}
	if !strings.Contains(line, domain.SourceMarker) {
		return rejectNoMarker
	}
	if hasDiscardPhrase(line) {
		return rejectDiscard
	}
	if !datePrefixRe.MatchString(line) {
		return rejectUndated
	}
	return accepted
}

func hasDiscardPhrase(line string) bool {
	lower := strings.ToLower(line)
	for _, p := range discardPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
