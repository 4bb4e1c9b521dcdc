package extract

import (
	"regexp"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
)

// discardPhrases mark a line as chatter rather than an order. Matched as
// substrings of the lowercased line.
var discardPhrases = []string{
	"extra dalwa", "check kar lena", "confirm", "image omitted", "sir", "done", "rate dena",
	"update", "just sent", "is this okay", "check this", "same", "ok", "👍", "ho sakta hai",
	"dekh lena", "will share", "photo", "image", "not dispatch", "this sensor", "sensor update",
	"dispatch", "ready", "send photo", "send image", "this one", "share", "kindly",
}

// categoryRule pairs a sensor type with the keywords that select it.
type categoryRule struct {
	sensor   domain.SensorType
	keywords []string
}

// categoryRules is scanned in order and the first hit wins, so the order
// here decides ties between categories.
var categoryRules = []categoryRule{
	{domain.SensorReedSwitch, []string{"reed", "magnetic"}},
	{domain.SensorProximity, []string{"e2e", "e2b", "proximity", "tl-w", "tl-w5", "tlq", "tl-n"}},
	{domain.SensorPhotoelectric, []string{"e3fa", "e3jk", "e3x", "e3c"}},
	{domain.SensorCapacitive, []string{"ec2", "ec5", "capacitive"}},
	{domain.SensorInductive, []string{"inductive"}},
	{domain.SensorPressure, []string{"pressure", "dz"}},
	{domain.SensorTemperature, []string{"temperature", "pt100"}},
}

// quantityPattern is shared by extraction and removal.
const quantityPattern = `(?i)(qty\s*\d+|\d+\s*pcs\b|\d+\s*nos\b|\d+\s*each\b|\d+\s*no\b)`

var (
	quantityRe = regexp.MustCompile(quantityPattern)

	// datePrefixRe gates eligibility; dateRe captures the parts.
	datePrefixRe = regexp.MustCompile(`\[\d{1,2}[/-]\d{1,2}[/-]\d{2,4}`)
	dateRe       = regexp.MustCompile(`\[(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})`)

	// Request framing removed from the message body, applied in this order.
	contextRes = compileAll(
		`(?i)\bwe\s*require\b`,
		`(?i)\bwe\s*need\b`,
		`(?i)\bneed\b`,
		`(?i)\brequirement\s*of\b`,
		`(?i)\bwe\s*are\s*looking\s*for\b`,
		`(?i)\blooking\s*for\b`,
		`(?i)\bsend\s*me\b`,
		`(?i)\bcan\s*you\s*send\b`,
		`(?i)\bcan\s*you\s*share\b`,
		`(?i)\bgive\s*me\b`,
		`(?i)\bi\s*want\b`,
		`(?i)\bi\s*need\b`,
		`(?i)\bpls\s*share\b`,
	)

	// Anything that is not a letter, digit, underscore, whitespace or one of - / . ,
	// Letters and digits are Unicode here, but \b in the other patterns is
	// ASCII-only, so a word boundary next to a non-ASCII letter is not seen.
	specialCharRe = regexp.MustCompile(`[^\p{L}\p{N}_\s\p{Zs}\-/.,]`)

	markerRe = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(domain.SourceMarker) + `\b`)
)

func compileAll(patterns ...string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return res
}
