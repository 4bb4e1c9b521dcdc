package extract

import (
	"fmt"
	"strconv"
)

// ExtractDate returns the bracketed day/month/year at the head of a chat line
// as YYYY-MM-DD. Two-digit years are taken as 20xx. The calendar is not
// checked, so a month of 13 passes through.
func ExtractDate(line string) (string, bool) {
	m := dateRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	// The groups are 1-2 ASCII digits, so Atoi cannot fail.
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year := m[3]
	if len(year) == 2 {
		year = "20" + year
	}

	return fmt.Sprintf("%s-%02d-%02d", year, month, day), true
}

// ExtractQuantity returns the first quantity token in text ("qty 10",
// "15 pcs", "4 nos", ...) exactly as written.
func ExtractQuantity(text string) (string, bool) {
	loc := quantityRe.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	return text[loc[0]:loc[1]], true
}
