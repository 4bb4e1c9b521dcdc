package extract

import "strings"

// CleanProduct reduces a message body to a candidate product description.
// Steps run in a fixed order: quantity tokens, request framing, disallowed
// characters, then the source marker are removed, and the result is trimmed.
func CleanProduct(text string) string {
	text = removeQuantity(text)
	text = removeContext(text)
	text = specialCharRe.ReplaceAllString(text, "")
	text = markerRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func removeQuantity(text string) string {
	return strings.TrimSpace(quantityRe.ReplaceAllString(text, ""))
}

func removeContext(text string) string {
	for _, re := range contextRes {
		text = re.ReplaceAllString(text, "")
	}
	return strings.TrimSpace(text)
}
