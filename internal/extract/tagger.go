package extract

import (
	"strings"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
)

// Tag maps a product description to a sensor type by keyword. Categories
// are tried in declaration order; Other is returned when nothing matches.
func Tag(productName string) domain.SensorType {
	lower := strings.ToLower(productName)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.sensor
			}
		}
	}
	return domain.SensorOther
}
