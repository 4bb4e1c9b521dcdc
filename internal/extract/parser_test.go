package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/humeraxkhan/SENSOR-NAME-EXTRACTOR/internal/domain"
)

func TestIsEligible(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"dated marker line", "[03/08/24, 10:15] Box Silvassa: E2E-X5 qty 10", true},
		{"dash separated date", "[15-12-2024 11:00] Box Silvassa: E2E-X5", true},
		{"blank", "   ", false},
		{"empty", "", false},
		{"other sender", "[03/08/24, 10:17] Other Trader: E2E-X5 qty 10", false},
		{"marker is case sensitive", "[03/08/24] box silvassa: E2E-X5", false},
		{"discard phrase", "[03/08/24] Box Silvassa: done", false},
		{"discard phrase any case", "[03/08/24] Box Silvassa: Please CONFIRM E2E-X5", false},
		{"discard phrase inside a word", "[03/08/24] Box Silvassa: looking for E2E-X5", false},
		{"emoji discard", "[12/06/24] Box Silvassa: 👍", false},
		{"no date", "Box Silvassa: E2E-X5 qty 10", false},
		{"parenthesised date", "(03/08/24) Box Silvassa: E2E-X5", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsEligible(tt.line))
		})
	}
}

func TestParser_RejectsEveryDiscardPhrase(t *testing.T) {
	p := NewParser()

	for _, phrase := range discardPhrases {
		for _, variant := range []string{phrase, strings.ToUpper(phrase)} {
			line := "[03/08/24, 10:15] Box Silvassa: E2E-X5 qty 10 " + variant
			t.Run(variant, func(t *testing.T) {
				assert.False(t, IsEligible(line))
				_, ok := p.Process(line)
				assert.False(t, ok)
			})
		}
	}
}

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   string
		wantOK bool
	}{
		{"two digit year", "[03/08/24, 10:15] x", "2024-08-03", true},
		{"single digit parts", "[5/7/23] hello", "2023-07-05", true},
		{"four digit year with dashes", "[15-12-2024] hello", "2024-12-15", true},
		{"three digit year kept", "[1/2/202] x", "202-02-01", true},
		{"calendar not checked", "[13/13/99]", "2099-13-13", true},
		{"no bracket", "(5/7/23)", "", false},
		{"no date", "no date", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractDate(tt.line)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractQuantity(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"qty prefix wins over pcs", "E2E-X5 qty 10 pcs", "qty 10", true},
		{"first match only", "need 10 Pcs and 20 pcs", "10 Pcs", true},
		{"casing kept", "Qty 15 and qty 20", "Qty 15", true},
		{"each", "E2E-X5 4 each", "4 each", true},
		{"no", "E2E-X5 5 no", "5 no", true},
		{"no space", "123nos", "123nos", true},
		{"qty without space", "DZ pressure qty5", "qty5", true},
		{"model digit joins no", "E2E-X5 no qty", "5 no", true},
		{"none", "E2E-X5 sensor", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractQuantity(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanProduct(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"quantity and request removed", " Box Silvassa: we need E2E-X5 qty 10 pcs", "E2E-X5  pcs"},
		{"capitalised request and punctuation", "Box Silvassa: We Require E2E-X5!!", "E2E-X5"},
		{"every quantity removed", "need 10 Pcs and 20 pcs", "and"},
		{"allowed punctuation kept", "requirement of 24V proximity, sensor", "24V proximity, sensor"},
		{"only symbols", "  🙂 ***  ", ""},
		{"nothing to clean", "E2E-X5 sensor", "E2E-X5 sensor"},
		{"word boundary is ascii only", "ec5_éneed", "ec5_é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanProduct(tt.text))
		})
	}
}

func TestCleanProduct_Idempotent(t *testing.T) {
	inputs := []string{
		" Box Silvassa: we need E2E-X5 qty 10 pcs",
		"can you send TLQ5MC1 @ best price!!",
		"PT100 temperature sensor 3 each",
	}
	for _, in := range inputs {
		once := CleanProduct(in)
		assert.Equal(t, once, CleanProduct(once), in)
	}
}

func TestTag(t *testing.T) {
	tests := []struct {
		name    string
		product string
		want    domain.SensorType
	}{
		{"proximity model", "E2E-X5  pcs", domain.SensorProximity},
		{"reed beats proximity", "reed switch TL-N10", domain.SensorReedSwitch},
		{"magnetic beats proximity", "E2E-X5 magnetic", domain.SensorReedSwitch},
		{"photoelectric", "E3FA-DN11", domain.SensorPhotoelectric},
		{"capacitive beats pressure", "EC5 DZ", domain.SensorCapacitive},
		{"pressure beats temperature", "PRESSURE pt100", domain.SensorPressure},
		{"inductive", "inductive M18", domain.SensorInductive},
		{"temperature", "PT100 probe", domain.SensorTemperature},
		{"fallback", "random part", domain.SensorOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tag(tt.product)
			assert.Equal(t, tt.want, got)
			assert.True(t, domain.ValidateSensorType(string(got)))
		})
	}
}

func TestParser_Process(t *testing.T) {
	p := NewParser()

	tests := []struct {
		name     string
		line     string
		product  string
		sensor   domain.SensorType
		quantity string
		date     string
	}{
		{
			name:     "full order line",
			line:     "[03/08/24, 10:15] Box Silvassa: we need E2E-X5 qty 10 pcs",
			product:  "E2E-X5  pcs",
			sensor:   domain.SensorProximity,
			quantity: "qty 10",
			date:     "2024-08-03",
		},
		{
			name:    "no quantity",
			line:    "[01/01/24] Box Silvassa: reed switch TL-N10",
			product: "reed switch TL-N10",
			sensor:  domain.SensorReedSwitch,
			date:    "2024-01-01",
		},
		{
			name:     "time with meridiem",
			line:     "[5/7/23, 9:01 AM] Box Silvassa: E3FA-DN11 2 nos",
			product:  "E3FA-DN11",
			sensor:   domain.SensorPhotoelectric,
			quantity: "2 nos",
			date:     "2023-07-05",
		},
		{
			name:     "dashed date",
			line:     "[15-12-2024 11:00] Box Silvassa: PT100 temperature sensor 3 each",
			product:  "PT100 temperature sensor",
			sensor:   domain.SensorTemperature,
			quantity: "3 each",
			date:     "2024-12-15",
		},
		{
			name:     "body after last bracket",
			line:     "[12/06/2024, 18:22:10] [fwd] Box Silvassa: DZ pressure qty5",
			product:  "DZ pressure",
			sensor:   domain.SensorPressure,
			quantity: "qty5",
			date:     "2024-06-12",
		},
		{
			name:    "request framing and symbols stripped",
			line:    "[12/6/24] Box Silvassa: can you send TLQ5MC1 @ best price!!",
			product: "TLQ5MC1  best price",
			sensor:  domain.SensorProximity,
			date:    "2024-06-12",
		},
		{
			name:    "source line trimmed",
			line:    "  [01/02/24] Box Silvassa: XS-612   ",
			product: "XS-612",
			sensor:  domain.SensorOther,
			date:    "2024-02-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := p.Process(tt.line)
			require.True(t, ok)

			assert.Equal(t, tt.product, rec.ProductName)
			assert.Equal(t, tt.sensor, rec.SensorType)
			assert.Equal(t, tt.quantity, rec.QuantityOrEmpty())
			assert.Equal(t, tt.date, rec.DateOrEmpty())
			assert.NotEmpty(t, rec.SourceLine)
			assert.NotContains(t, rec.ProductName, domain.SourceMarker)
		})
	}
}

func TestParser_Process_Rejects(t *testing.T) {
	p := NewParser()

	lines := []string{
		"",
		"[03/08/24, 10:16] Box Silvassa: done",
		"[03/08/24, 10:17] Other Trader: E2E-X5 qty 10",
		"[01/01/24] Box Silvassa: sensor",
		"[12/06/24] Box Silvassa: inductive",
		"[12/06/24] Box Silvassa: 10 pcs",
		"Box Silvassa: E2E-X5 qty 10",
	}
	for _, line := range lines {
		_, ok := p.Process(line)
		assert.False(t, ok, line)
	}
}

func TestParser_ParseLines(t *testing.T) {
	lines := []string{
		"[03/08/24, 10:15] Box Silvassa: we need E2E-X5 qty 10 pcs",
		"",
		"[03/08/24, 10:16] Box Silvassa: done",
		"[03/08/24, 10:17] Other Trader: E2E-X5 qty 10",
		"Box Silvassa: E2E-X5 qty 10",
		"[01/01/24] Box Silvassa: sensor",
		"[01/01/24] Box Silvassa: reed switch TL-N10",
	}

	records, stats := NewParser().ParseLines(lines)

	require.Len(t, records, 2)
	assert.Equal(t, "E2E-X5  pcs", records[0].ProductName)
	assert.Equal(t, "reed switch TL-N10", records[1].ProductName)

	assert.Equal(t, domain.ProcessingStats{
		TotalLines:    7,
		BlankLines:    1,
		MissingMarker: 1,
		Discarded:     1,
		Undated:       1,
		TooSparse:     1,
		Accepted:      2,
	}, stats)
	assert.Equal(t, 5, stats.Rejected())
}

func TestParser_ParseLines_Empty(t *testing.T) {
	records, stats := NewParser().ParseLines(nil)
	assert.Empty(t, records)
	assert.Equal(t, domain.ProcessingStats{}, stats)
}

func TestParser_ImplementsLineParser(t *testing.T) {
	var _ domain.LineParser = NewParser()
}
