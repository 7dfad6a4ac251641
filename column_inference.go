package tablesql

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nao1215/tablesql/domain/model"
)

// Common date and datetime patterns to detect
var datetimePatterns = []struct {
	pattern  *regexp.Regexp
	formats  []string // Multiple formats for the same pattern
	dateOnly bool
}{
	// ISO8601 formats with timezone
	{
		pattern: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`),
		formats: []string{time.RFC3339, time.RFC3339Nano},
	},
	// ISO8601 formats without timezone
	{
		pattern: regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?$`),
		formats: []string{"2006-01-02T15:04:05", "2006-01-02T15:04:05.999999999"},
	},
	// ISO8601 date and time with space
	{
		pattern: regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}(\.\d+)?$`),
		formats: []string{"2006-01-02 15:04:05", "2006-01-02 15:04:05.999999999"},
	},
	// ISO8601 date only
	{
		pattern:  regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
		formats:  []string{"2006-01-02"},
		dateOnly: true,
	},
	// US formats
	{
		pattern: regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4} \d{1,2}:\d{2}:\d{2}( (AM|PM))?$`),
		formats: []string{"1/2/2006 15:04:05", "1/2/2006 3:04:05 PM", "01/02/2006 15:04:05"},
	},
	{
		pattern:  regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`),
		formats:  []string{"1/2/2006", "01/02/2006"},
		dateOnly: true,
	},
	// European formats
	{
		pattern: regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{4} \d{1,2}:\d{2}:\d{2}$`),
		formats: []string{"2.1.2006 15:04:05", "02.01.2006 15:04:05"},
	},
	{
		pattern:  regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{4}$`),
		formats:  []string{"2.1.2006", "02.01.2006"},
		dateOnly: true,
	},
}

// parseTemporal parses value against the known date and datetime layouts.
// dateOnly reports that the value carries no time component.
func parseTemporal(value string) (t time.Time, dateOnly bool, ok bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false, false
	}

	for _, dp := range datetimePatterns {
		if !dp.pattern.MatchString(value) {
			continue
		}
		for _, format := range dp.formats {
			if parsed, err := time.Parse(format, value); err == nil {
				return parsed, dp.dateOnly, true
			}
		}
	}
	return time.Time{}, false, false
}

// Boolean tokens recognized during inference. Bare "1" and "0" are left
// to the number family.
var (
	trueTokens  = map[string]struct{}{"true": {}, "t": {}, "yes": {}, "y": {}}
	falseTokens = map[string]struct{}{"false": {}, "f": {}, "no": {}, "n": {}}
)

// parseBoolToken reads an inference-grade boolean token.
func parseBoolToken(value string) (val bool, ok bool) {
	lower := strings.ToLower(strings.TrimSpace(value))
	if _, ok := trueTokens[lower]; ok {
		return true, true
	}
	if _, ok := falseTokens[lower]; ok {
		return false, true
	}
	return false, false
}

// parseDurationToken reads an elapsed-time token: Go duration syntax
// ("1h30m", "250ms") or a three-part clock ("26:00:00", "0:04:10.5").
func parseDurationToken(value string) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	if strings.Contains(value, ":") {
		d, err := parseClock(strings.TrimPrefix(value, "-"))
		if err != nil {
			return 0, false
		}
		if strings.HasPrefix(value, "-") {
			d = -d
		}
		return d, true
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, false
	}
	return d, true
}

// parseClock reads "H:MM:SS[.fff]" with unbounded hours.
func parseClock(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, strconv.ErrSyntax
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	sec, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(sec*float64(time.Second)), nil
}

// valueClass is the inference category of a single value.
type valueClass int

const (
	classNull valueClass = iota
	classBool
	classNumber
	classDuration
	classDate
	classDateTime
	classText
)

// classifyString assigns an inference category to a raw string value.
// The order mirrors the kind priority: boolean tokens, then numbers,
// then durations, then dates and datetimes, and finally text.
func classifyString(value string) valueClass {
	value = strings.TrimSpace(value)
	if value == "" {
		return classNull
	}
	if _, ok := parseBoolToken(value); ok {
		return classBool
	}
	if _, err := decimal.NewFromString(value); err == nil {
		return classNumber
	}
	if _, ok := parseDurationToken(value); ok {
		return classDuration
	}
	if _, dateOnly, ok := parseTemporal(value); ok {
		if dateOnly {
			return classDate
		}
		return classDateTime
	}
	return classText
}

// classifyValue assigns an inference category to a scanned database
// value. Driver-native types classify directly; text classifies by its
// content.
func classifyValue(v any) valueClass {
	switch x := v.(type) {
	case nil:
		return classNull
	case bool:
		return classBool
	case int64, float64:
		return classNumber
	case time.Time:
		return classDateTime
	case time.Duration:
		return classDuration
	case []byte:
		return classifyString(string(x))
	case string:
		return classifyString(x)
	default:
		return classText
	}
}

// kindFlags accumulates the value classes seen in one column.
type kindFlags struct {
	hasBool     bool
	hasNumber   bool
	hasDuration bool
	hasDate     bool
	hasDateTime bool
	hasText     bool
}

func (f *kindFlags) add(c valueClass) {
	switch c {
	case classBool:
		f.hasBool = true
	case classNumber:
		f.hasNumber = true
	case classDuration:
		f.hasDuration = true
	case classDate:
		f.hasDate = true
	case classDateTime:
		f.hasDateTime = true
	case classText:
		f.hasText = true
	}
}

// kind resolves the accumulated classes to one column kind. Mixed
// families collapse to Text, dates upgrade to DateTime when timestamps
// are present, and a column with no values defaults to Text.
func (f kindFlags) kind() model.Kind {
	if f.hasText {
		return model.Text
	}

	families := 0
	if f.hasBool {
		families++
	}
	if f.hasNumber {
		families++
	}
	if f.hasDuration {
		families++
	}
	if f.hasDate || f.hasDateTime {
		families++
	}
	if families > 1 {
		return model.Text
	}

	switch {
	case f.hasBool:
		return model.Boolean
	case f.hasNumber:
		return model.Number
	case f.hasDuration:
		return model.TimeDelta
	case f.hasDateTime:
		return model.DateTime
	case f.hasDate:
		return model.Date
	default:
		return model.Text
	}
}

// inferKinds infers a kind for each of columnCount columns from string
// records, as the CSV and XLSX readers see them.
func inferKinds(columnCount int, records [][]string) []model.Kind {
	kinds := make([]model.Kind, columnCount)
	for i := 0; i < columnCount; i++ {
		var flags kindFlags
		for _, record := range records {
			if i < len(record) {
				flags.add(classifyString(record[i]))
			}
		}
		kinds[i] = flags.kind()
	}
	return kinds
}

// inferValueKinds infers a kind for each of columnCount columns from
// scanned database rows, used when a result set's declared types are not
// consulted.
func inferValueKinds(columnCount int, rows [][]any) []model.Kind {
	kinds := make([]model.Kind, columnCount)
	for i := 0; i < columnCount; i++ {
		var flags kindFlags
		for _, row := range rows {
			if i < len(row) {
				flags.add(classifyValue(row[i]))
			}
		}
		kinds[i] = flags.kind()
	}
	return kinds
}

// convertString converts a raw string cell to the kind's Go value. An
// empty cell is NULL for every kind.
func convertString(kind model.Kind, value string) (any, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	switch kind {
	case model.Boolean:
		b, ok := parseBoolToken(trimmed)
		if !ok {
			return nil, fmt.Errorf("tablesql: cannot convert %q to %s", trimmed, kind)
		}
		return b, nil
	case model.Number:
		n, err := decimal.NewFromString(trimmed)
		if err != nil {
			return nil, fmt.Errorf("tablesql: cannot convert %q to %s", trimmed, kind)
		}
		return n, nil
	case model.Date, model.DateTime:
		t, _, ok := parseTemporal(trimmed)
		if !ok {
			return nil, fmt.Errorf("tablesql: cannot convert %q to %s", trimmed, kind)
		}
		return t, nil
	case model.TimeDelta:
		d, ok := parseDurationToken(trimmed)
		if !ok {
			return nil, fmt.Errorf("tablesql: cannot convert %q to %s", trimmed, kind)
		}
		return d, nil
	default:
		return value, nil
	}
}
