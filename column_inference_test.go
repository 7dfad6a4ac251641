package tablesql

import (
	"strings"
	"testing"
	"time"

	"github.com/nao1215/tablesql/domain/model"
)

func TestInferKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []string
		want   model.Kind
	}{
		{
			name:   "boolean tokens",
			values: []string{"true", "False", "yes", "N"},
			want:   model.Boolean,
		},
		{
			name:   "integers",
			values: []string{"1", "0", "-42"},
			want:   model.Number,
		},
		{
			name:   "decimals",
			values: []string{"1.5", "2.25", "-0.125"},
			want:   model.Number,
		},
		{
			name:   "scientific notation",
			values: []string{"1e10", "2.5e-3"},
			want:   model.Number,
		},
		{
			name:   "numbers with empty cells",
			values: []string{"123", "", "789"},
			want:   model.Number,
		},
		{
			name:   "clock durations",
			values: []string{"0:04:15", "26:00:00"},
			want:   model.TimeDelta,
		},
		{
			name:   "go durations",
			values: []string{"1h30m", "250ms"},
			want:   model.TimeDelta,
		},
		{
			name:   "dates",
			values: []string{"2024-03-01", "2023-12-31"},
			want:   model.Date,
		},
		{
			name:   "datetimes",
			values: []string{"2024-03-01 12:30:45", "2024-03-01T00:00:00Z"},
			want:   model.DateTime,
		},
		{
			name:   "dates upgrade beside datetimes",
			values: []string{"2024-03-01", "2024-03-01 12:30:45"},
			want:   model.DateTime,
		},
		{
			name:   "numbers mixed with text",
			values: []string{"123", "hello"},
			want:   model.Text,
		},
		{
			name:   "booleans mixed with numbers",
			values: []string{"true", "1"},
			want:   model.Text,
		},
		{
			name:   "two-part clock is text",
			values: []string{"15:04"},
			want:   model.Text,
		},
		{
			name:   "NaN is text",
			values: []string{"NaN"},
			want:   model.Text,
		},
		{
			name:   "all empty",
			values: []string{"", "", ""},
			want:   model.Text,
		},
		{
			name:   "no rows",
			values: nil,
			want:   model.Text,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			records := make([][]string, 0, len(tt.values))
			for _, v := range tt.values {
				records = append(records, []string{v})
			}
			got := inferKinds(1, records)
			if got[0] != tt.want {
				t.Errorf("inferKinds() = %s, want %s", got[0], tt.want)
			}
		})
	}
}

func TestInferKinds_multipleColumns(t *testing.T) {
	t.Parallel()

	// The second record is short; its missing cell must not disturb the
	// fourth column.
	records := [][]string{
		{"true", "1.5", "2024-03-01", "alpha"},
		{"no", "2", "2024-04-01"},
	}

	got := inferKinds(4, records)
	want := []model.Kind{model.Boolean, model.Number, model.Date, model.Text}
	for i, kind := range want {
		if got[i] != kind {
			t.Errorf("column %d = %s, want %s", i, got[i], kind)
		}
	}
}

func TestParseTemporal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		want     time.Time
		dateOnly bool
	}{
		{
			name:  "RFC3339",
			value: "2024-03-01T12:30:45Z",
			want:  time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC),
		},
		{
			name:  "ISO without zone",
			value: "2024-03-01T12:30:45",
			want:  time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC),
		},
		{
			name:  "space separated",
			value: "2024-03-01 12:30:45",
			want:  time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC),
		},
		{
			name:  "fractional seconds",
			value: "2024-03-01 12:30:45.5",
			want:  time.Date(2024, 3, 1, 12, 30, 45, 500000000, time.UTC),
		},
		{
			name:     "date only",
			value:    "2024-03-01",
			want:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			dateOnly: true,
		},
		{
			name:     "US date",
			value:    "3/14/2015",
			want:     time.Date(2015, 3, 14, 0, 0, 0, 0, time.UTC),
			dateOnly: true,
		},
		{
			name:  "US datetime with meridiem",
			value: "3/14/2015 3:04:05 PM",
			want:  time.Date(2015, 3, 14, 15, 4, 5, 0, time.UTC),
		},
		{
			name:     "European date",
			value:    "14.3.2015",
			want:     time.Date(2015, 3, 14, 0, 0, 0, 0, time.UTC),
			dateOnly: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, dateOnly, ok := parseTemporal(tt.value)
			if !ok {
				t.Fatalf("parseTemporal(%q) not recognized", tt.value)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseTemporal(%q) = %v, want %v", tt.value, got, tt.want)
			}
			if dateOnly != tt.dateOnly {
				t.Errorf("parseTemporal(%q) dateOnly = %v, want %v", tt.value, dateOnly, tt.dateOnly)
			}
		})
	}
}

func TestParseTemporal_rejects(t *testing.T) {
	t.Parallel()

	for _, value := range []string{"", "yesterday", "2024-13-45", "20240301", "Jan 15, 2023"} {
		if _, _, ok := parseTemporal(value); ok {
			t.Errorf("parseTemporal(%q) = ok, want rejection", value)
		}
	}
}

func TestParseBoolToken(t *testing.T) {
	t.Parallel()

	trues := []string{"true", "TRUE", "t", "yes", "Y"}
	for _, v := range trues {
		got, ok := parseBoolToken(v)
		if !ok || !got {
			t.Errorf("parseBoolToken(%q) = (%v, %v), want (true, true)", v, got, ok)
		}
	}

	falses := []string{"false", "F", "no", "n"}
	for _, v := range falses {
		got, ok := parseBoolToken(v)
		if !ok || got {
			t.Errorf("parseBoolToken(%q) = (%v, %v), want (false, true)", v, got, ok)
		}
	}

	// Bare digits belong to the number family.
	for _, v := range []string{"1", "0", "maybe", ""} {
		if _, ok := parseBoolToken(v); ok {
			t.Errorf("parseBoolToken(%q) = ok, want rejection", v)
		}
	}
}

func TestParseDurationToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  time.Duration
	}{
		{value: "1h30m", want: 90 * time.Minute},
		{value: "250ms", want: 250 * time.Millisecond},
		{value: "26:00:00", want: 26 * time.Hour},
		{value: "0:04:10.5", want: 4*time.Minute + 10*time.Second + 500*time.Millisecond},
		{value: "-0:30:00", want: -30 * time.Minute},
	}

	for _, tt := range tests {
		got, ok := parseDurationToken(tt.value)
		if !ok {
			t.Errorf("parseDurationToken(%q) not recognized", tt.value)
			continue
		}
		if got != tt.want {
			t.Errorf("parseDurationToken(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}

	for _, value := range []string{"", "15:04", "abc", "1:2:3:4"} {
		if _, ok := parseDurationToken(value); ok {
			t.Errorf("parseDurationToken(%q) = ok, want rejection", value)
		}
	}
}

func TestConvertString(t *testing.T) {
	t.Parallel()

	t.Run("empty cell is NULL for every kind", func(t *testing.T) {
		t.Parallel()

		kinds := []model.Kind{model.Boolean, model.Number, model.Date, model.DateTime, model.TimeDelta, model.Text}
		for _, kind := range kinds {
			got, err := convertString(kind, "")
			if err != nil {
				t.Fatalf("convertString(%s, \"\") error = %v", kind, err)
			}
			if got != nil {
				t.Errorf("convertString(%s, \"\") = %v, want nil", kind, got)
			}
		}
	})

	t.Run("boolean", func(t *testing.T) {
		t.Parallel()

		got, err := convertString(model.Boolean, "yes")
		if err != nil {
			t.Fatal(err)
		}
		if got != true {
			t.Errorf("got %v, want true", got)
		}
	})

	t.Run("timedelta", func(t *testing.T) {
		t.Parallel()

		got, err := convertString(model.TimeDelta, "01:00:00")
		if err != nil {
			t.Fatal(err)
		}
		if got != time.Hour {
			t.Errorf("got %v, want %v", got, time.Hour)
		}
	})

	t.Run("date", func(t *testing.T) {
		t.Parallel()

		got, err := convertString(model.Date, "2024-03-01")
		if err != nil {
			t.Fatal(err)
		}
		want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		if !got.(time.Time).Equal(want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("text keeps surrounding spaces", func(t *testing.T) {
		t.Parallel()

		got, err := convertString(model.Text, " padded ")
		if err != nil {
			t.Fatal(err)
		}
		if got != " padded " {
			t.Errorf("got %q, want %q", got, " padded ")
		}
	})

	t.Run("conversion failures name the value and kind", func(t *testing.T) {
		t.Parallel()

		_, err := convertString(model.Number, "twelve")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "cannot convert") {
			t.Errorf("error = %v, want a cannot-convert message", err)
		}
	})
}
