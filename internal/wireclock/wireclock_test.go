package wireclock

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFormatAndParseRoundTrip(t *testing.T) {
	orig := time.Date(2024, 3, 9, 18, 4, 5, 987654321, time.UTC)
	wt := From(orig)

	if got := wt.String(); got != "2024-03-09 18:04:05" {
		t.Fatalf("unexpected wire format: %q", got)
	}

	back, err := Parse(wt.String())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !back.Equal(orig.Truncate(time.Second)) {
		t.Fatalf("round trip drifted: %v vs %v", back.Time, orig)
	}
}

func TestFromNormalizesZoneAndPrecision(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*60*60)
	local := time.Date(2024, 3, 9, 21, 0, 0, 500000000, zone)

	wt := From(local)
	if got := wt.String(); got != "2024-03-09 18:00:00" {
		t.Fatalf("expected UTC seconds precision, got %q", got)
	}
}

func TestJSONMarshalling(t *testing.T) {
	wt, err := Parse("2025-01-02 03:04:05")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	b, err := json.Marshal(wt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-01-02 03:04:05"` {
		t.Fatalf("unexpected JSON: %s", b)
	}

	var decoded Time
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !decoded.Equal(wt.Time) {
		t.Fatalf("decoded %v, want %v", decoded.Time, wt.Time)
	}
}

func TestJSONZeroValueIsNull(t *testing.T) {
	var wt Time
	b, err := json.Marshal(wt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "null" {
		t.Fatalf("expected null for zero value, got %s", b)
	}

	var decoded Time
	if err := json.Unmarshal([]byte("null"), &decoded); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !decoded.IsZero() {
		t.Fatalf("expected zero value, got %v", decoded.Time)
	}
}

func TestScanVariants(t *testing.T) {
	want := "2024-12-31 23:59:59"

	cases := []struct {
		name string
		in   any
	}{
		{"time.Time", time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)},
		{"wire string", want},
		{"wire bytes", []byte(want)},
		{"rfc3339 string", "2024-12-31T23:59:59Z"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var wt Time
			if err := wt.Scan(tc.in); err != nil {
				t.Fatalf("scan: %v", err)
			}
			if got := wt.String(); got != want {
				t.Fatalf("scanned %q, want %q", got, want)
			}
		})
	}

	var wt Time
	if err := wt.Scan(nil); err != nil {
		t.Fatalf("scan nil: %v", err)
	}
	if !wt.IsZero() {
		t.Fatalf("expected zero after nil scan")
	}
	if err := wt.Scan(42); err == nil {
		t.Fatalf("expected error scanning int")
	}
}
