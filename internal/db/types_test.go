package db

import (
	"testing"
)

func TestStringArrayRoundTrip(t *testing.T) {
	original := StringArray{"Go", "PostgreSQL"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}

	var scanned StringArray
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}
	if len(scanned) != 2 || scanned[0] != "Go" || scanned[1] != "PostgreSQL" {
		t.Errorf("round trip changed value: %v", scanned)
	}

	// Nil array serializes as an empty JSON array, not SQL NULL
	value, err = StringArray(nil).Value()
	if err != nil {
		t.Fatalf("Value() failed for nil: %v", err)
	}
	if string(value.([]byte)) != "[]" {
		t.Errorf("nil array serialized as %s, expected []", value)
	}
}

func TestResponseMapScan_Null(t *testing.T) {
	var m ResponseMap
	if err := m.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) failed: %v", err)
	}
	if m == nil {
		t.Error("Scan(nil) should yield an empty map, not nil")
	}
}

func TestRatingListRoundTrip(t *testing.T) {
	original := RatingList{
		{Period: "2025-H2", Score: 8.5, Date: "2025-12-01"},
	}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Value() failed: %v", err)
	}

	var scanned RatingList
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scan() failed: %v", err)
	}
	if len(scanned) != 1 || scanned[0].Score != 8.5 {
		t.Errorf("round trip changed value: %+v", scanned)
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Alice@Example.COM", "alice@example.com"},
		{"  bob@example.com  ", "bob@example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeEmail(tt.input); got != tt.expected {
			t.Errorf("normalizeEmail(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
