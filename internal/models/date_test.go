package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.March, 14)

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(out) != `"2025-03-14"` {
		t.Errorf("expected \"2025-03-14\", got %s", out)
	}

	var parsed Date
	if err := json.Unmarshal(out, &parsed); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if parsed.String() != "2025-03-14" {
		t.Errorf("expected 2025-03-14 after round trip, got %s", parsed)
	}
}

func TestDateUnmarshalRejectsOtherFormats(t *testing.T) {
	cases := []string{`"14-03-2025"`, `"2025/03/14"`, `"March 14, 2025"`, `"2025-13-01"`}
	for _, c := range cases {
		var d Date
		if err := json.Unmarshal([]byte(c), &d); err == nil {
			t.Errorf("expected %s to be rejected", c)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Year() != 2025 || d.Month() != time.January || d.Day() != 31 {
		t.Errorf("parsed wrong date: %s", d)
	}

	if _, err := ParseDate("2025-02-30"); err == nil {
		t.Error("expected invalid calendar date to be rejected")
	}
}

func TestDateScan(t *testing.T) {
	t.Run("from_string", func(t *testing.T) {
		var d Date
		if err := d.Scan("2025-03-14"); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if d.String() != "2025-03-14" {
			t.Errorf("expected 2025-03-14, got %s", d)
		}
	})

	t.Run("from_datetime_string", func(t *testing.T) {
		var d Date
		if err := d.Scan("2025-03-14T00:00:00Z"); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if d.String() != "2025-03-14" {
			t.Errorf("expected 2025-03-14, got %s", d)
		}
	})

	t.Run("from_time", func(t *testing.T) {
		var d Date
		if err := d.Scan(time.Date(2025, time.March, 14, 23, 59, 0, 0, time.UTC)); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if d.String() != "2025-03-14" {
			t.Errorf("expected time component to be dropped, got %s", d)
		}
	})

	t.Run("from_bytes", func(t *testing.T) {
		var d Date
		if err := d.Scan([]byte("2025-03-14")); err != nil {
			t.Fatalf("scan failed: %v", err)
		}
		if d.String() != "2025-03-14" {
			t.Errorf("expected 2025-03-14, got %s", d)
		}
	})
}

func TestDateValueOrdering(t *testing.T) {
	// The stored form must order lexicographically the same as chronologically,
	// since range filters compare it directly in SQL.
	early, _ := NewDate(2025, time.September, 30).Value()
	late, _ := NewDate(2025, time.October, 1).Value()
	if !(early.(string) < late.(string)) {
		t.Errorf("expected %v < %v lexicographically", early, late)
	}
}
