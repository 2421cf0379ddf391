package entity

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateOnlyJSONRoundTrip(t *testing.T) {
	d := NewDateOnly(2026, time.March, 15)

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-03-15"` {
		t.Errorf("marshal = %s, want \"2026-03-15\"", b)
	}

	var got DateOnly
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(d.Time) {
		t.Errorf("round trip = %v, want %v", got, d)
	}
}

func TestDateOnlyZeroMarshalsNull(t *testing.T) {
	b, err := json.Marshal(DateOnly{})
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("marshal zero = %s, want null", b)
	}

	var got DateOnly
	if err := json.Unmarshal([]byte("null"), &got); err != nil {
		t.Fatalf("unmarshal null: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("unmarshal null = %v, want zero", got)
	}
}

func TestDateOnlyRejectsTimeOfDay(t *testing.T) {
	var got DateOnly
	if err := json.Unmarshal([]byte(`"2026-03-15T10:30:00Z"`), &got); err == nil {
		t.Error("timestamp accepted, want yyyy-mm-dd only")
	}
	if err := json.Unmarshal([]byte(`"15/03/2026"`), &got); err == nil {
		t.Error("dd/mm/yyyy accepted, want yyyy-mm-dd only")
	}
}
