package workdays

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCount_SingleDay(t *testing.T) {
	c := NewCalculator([]time.Weekday{time.Friday, time.Saturday})

	cases := []struct {
		name string
		day  time.Time
		want int
	}{
		{"sunday is a working day", date(2024, time.June, 2), 1},
		{"monday is a working day", date(2024, time.June, 3), 1},
		{"friday is weekend", date(2024, time.June, 7), 0},
		{"saturday is weekend", date(2024, time.June, 8), 0},
	}
	for _, tc := range cases {
		got, err := c.Count(tc.day, tc.day)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: Count = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestCount_FullWeekFromAnyStart(t *testing.T) {
	// Any 7-day span with a 2-day weekend contains exactly 5 working days,
	// regardless of which weekday it starts on.
	c := NewCalculator([]time.Weekday{time.Friday, time.Saturday})
	for offset := 0; offset < 7; offset++ {
		start := date(2024, time.June, 2).AddDate(0, 0, offset)
		end := start.AddDate(0, 0, 6)
		got, err := c.Count(start, end)
		if err != nil {
			t.Fatalf("offset %d: unexpected error: %v", offset, err)
		}
		if got != 5 {
			t.Errorf("week starting %s: Count = %d, want 5", start.Weekday(), got)
		}
	}
}

func TestCount_SundayThroughSaturday(t *testing.T) {
	// 2024-06-02 is a Sunday, 2024-06-08 the following Saturday.
	c := NewCalculator([]time.Weekday{time.Friday, time.Saturday})
	got, err := c.Count(date(2024, time.June, 2), date(2024, time.June, 8))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Errorf("Count = %d, want 5", got)
	}
}

func TestCount_InvalidRange(t *testing.T) {
	c := NewCalculator(nil)
	_, err := c.Count(date(2024, time.June, 8), date(2024, time.June, 2))
	if err != ErrInvalidRange {
		t.Errorf("Count with reversed range: err = %v, want ErrInvalidRange", err)
	}
}

func TestCount_IgnoresTimeOfDay(t *testing.T) {
	c := NewCalculator(nil)
	start := time.Date(2024, time.June, 2, 23, 59, 0, 0, time.UTC)
	end := time.Date(2024, time.June, 8, 0, 1, 0, 0, time.UTC)
	got, err := c.Count(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Errorf("Count = %d, want 5", got)
	}
}

func TestCount_WesternWeekend(t *testing.T) {
	c := NewCalculator([]time.Weekday{time.Saturday, time.Sunday})
	// 2024-06-03 (Monday) through 2024-06-09 (Sunday).
	got, err := c.Count(date(2024, time.June, 3), date(2024, time.June, 9))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Errorf("Count = %d, want 5", got)
	}
}

func TestCount_Deterministic(t *testing.T) {
	c := NewCalculator(nil)
	start, end := date(2024, time.January, 1), date(2024, time.March, 31)
	first, err := c.Count(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.Count(start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("repeated Count gave %d then %d", first, second)
	}
}
