package utils

import "testing"

func TestParseClock(t *testing.T) {
	for in, want := range map[string]string{"08:30": "08:30", "08:30:00": "08:30", " 23:05 ": "23:05"} {
		got, err := ParseClock(in)
		if err != nil {
			t.Fatalf("ParseClock(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseClock(%q) = %q, want %q", in, got, want)
		}
	}
	for _, in := range []string{"", "25:00", "8h30", "08:61"} {
		if _, err := ParseClock(in); err == nil {
			t.Fatalf("ParseClock(%q) expected error", in)
		}
	}
}

func TestNights(t *testing.T) {
	in, err := ParseDate("2025-10-25")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	out, _ := ParseDate("2025-10-28")
	if n := Nights(in, out); n != 3 {
		t.Fatalf("Nights = %d, want 3", n)
	}
	if n := Nights(out, in); n != -3 {
		t.Fatalf("Nights reversed = %d, want -3", n)
	}
	if n := Nights(in, in); n != 0 {
		t.Fatalf("Nights same day = %d, want 0", n)
	}
	if got := FormatDate(out); got != "2025-10-28" {
		t.Fatalf("FormatDate = %q", got)
	}
}
