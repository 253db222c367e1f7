package utils

import "testing"

func TestIsAlphanumeric(t *testing.T) {
	cases := map[string]bool{
		"AB12345":  true,
		"123456":   true,
		"été42":    true,
		"AB²½12":   true,
		"":         false,
		"AB 12345": false,
		"AB-12345": false,
		"12345!":   false,
	}
	for in, want := range cases {
		if got := IsAlphanumeric(in); got != want {
			t.Fatalf("IsAlphanumeric(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestMaskTail(t *testing.T) {
	if got := MaskTail("AB1234567", 4); got != "*****4567" {
		t.Fatalf("MaskTail = %q", got)
	}
	if got := MaskTail("123", 4); got != "123" {
		t.Fatalf("short input should be unchanged, got %q", got)
	}
}

func TestNormalizeSpace(t *testing.T) {
	if got := NormalizeSpace("  Sahara \t  Tours \n"); got != "Sahara Tours" {
		t.Fatalf("NormalizeSpace = %q", got)
	}
}
