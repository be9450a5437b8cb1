package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero(0, 0, 3, 4); v != 3 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero("", ""); v != "" {
		t.Fatalf("got %v", v)
	}
}

func TestStrToBool(t *testing.T) {
	for _, s := range []string{"true", "Y", " on ", "1"} {
		if !StrToBool(s) {
			t.Fatalf("%q should be true", s)
		}
	}
	for _, s := range []string{"false", "n", "", "2"} {
		if StrToBool(s) {
			t.Fatalf("%q should be false", s)
		}
	}
}
