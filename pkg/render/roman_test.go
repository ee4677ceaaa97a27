package render

import "testing"

func TestToRoman(t *testing.T) {
	cases := map[int]string{
		-3:   "",
		0:    "",
		1:    "I",
		4:    "IV",
		9:    "IX",
		14:   "XIV",
		40:   "XL",
		90:   "XC",
		1994: "MCMXCIV",
	}
	for n, want := range cases {
		if got := ToRoman(n); got != want {
			t.Errorf("ToRoman(%d) = %q, want %q", n, got, want)
		}
	}
}
