package validators

import "testing"

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"+5511999990000", "+5511999990000"},
		{"(11) 99999-0000", "11999990000"},
		{"11 99999 0000", "11999990000"},
		{"+55 (11) 99999-0000", "+5511999990000"},
		{"", ""},
		{"abc", ""},
	}

	for _, tc := range cases {
		if got := NormalizePhone(tc.in); got != tc.expected {
			t.Fatalf("NormalizePhone(%q): expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}
