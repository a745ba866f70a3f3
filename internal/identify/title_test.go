package identify

import "testing"

func TestDeriveTitle(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"/dumps/monster_hunter_portable", "Monster Hunter Portable"},
		{"/dumps/crisis-core", "Crisis Core"},
		{"lumines", "Lumines"},
		{"", "Unknown Disc"},
		{"/dumps/___", "Unknown Disc"},
	}
	for _, tc := range cases {
		if got := DeriveTitle(tc.input); got != tc.want {
			t.Fatalf("DeriveTitle(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
