package dump

import "testing"

func TestLookupCategory(t *testing.T) {
	cases := []struct {
		code string
		want Category
	}{
		{"1", CategoryGames},
		{"GAME", CategoryGames},
		{"game", CategoryGames},
		{"2", CategoryVideo},
		{"VIDEO", CategoryVideo},
		{"3", CategoryAudio},
		{" audio ", CategoryAudio},
		{"0", CategoryUnknown},
		{"", CategoryUnknown},
		{"bogus", CategoryUnknown},
	}
	for _, tc := range cases {
		if got := LookupCategory(tc.code); got != tc.want {
			t.Fatalf("LookupCategory(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
