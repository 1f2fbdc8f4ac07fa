package utils

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Pokemon", "pokemon"},
		{"One Piece", "one-piece"},
		{"Yu-Gi-Oh!", "yu-gi-oh"},
		{"  Weiss   Schwarz  ", "weiss-schwarz"},
		{"Base Set (1999)", "base-set-1999"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
