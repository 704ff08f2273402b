package service

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Power Tools & Drills", "power-tools-drills"},
		{"  Leading spaces", "leading-spaces"},
		{"Trailing!!!", "trailing"},
		{"MiXeD CaSe 42", "mixed-case-42"},
		{"already-slugged", "already-slugged"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := slugify(tc.in); got != tc.want {
			t.Errorf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
