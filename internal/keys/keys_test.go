package keys

import "testing"

func TestHeroSetKey(t *testing.T) {
	cases := []struct {
		ids  []uint
		want string
	}{
		{nil, ""},
		{[]uint{7}, "7"},
		{[]uint{3, 1, 2}, "1,2,3"},
		{[]uint{2, 1}, "1,2"},
		{[]uint{1, 2}, "1,2"},
	}
	for _, tc := range cases {
		if got := HeroSetKey(tc.ids); got != tc.want {
			t.Fatalf("HeroSetKey(%v) = %q, want %q", tc.ids, got, tc.want)
		}
	}
}
