package cards

import "testing"

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want uint32 }{
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{12, 8, 4},
		{17, 5, 1},
		{462, 1071, 21},
		{1, 1, 1},
	}
	for _, c := range cases {
		if got := gcd(c.a, c.b); got != c.want {
			t.Errorf("gcd(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
