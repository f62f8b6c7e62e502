package common

import "testing"

func TestFramesFor(t *testing.T) {
	cases := []struct {
		ms, tps, want int
	}{
		{0, 60, 0},
		{-5, 60, 0},
		{500, 60, 30},
		{2000, 60, 120},
		{1, 60, 1},
		{900, 0, 0},
	}
	for _, tc := range cases {
		if got := FramesFor(tc.ms, tc.tps); got != tc.want {
			t.Fatalf("FramesFor(%d, %d) = %d, want %d", tc.ms, tc.tps, got, tc.want)
		}
	}
}
