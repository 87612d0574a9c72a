package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeRotation(t *testing.T) {
	cases := map[int]int{
		0:    0,
		10:   10,
		359:  359,
		360:  0,
		370:  10,
		-10:  350,
		-360: 0,
		-725: 355,
		1080: 0,
	}
	for in, want := range cases {
		require.Equal(t, want, NormalizeRotation(in), "rotation %d", in)
	}
}

func TestClampScale(t *testing.T) {
	require.Equal(t, 0.5, ClampScale(0.1, 0.5, 3))
	require.Equal(t, 3.0, ClampScale(10, 0.5, 3))
	require.Equal(t, 1.25, ClampScale(1.25, 0.5, 3))
	require.Equal(t, 0.5, ClampScale(-4, 0.5, 3))
	require.Equal(t, 1.0, ClampScale(math.NaN(), 0.5, 3))
	require.Equal(t, 3.0, ClampScale(math.Inf(1), 0.5, 3))
}

func TestComputeIconBox(t *testing.T) {
	b := ComputeIconBox(20, 40, 0, 1, false)
	require.Equal(t, 20.0, b.Width)
	require.Equal(t, 40.0, b.Height)
	require.Equal(t, 10.0, b.AnchorX)
	require.Equal(t, 20.0, b.AnchorY)
	require.Equal(t, 1.0, b.ScaleX)

	b = ComputeIconBox(20, 40, 90, 2, true)
	require.Equal(t, 80.0, b.Width)
	require.Equal(t, 40.0, b.Height)
	require.Equal(t, -2.0, b.ScaleX)
	require.Equal(t, 2.0, b.ScaleY)

	b = ComputeIconBox(10, 10, 450, 1, false)
	require.Equal(t, 90, b.Rotation)
}

func TestComputeIconBox_Deterministic(t *testing.T) {
	a := ComputeIconBox(24, 44, 33, 1.7, true)
	b := ComputeIconBox(24, 44, 33, 1.7, true)
	require.Equal(t, a, b)
}

func TestCorners_FlipMirrorsX(t *testing.T) {
	c := Point{X: 100, Y: 100}
	plain := Corners(c, 10, 20, 0, 1, false)
	flipped := Corners(c, 10, 20, 0, 1, true)
	require.InDelta(t, 95, plain[0].X, 1e-9)
	require.InDelta(t, 105, flipped[0].X, 1e-9)
	require.InDelta(t, plain[0].Y, flipped[0].Y, 1e-9)
}

func TestApply_RotatesClockwise(t *testing.T) {
	p := Apply(Point{}, Point{X: 0, Y: -10}, 90, false)
	require.InDelta(t, 10, p.X, 1e-9)
	require.InDelta(t, 0, p.Y, 1e-9)
}
