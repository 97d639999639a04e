package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepare_Object(t *testing.T) {
	m := mustGrid(t, [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})

	prep, err := Prepare(m, Object, nil)
	require.NoError(t, err)

	assert.Equal(t, 5, prep.Padded.Rows())
	assert.Equal(t, 5, prep.Padded.Cols())
	require.Len(t, prep.Points, 9)
	assert.Equal(t, Point{1, 1}, prep.Points[0], "points are in padded coordinates")
	assert.Equal(t, Point{3, 3}, prep.Points[8])
}

func TestPrepare_Boundary(t *testing.T) {
	solid := mustGrid(t, [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	})
	plus := mustGrid(t, [][]int{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	})

	tests := []struct {
		name string
		m    *Mask
		e    *Element
		want int
	}{
		{"solid conn8 drops centre", solid, Conn8(), 8},
		{"solid conn4 drops centre", solid, Conn4(), 8},
		{"plus conn8 keeps centre", plus, Conn8(), 5},
		{"plus conn4 drops centre", plus, Conn4(), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prep, err := Prepare(tt.m, Boundary, tt.e)
			require.NoError(t, err)
			assert.Len(t, prep.Points, tt.want)
			for _, p := range prep.Points {
				assert.True(t, prep.Padded.At(p.Row, p.Col), "boundary pixel %v must be foreground", p)
			}
		})
	}
}

func TestPrepare_TooFewPixels(t *testing.T) {
	tests := []struct {
		name string
		grid [][]int
		mode Mode
	}{
		{"empty object", [][]int{{0, 0}, {0, 0}}, Object},
		{"single object", [][]int{{0, 1}, {0, 0}}, Object},
		{"empty boundary", [][]int{{0}}, Boundary},
		{"single boundary", [][]int{{1}}, Boundary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Prepare(mustGrid(t, tt.grid), tt.mode, Conn8())
			assert.ErrorIs(t, err, ErrTooFewPixels)
		})
	}
}

func TestPrepare_Invalid(t *testing.T) {
	_, err := Prepare(nil, Object, nil)
	assert.ErrorIs(t, err, ErrEmptyMask)

	_, err = Prepare(mustGrid(t, [][]int{{1, 1}}), Boundary, nil)
	assert.ErrorIs(t, err, ErrInvalidElement)

	_, err = Prepare(mustGrid(t, [][]int{{1, 1}}), Mode(7), nil)
	assert.Error(t, err)
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "object", Object.String())
	assert.Equal(t, "boundary", Boundary.String())
	assert.Equal(t, "Mode(7)", Mode(7).String())
}
