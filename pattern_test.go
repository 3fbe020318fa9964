package cutstock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPattern_ComputesLengthAndWaste(t *testing.T) {
	p, err := newPattern(map[int]int{50: 2}, 100)
	require.NoError(t, err)
	require.Equal(t, 100, p.TotalLength())
	require.Equal(t, 0, p.Waste())
	require.Equal(t, 2, p.CountOf(50))
	require.Equal(t, 0, p.CountOf(30))
}

func TestNewPattern_RejectsOvercapacity(t *testing.T) {
	_, err := newPattern(map[int]int{60: 2}, 100)
	require.Error(t, err)
}

func TestNewPattern_IDIsStableAndOrderIndependent(t *testing.T) {
	a, err := newPattern(map[int]int{50: 1, 30: 2}, 100)
	require.NoError(t, err)
	b, err := newPattern(map[int]int{30: 2, 50: 1}, 100)
	require.NoError(t, err)
	require.Equal(t, a.ID(), b.ID())
	require.True(t, a.Equal(b))
}

func TestPattern_String(t *testing.T) {
	p, err := newPattern(map[int]int{50: 2}, 100)
	require.NoError(t, err)
	require.Equal(t, "2x50 (waste 0)", p.String())
}

func TestPattern_DropsZeroCounts(t *testing.T) {
	p, err := newPattern(map[int]int{50: 1, 30: 0}, 100)
	require.NoError(t, err)
	require.Equal(t, 0, p.CountOf(30))
	require.Len(t, p.Cuts(), 1)
}
