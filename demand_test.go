package cutstock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeDemand_MergesDuplicateLengths(t *testing.T) {
	raw := []DemandInput{
		{Length: 50, Quantity: 2, Priority: PriorityLow},
		{Length: 50, Quantity: 1, Priority: PriorityHigh},
		{Length: 30, Quantity: 1, Priority: PriorityNormal},
	}
	lines, err := normalizeDemand(raw, 100, 0)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	require.Equal(t, 50, lines[0].Length)
	require.Equal(t, 3, lines[0].Quantity)
	require.Equal(t, PriorityHigh, lines[0].Priority)
	require.Equal(t, 30, lines[1].Length)
}

func TestNormalizeDemand_SortedDescending(t *testing.T) {
	raw := []DemandInput{
		{Length: 10, Quantity: 1, Priority: PriorityNormal},
		{Length: 90, Quantity: 1, Priority: PriorityNormal},
		{Length: 40, Quantity: 1, Priority: PriorityNormal},
	}
	lines, err := normalizeDemand(raw, 100, 0)
	require.NoError(t, err)
	require.Equal(t, []int{90, 40, 10}, []int{lines[0].Length, lines[1].Length, lines[2].Length})
}

func TestNormalizeDemand_Rejections(t *testing.T) {
	_, err := normalizeDemand(nil, 100, 0)
	require.ErrorIs(t, err, ErrEmptyDemand)

	_, err = normalizeDemand([]DemandInput{{Length: 0, Quantity: 1}}, 100, 0)
	require.ErrorIs(t, err, ErrNonPositiveLength)

	_, err = normalizeDemand([]DemandInput{{Length: 10, Quantity: 0}}, 100, 0)
	require.ErrorIs(t, err, ErrNonPositiveQuantity)

	_, err = normalizeDemand([]DemandInput{{Length: 200, Quantity: 1}}, 100, 0)
	require.ErrorIs(t, err, ErrLengthExceedsRoll)

	_, err = normalizeDemand([]DemandInput{{Length: 10, Quantity: 20}}, 100, 10)
	require.ErrorIs(t, err, ErrDemandCapExceeded)
}

func TestTotalQuantityAndLength(t *testing.T) {
	lines := []demandLine{{Length: 50, Quantity: 2}, {Length: 30, Quantity: 3}}
	require.Equal(t, 5, totalQuantity(lines))
	require.Equal(t, 50*2+30*3, totalDemandLength(lines))
	require.Equal(t, 50, maxLength(lines))
}
