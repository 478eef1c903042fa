package armstrong

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b int
		want Bounds
	}{
		{"already ordered", 10, 100, Bounds{10, 100}},
		{"swapped", 100, 10, Bounds{10, 100}},
		{"equal", 7, 7, Bounds{7, 7}},
		{"negative", 5, -5, Bounds{-5, 5}},
		{"extremes", math.MaxInt, math.MinInt, Bounds{math.MinInt, math.MaxInt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.a, tt.b))
		})
	}
}

func TestBoundsSpan(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(0), Bounds{3, 3}.Span())
	assert.Equal(t, uint64(90), Bounds{10, 100}.Span())
	assert.Equal(t, uint64(20), Bounds{-10, 10}.Span())
	assert.Equal(t, uint64(math.MaxUint64), Bounds{math.MinInt, math.MaxInt}.Span())
}

func TestDigitCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want int
	}{
		{-153, 0},
		{-1, 0},
		{0, 0},
		{1, 1},
		{9, 1},
		{10, 2},
		{153, 3},
		{9926315, 7},
		{math.MaxInt64, 19},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DigitCount(tt.n), "DigitCount(%d)", tt.n)
	}
}

func TestPowerSum(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want int
	}{
		{-407, 0},
		{0, 0},
		{5, 5},
		{10, 1},
		{12, 5},
		{153, 153},
		{154, 190},
		{1634, 1634},
	}

	for _, tt := range tests {
		got, ok := PowerSum(tt.n)
		require.True(t, ok, "PowerSum(%d) overflowed", tt.n)
		assert.Equal(t, tt.want, got, "PowerSum(%d)", tt.n)
	}
}

func TestPowerSum_Overflow(t *testing.T) {
	t.Parallel()

	// Eighteen nines raised to the 19th power do not fit in an int64.
	_, ok := PowerSum(8999999999999999999)
	assert.False(t, ok)
}

func TestIPow(t *testing.T) {
	t.Parallel()

	for d := 0; d <= 9; d++ {
		for count := 1; count <= 10; count++ {
			want := int(math.Pow(float64(d), float64(count)))
			assert.Equal(t, want, ipow(d, count), "ipow(%d, %d)", d, count)
		}
	}
	assert.Equal(t, 1, ipow(0, 0))
	assert.Equal(t, 1350851717672992089, ipow(9, 19))
}

func TestIsArmstrong(t *testing.T) {
	t.Parallel()

	armstrong := []int{0, 1, 2, 9, 153, 370, 371, 407, 1634, 8208, 9474, 54748, 92727, 93084, 548834, 4679307774}
	for _, n := range armstrong {
		assert.True(t, IsArmstrong(n), "%d should be an Armstrong number", n)
	}

	other := []int{-1, -153, 10, 100, 152, 154, 1000, 9475, math.MaxInt64}
	for _, n := range other {
		assert.False(t, IsArmstrong(n), "%d should not be an Armstrong number", n)
	}
}

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		bounds Bounds
		want   []int
	}{
		{"three digits", Bounds{100, 999}, []int{153, 370, 371, 407}},
		{"none between ten and one hundred", Bounds{10, 100}, nil},
		{"single digits include zero", Bounds{0, 9}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"negatives never match", Bounds{-50, -1}, nil},
		{"straddling zero", Bounds{-3, 3}, []int{0, 1, 2, 3}},
		{"single value match", Bounds{153, 153}, []int{153}},
		{"single value miss", Bounds{154, 154}, nil},
		{"four digits", Bounds{1000, 9999}, []int{1634, 8208, 9474}},
		{"inverted bounds are empty", Bounds{10, 1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Scan(tt.bounds))
		})
	}
}

func TestScan_AscendingWithoutDuplicates(t *testing.T) {
	t.Parallel()

	found := Scan(Bounds{-1000, 100000})
	require.NotEmpty(t, found)
	for i := 1; i < len(found); i++ {
		assert.Less(t, found[i-1], found[i])
	}
}

func TestScan_Idempotent(t *testing.T) {
	t.Parallel()

	b := Normalize(99999, 0)
	assert.Equal(t, Scan(b), Scan(b))
}

func TestEach_TerminatesAtMaxInt(t *testing.T) {
	t.Parallel()

	var visited int
	err := Each(Bounds{math.MaxInt - 5, math.MaxInt}, func(int) error {
		visited++
		return nil
	})
	require.NoError(t, err)
	assert.Zero(t, visited)
}

func TestEach_StopsOnError(t *testing.T) {
	t.Parallel()

	stop := assert.AnError
	var seen []int
	err := Each(Bounds{0, 999}, func(n int) error {
		seen = append(seen, n)
		if n == 153 {
			return stop
		}
		return nil
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 153}, seen)
}
