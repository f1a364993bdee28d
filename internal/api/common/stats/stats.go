// Package stats reduces reading values to summary statistics.
// Every function leaves its input untouched and fails with an
// EmptyInputError when there is nothing to reduce.
package stats

import (
	"math"
	"sort"

	commonerrors "readings-api-server/internal/api/common/errors"
)

func Min(values []int) (int, error) {
	if len(values) == 0 {
		return 0, commonerrors.EmptyInputErr("min")
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min, nil
}

func Max(values []int) (int, error) {
	if len(values) == 0 {
		return 0, commonerrors.EmptyInputErr("max")
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max, nil
}

func Mean(values []int) (float64, error) {
	if len(values) == 0 {
		return 0, commonerrors.EmptyInputErr("mean")
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values)), nil
}

// Median averages the two middle values when the input has even length.
func Median(values []int) (float64, error) {
	if len(values) == 0 {
		return 0, commonerrors.EmptyInputErr("median")
	}
	sorted := sortedCopy(values)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid]), nil
	}
	return (float64(sorted[mid-1]) + float64(sorted[mid])) / 2, nil
}

// Mode returns the most frequent value. Ties for the highest count go to
// the smallest value, unless every distinct value is equally frequent, in
// which case there is no mode at all.
func Mode(values []int) (int, error) {
	if len(values) == 0 {
		return 0, commonerrors.EmptyInputErr("mode")
	}

	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}

	var (
		mode      int
		best      int
		uniform   = true
		lastCount = -1
	)
	for value, count := range counts {
		if lastCount != -1 && count != lastCount {
			uniform = false
		}
		lastCount = count

		if count > best || (count == best && value < mode) {
			mode = value
			best = count
		}
	}

	if uniform && len(counts) > 1 {
		return 0, commonerrors.NoUniqueModeErr(len(counts))
	}
	return mode, nil
}

// Percentile interpolates linearly between the closest ranks, the rank of
// p being p*(n-1) over the sorted values. p is a fraction in [0, 1].
func Percentile(values []int, p float64) (float64, error) {
	if len(values) == 0 {
		return 0, commonerrors.EmptyInputErr("percentile")
	}
	return percentile(sortedCopy(values), p), nil
}

func Quartiles(values []int) (q1, q3 float64, err error) {
	if len(values) == 0 {
		return 0, 0, commonerrors.EmptyInputErr("quartiles")
	}
	sorted := sortedCopy(values)
	return percentile(sorted, 0.25), percentile(sorted, 0.75), nil
}

func percentile(sorted []int, p float64) float64 {
	p = math.Max(0, math.Min(1, p))

	rank := p * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return float64(sorted[lower])
	}

	fraction := rank - float64(lower)
	return float64(sorted[lower]) + fraction*float64(sorted[upper]-sorted[lower])
}

func sortedCopy(values []int) []int {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)
	return sorted
}
