package utils

import "math"

// ChunkBySize splits slice into chunks with maximum size 'chunkSize'
func ChunkBySize[T any](slice []T, chunkSize int) [][]T {
	if len(slice) == 0 {
		return [][]T{}
	}
	if chunkSize <= 0 {
		return [][]T{slice}
	}

	chunks := make([][]T, 0, (len(slice)+chunkSize-1)/chunkSize)
	for i := 0; i < len(slice); i += chunkSize {
		end := min(i+chunkSize, len(slice))
		chunks = append(chunks, slice[i:end])
	}
	return chunks
}

// 2^63, the first float64 past math.MaxInt64.
const int64Limit = float64(1 << 63)

// IntegerSpan returns the first and last integers inside [lo, hi] and how
// many there are. ok is false when the interval holds no integer, a bound
// is not finite, or the count does not fit in an int64.
func IntegerSpan(lo, hi float64) (first, last int64, count int64, ok bool) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return 0, 0, 0, false
	}
	f, l := math.Ceil(lo), math.Floor(hi)
	if f > l {
		return 0, 0, 0, false
	}
	if f < -int64Limit || l >= int64Limit || l-f+1 >= int64Limit {
		return 0, 0, 0, false
	}
	first, last = int64(f), int64(l)
	return first, last, last - first + 1, true
}
