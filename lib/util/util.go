package util

// Chunk splits s into runs of at most size elements. The last run may
// be short; runs alias s.
func Chunk[T any](s []T, size int) [][]T {
	if size < 1 {
		panic("util: chunk size must be positive")
	}
	ret := make([][]T, 0, (len(s)+size-1)/size)
	for len(s) > size {
		ret = append(ret, s[:size:size])
		s = s[size:]
	}
	if len(s) > 0 {
		ret = append(ret, s)
	}
	return ret
}
