package rawmem

import "errors"

var (
	// ErrCapacityNegative indicates a request for a negative slot count.
	ErrCapacityNegative = errors.New("rawmem: negative capacity")

	// ErrSizeOverflow indicates that capacity * element size does not fit in int.
	ErrSizeOverflow = errors.New("rawmem: slot count times element size overflows")

	// ErrBlockTooLarge indicates a request beyond the per-block byte limit.
	ErrBlockTooLarge = errors.New("rawmem: block exceeds size limit")
)
