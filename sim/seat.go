package sim

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSeatLabel is returned when a seat string is not of the form "x,y".
var ErrInvalidSeatLabel = errors.New("invalid seat label")

// SeatLabel formats the label of the seat at column x, row y.
func SeatLabel(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// ParseSeat splits a seat label into its column and row.
func ParseSeat(label string) (x, y int, err error) {
	xs, ys, ok := strings.Cut(label, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSeatLabel, label)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSeatLabel, label)
	}
	return x, y, nil
}

// seatRow returns the row of a seat label, or -1 when it does not parse.
// Used by the row-sorting ordering policies, which skip rather than fail.
func seatRow(label string) int {
	_, y, err := ParseSeat(label)
	if err != nil {
		return -1
	}
	return y
}
