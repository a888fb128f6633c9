package plot

import "strconv"

// SizeError is returned by Render when the image has no pixels.
type SizeError struct {
	Width, Height int
}

func (err *SizeError) Error() string {
	return "invalid image size " + strconv.Itoa(err.Width) + "x" + strconv.Itoa(err.Height)
}

// RangeError is returned by Render when the plot range is not positive.
type RangeError struct {
	Max float64
}

func (err *RangeError) Error() string {
	return "invalid plot range " + strconv.FormatFloat(err.Max, 'g', -1, 64)
}
