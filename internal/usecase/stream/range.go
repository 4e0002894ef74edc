package stream

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrRangeNotSatisfiable signals that a Range header asked for bytes outside
// the file. Responses carry `Content-Range: bytes */<size>`.
var ErrRangeNotSatisfiable = errors.New("requested range not satisfiable")

// ByteRange is an inclusive byte interval within a file.
type ByteRange struct {
	Start int64
	End   int64
}

// Length returns the number of bytes the range covers.
func (r ByteRange) Length() int64 {
	return r.End - r.Start + 1
}

// ContentRange renders the Content-Range header value for a file of the
// given total size.
func (r ByteRange) ContentRange(size int64) string {
	return fmt.Sprintf("bytes %d-%d/%d", r.Start, r.End, size)
}

var rangeSpec = regexp.MustCompile(`(\d+)-(\d*)`)

// ParseRange interprets a Range header against a file of the given size.
// A missing end means "through the last byte". Headers without a parseable
// byte interval resolve to the whole file. The only error is
// ErrRangeNotSatisfiable, when the interval falls outside the file.
func ParseRange(header string, size int64) (ByteRange, error) {
	start, end := int64(0), size-1

	if m := rangeSpec.FindStringSubmatch(header); m != nil {
		// the submatch is all digits, so parse errors mean overflow
		if v, err := strconv.ParseInt(m[1], 10, 64); err == nil {
			start = v
		} else {
			return ByteRange{}, ErrRangeNotSatisfiable
		}
		if m[2] != "" {
			v, err := strconv.ParseInt(m[2], 10, 64)
			if err != nil {
				return ByteRange{}, ErrRangeNotSatisfiable
			}
			end = v
		}
	}

	if start >= size || end >= size || start > end {
		return ByteRange{}, ErrRangeNotSatisfiable
	}
	return ByteRange{Start: start, End: end}, nil
}
