package record

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/danmuck/shapectl/internal/shape"
)

const (
	// TagSize is the wire width of the kind tag.
	TagSize = 4
	// ParamSize is the wire width of one parameter.
	ParamSize = 8
)

var (
	ErrTruncated  = errors.New("record: truncated data")
	ErrParamCount = errors.New("record: parameter count mismatch")
)

// ReadTag reads the fixed-width kind tag. Short reads fail; nothing is
// partially consumed on the caller's behalf.
func ReadTag(r io.Reader) (uint32, error) {
	var buf [TagSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, ErrTruncated
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

// ReadParams reads exactly n parameters. Partial reads are failures, never
// partial results.
func ReadParams(r io.Reader, n int) ([]float64, error) {
	buf := make([]byte, n*ParamSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, ErrTruncated
	}
	params := make([]float64, n)
	for i := range params {
		bits := binary.LittleEndian.Uint64(buf[i*ParamSize:])
		params[i] = math.Float64frombits(bits)
	}
	return params, nil
}

// Size reports the wire size of one record of the given kind.
func Size(kind shape.Kind) int {
	return TagSize + kind.ParamCount()*ParamSize
}

// EncodeRecord produces the wire form of one record without validating the
// parameter count; tests use it to build malformed records.
func EncodeRecord(kind shape.Kind, params []float64) []byte {
	buf := make([]byte, TagSize+len(params)*ParamSize)
	binary.LittleEndian.PutUint32(buf[0:TagSize], uint32(kind))
	for i, p := range params {
		binary.LittleEndian.PutUint64(buf[TagSize+i*ParamSize:], math.Float64bits(p))
	}
	return buf
}

// WriteRecord encodes one record, enforcing the kind's parameter count.
func WriteRecord(w io.Writer, kind shape.Kind, params []float64) error {
	if len(params) != kind.ParamCount() {
		return fmt.Errorf("%w: %s wants %d, got %d",
			ErrParamCount, kind, kind.ParamCount(), len(params))
	}
	_, err := w.Write(EncodeRecord(kind, params))
	return err
}
