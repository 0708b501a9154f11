// Package dtype describes the numeric element types consumed by the filters.
//
// A Descriptor captures the three properties a byte-level numeric transform
// needs to know about its elements: width in bytes, signedness, and byte
// order. Descriptors are immutable values, typically constructed once per
// encode/decode call from a NumPy-style dtype tag such as "i4" or "<u2".
package dtype

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bendichter/numcodec/endian"
)

// Descriptor describes a fixed-width integer element type.
//
// Width must be one of 1, 2, 4 or 8 bytes. Engine selects the byte order
// used to interpret elements on the wire; a nil Engine means little-endian.
type Descriptor struct {
	Width  int
	Signed bool
	Engine endian.EndianEngine
}

// ElemSize returns the element width in bytes.
func (d Descriptor) ElemSize() int {
	return d.Width
}

// ByteOrder returns the descriptor's endian engine, defaulting to
// little-endian when none was set.
func (d Descriptor) ByteOrder() endian.EndianEngine {
	if d.Engine == nil {
		return endian.GetLittleEndianEngine()
	}

	return d.Engine
}

// String renders the descriptor as a NumPy-style tag, e.g. "<i4" or ">u2".
func (d Descriptor) String() string {
	order := "<"
	if d.Engine == endian.GetBigEndianEngine() {
		order = ">"
	}

	kind := "u"
	if d.Signed {
		kind = "i"
	}

	return fmt.Sprintf("%s%s%d", order, kind, d.Width)
}

// Parse constructs a Descriptor from a NumPy-style dtype tag.
//
// The tag consists of an optional byte-order prefix ('<' little, '>' big,
// '=' native, '|' not applicable), a kind character ('i' signed, 'u'
// unsigned) and a width in bytes. Examples: "i4", "<u2", ">i8", "=u1".
//
// Float and other non-integer kinds are rejected: the delta filter operates
// on integers only, and the shuffle filter takes a bare element size rather
// than a dtype.
func Parse(tag string) (Descriptor, error) {
	s := strings.TrimSpace(tag)
	if s == "" {
		return Descriptor{}, fmt.Errorf("empty dtype tag")
	}

	engine := endian.GetLittleEndianEngine()
	switch s[0] {
	case '<', '|':
		s = s[1:]
	case '>':
		engine = endian.GetBigEndianEngine()
		s = s[1:]
	case '=':
		if endian.IsNativeBigEndian() {
			engine = endian.GetBigEndianEngine()
		}
		s = s[1:]
	}

	if len(s) < 2 {
		return Descriptor{}, fmt.Errorf("malformed dtype tag %q", tag)
	}

	var signed bool
	switch s[0] {
	case 'i':
		signed = true
	case 'u':
		signed = false
	default:
		return Descriptor{}, fmt.Errorf("unsupported dtype kind %q in tag %q", s[0], tag)
	}

	width, err := strconv.Atoi(s[1:])
	if err != nil {
		return Descriptor{}, fmt.Errorf("malformed dtype width in tag %q: %w", tag, err)
	}

	switch width {
	case 1, 2, 4, 8:
	default:
		return Descriptor{}, fmt.Errorf("unsupported dtype width %d in tag %q", width, tag)
	}

	return Descriptor{Width: width, Signed: signed, Engine: engine}, nil
}
