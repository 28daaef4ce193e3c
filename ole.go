package mtef

import (
	"encoding/binary"
	"errors"
)

// oleCbHdr is the fixed size of the OLE prefix that precedes the MTEF
// body inside an "Equation Native" stream.
const oleCbHdr = 28

// ErrOLEHeader reports a malformed OLE prefix: either the stream is
// shorter than oleCbHdr bytes, or its declared header size doesn't match
// the one fixed layout this package understands.
var ErrOLEHeader = errors.New("mtef: invalid OLE header")

// SplitOLEStream parses the 28-byte OLE prefix wrapping an MTEF body and
// returns the body slice. It does not walk an OLE compound-file directory
// to locate the "Equation Native" stream by name; callers are expected to
// have already located that stream (e.g. via a general-purpose OLE
// reader) and hand its raw bytes to this function.
func SplitOLEStream(stream []byte) ([]byte, error) {
	if len(stream) < oleCbHdr {
		return nil, ErrOLEHeader
	}
	cbHdr := binary.LittleEndian.Uint16(stream[0:2])
	if cbHdr != oleCbHdr {
		return nil, ErrOLEHeader
	}
	// version at [2:6] and cf at [6:8] are part of the OLE prefix but are
	// not interpreted by this package.
	cbSize := binary.LittleEndian.Uint32(stream[8:12])
	end := oleCbHdr + int(cbSize)
	if end > len(stream) {
		end = len(stream)
	}
	return stream[oleCbHdr:end], nil
}
