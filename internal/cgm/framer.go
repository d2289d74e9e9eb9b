package cgm

import "fmt"

// framer parses the two-octet command header, short/long-form argument
// lengths with continuation, and yields (class_code, element_id, arg_bytes)
// tuples. It borrows the caller's byte slice and never copies except to
// concatenate a long-form command's partitions.
type framer struct {
	data []byte
	pos  int
}

func newFramer(data []byte) *framer {
	return &framer{data: data}
}

// frameError is a Fatal diagnostic: a framer invariant was violated
// (corrupt header, negative/impossible lengths). Decode halts at this
// byte; commands framed so far are preserved.
type frameError struct {
	offset int
	reason string
}

func (e *frameError) Error() string {
	return fmt.Sprintf("cgm: frame error at offset %d: %s", e.offset, e.reason)
}

// next yields the next command's header and argument bytes. ok is false
// with a nil error at clean end of stream (fewer than 2 bytes remain).
func (f *framer) next() (hdr Header, args []byte, offset int, ok bool, err error) {
	offset = f.pos
	if f.pos+2 > len(f.data) {
		return Header{}, nil, offset, false, nil
	}
	word := commandWord(uint16(f.data[f.pos])<<8 | uint16(f.data[f.pos+1]))
	f.pos += 2

	paramLen := word.ParamLength()
	if paramLen != longFormMarker {
		args, err = f.readShortForm(paramLen, offset)
	} else {
		args, err = f.readLongForm(offset)
	}
	if err != nil {
		return Header{}, nil, offset, false, err
	}

	hdr = Header{Class: word.Class(), ID: word.ElementID()}
	return hdr, args, offset, true, nil
}

func (f *framer) readShortForm(n int, offset int) ([]byte, error) {
	if f.pos+n > len(f.data) {
		return nil, &frameError{offset: offset, reason: fmt.Sprintf("short-form length %d exceeds remaining stream", n)}
	}
	args := f.data[f.pos : f.pos+n]
	f.pos += n
	f.padToWord(n)
	return args, nil
}

func (f *framer) readLongForm(offset int) ([]byte, error) {
	var partitions [][]byte
	for {
		if f.pos+2 > len(f.data) {
			return nil, &frameError{offset: offset, reason: "long-form partition length truncated"}
		}
		pw := partitionWord(uint16(f.data[f.pos])<<8 | uint16(f.data[f.pos+1]))
		f.pos += 2

		n := pw.length()
		if n < 0 || f.pos+n > len(f.data) {
			return nil, &frameError{offset: offset, reason: fmt.Sprintf("long-form partition length %d exceeds remaining stream", n)}
		}
		partitions = append(partitions, f.data[f.pos:f.pos+n])
		f.pos += n
		f.padToWord(n)

		if !pw.hasMore() {
			break
		}
	}
	if len(partitions) == 1 {
		return partitions[0], nil
	}
	total := 0
	for _, p := range partitions {
		total += len(p)
	}
	joined := make([]byte, 0, total)
	for _, p := range partitions {
		joined = append(joined, p...)
	}
	return joined, nil
}

// padToWord advances past the zero pad byte inserted when a command's total
// argument length is odd, so the next header stays word-aligned.
func (f *framer) padToWord(n int) {
	if n%2 == 1 && f.pos < len(f.data) {
		f.pos++
	}
}

// trailingBytes reports unconsumed bytes after the framer has stopped
// (e.g. after END METAFILE). This is a diagnostic, not fatal.
func (f *framer) trailingBytes() []byte {
	if f.pos >= len(f.data) {
		return nil
	}
	return f.data[f.pos:]
}
