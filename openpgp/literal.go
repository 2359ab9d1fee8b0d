// This is free and unencumbered software released into the public domain.

package openpgp

// literalData is a parsed Literal Data packet body (spec.md §3).
type literalData struct {
	format   byte
	filename []byte
	mtime    uint32
	payload  []byte
}

const (
	literalFormatBinary = 'b'
	literalFormatText   = 't'
)

// parseLiteral decodes a Literal Data packet body per spec.md §6:
// format:u8 | fname_len:u8 | fname | mtime:u32 BE | payload.
func parseLiteral(body []byte) (literalData, error) {
	if len(body) < 1+1+4 {
		return literalData{}, newErr(ErrInvalidPacket)
	}
	format := body[0]
	fnameLen := int(body[1])
	p := 2
	if len(body) < p+fnameLen+4 {
		return literalData{}, newErr(ErrInvalidPacket)
	}
	fname := body[p : p+fnameLen]
	p += fnameLen
	mtime := uint32(body[p])<<24 | uint32(body[p+1])<<16 | uint32(body[p+2])<<8 | uint32(body[p+3])
	p += 4
	return literalData{format: format, filename: fname, mtime: mtime, payload: body[p:]}, nil
}

// buildLiteral serializes a Literal Data packet body, per spec.md §4.10
// step 1: format 'b', empty filename, mtime 0.
func buildLiteral(payload []byte) []byte {
	out := make([]byte, 0, 1+1+4+len(payload))
	out = append(out, literalFormatBinary)
	out = append(out, 0)          // filename length
	out = append(out, 0, 0, 0, 0) // mtime
	out = append(out, payload...)
	return out
}
