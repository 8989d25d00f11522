package textual

import "bytes"

// ScanLines is a split function for a [Scanner] that returns each line of
// text, keeping any trailing end-of-line marker. The returned line may
// be empty. It is different from bufio.ScanLines, which drops the trailing
// '\n' and any '\r' right before it; here both are kept in the token.
//
// Keeping '\n' is also what makes every token it produces safe to feed
// directly into cowstring.FromBytes: '\n' is a single ASCII byte, so it can
// never be a continuation byte of a multi-byte UTF-8 rune, and a token
// boundary placed right after it is therefore always also a rune boundary.
// IOReaderProcessor and IngestLines rely on that property instead of
// re-validating each token's UTF-8 before handing it to TextFrom.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// No data and nothing more to read.
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	// Look for '\n'. If found, include it in the token.
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}

	// If we're at EOF, return the final (non-newline-terminated) line.
	if atEOF {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}
