package extract

// Span slices the exact source bytes covered by a declaration. The result
// is always a contiguous substring of the original file, byte for byte: no
// widening to neighboring comments, no trimming, no re-serialization.
func Span(d *Declaration, source []byte) string {
	return string(source[d.Start:d.End])
}
