package wizard

import "crypto/rand"

const (
	referencePrefix = "JAP"
	referenceLength = 12
	// 32 symbols, ambiguous characters (0, O, 1, I) excluded.
	referenceCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// fallbackReference generates a local tracking code for submissions where
// the server did not return an applicant code.
func fallbackReference() string {
	buf := make([]byte, referenceLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand only fails when the OS entropy source is broken.
		for i := range buf {
			buf[i] = referenceCharset[i%len(referenceCharset)]
		}
	}
	out := make([]byte, 0, len(referencePrefix)+referenceLength)
	out = append(out, referencePrefix...)
	for _, b := range buf {
		out = append(out, referenceCharset[int(b)%len(referenceCharset)])
	}
	return string(out)
}
