package popcode

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
	"strings"

	"vouch-backend/internal/pkg/errs"
)

// Length of a proof-of-presence display code in hex characters.
const Length = 8

var codePattern = regexp.MustCompile(`^[0-9A-F]{8}$`)

// New returns a short uppercase hex code shown to the customer after a
// completed vouch. It is a display artifact, not a security credential; the
// signed voucher token is the actual boundary.
func New() (string, error) {
	buf := make([]byte, Length/2)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "popcode: failed to read random bytes")
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

// Valid reports whether s has the shape of a generated code.
func Valid(s string) bool {
	return codePattern.MatchString(s)
}
