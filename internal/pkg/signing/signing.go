package signing

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"encoding/pem"
	"strings"
	"time"

	"vouch-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPEM        = errs.New("signer: invalid PEM private key")
	ErrUnsupportedKey    = errs.New("signer: key is not an EC private key")
	ErrSignatureEncoding = errs.New("signer: signature is not valid hex")
)

// Payload is the canonical content signed into a voucher token. Field order is
// fixed by the struct declaration; Canonical output is byte-stable for a given
// payload, so the signature can be re-verified at redemption time.
type Payload struct {
	Customer  uuid.UUID `json:"customer"`
	Campaign  uuid.UUID `json:"campaign"`
	Timestamp int64     `json:"timestamp"` // unix milliseconds
	Nonce     string    `json:"nonce"`
}

func NewPayload(customerID, campaignID uuid.UUID, issuedAt time.Time, nonce string) Payload {
	return Payload{
		Customer:  customerID,
		Campaign:  campaignID,
		Timestamp: issuedAt.UnixMilli(),
		Nonce:     nonce,
	}
}

func (p Payload) Canonical() []byte {
	// json.Marshal over a struct emits fields in declaration order.
	data, _ := json.Marshal(p)
	return data
}

// NewNonce returns fresh random hex used to make every signed payload unique,
// even for the same (customer, campaign) pair.
func NewNonce() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "signer: failed to read random nonce")
	}
	return hex.EncodeToString(buf), nil
}

// Signer holds the service's EC private key. The key is read-only after load
// and safe for concurrent Sign calls.
type Signer struct {
	key *ecdsa.PrivateKey
}

// Load parses a PEM-encoded EC private key (PKCS#8 or SEC1). Escaped "\n"
// sequences are unfolded first so single-line env values work.
func Load(pemKey string) (*Signer, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(pemKey), `\n`, "\n")

	block, _ := pem.Decode([]byte(normalized))
	if block == nil {
		return nil, ErrInvalidPEM
	}

	if key, err := x509.ParseECPrivateKey(block.Bytes); err == nil {
		return &Signer{key: key}, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidPEM)
	}

	key, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return nil, ErrUnsupportedKey
	}
	return &Signer{key: key}, nil
}

// GenerateKey creates a fresh P-256 signer. Production keys come from
// configuration; this exists for tests and local key bootstrapping.
func GenerateKey() (*Signer, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, errs.Wrap(err, "signer: failed to generate key")
	}
	return &Signer{key: key}, nil
}

// PEM returns the signer's private key encoded as PKCS#8 PEM.
func (s *Signer) PEM() (string, error) {
	der, err := x509.MarshalPKCS8PrivateKey(s.key)
	if err != nil {
		return "", errs.Wrap(err, "signer: failed to marshal key")
	}
	return string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})), nil
}

// Sign produces the hex-encoded ECDSA signature over SHA-256 of the canonical
// payload. The hex string doubles as the voucher's unique token.
func (s *Signer) Sign(payload Payload) (string, error) {
	digest := sha256.Sum256(payload.Canonical())
	sig, err := ecdsa.SignASN1(rand.Reader, s.key, digest[:])
	if err != nil {
		return "", errs.Wrap(err, "signer: failed to sign payload")
	}
	return hex.EncodeToString(sig), nil
}

// Verify reports whether hexSig is a valid signature over the payload made by
// this signer's key pair.
func (s *Signer) Verify(payload Payload, hexSig string) (bool, error) {
	sig, err := hex.DecodeString(hexSig)
	if err != nil {
		return false, ErrSignatureEncoding
	}
	digest := sha256.Sum256(payload.Canonical())
	return ecdsa.VerifyASN1(&s.key.PublicKey, digest[:], sig), nil
}
