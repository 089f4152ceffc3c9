package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"math/big"
	"strings"
)

const tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// NewSecret returns a random alphanumeric payload of the given length from
// the process CSPRNG.
func NewSecret(length int) (string, error) {
	if length < 1 {
		return "", errors.New("session: invalid secret length")
	}

	var b strings.Builder
	b.Grow(length)

	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(tokenAlphabet[n.Int64()])
	}
	return b.String(), nil
}

// Encode joins the base64-encoded account id and the secret payload into
// the wire token form.
func Encode(accountID, secret string) string {
	return base64.RawStdEncoding.EncodeToString([]byte(accountID)) + "." + secret
}

// Decode splits a wire token back into account id and secret payload. The
// decoded id is a hint for traceability, not proof of ownership.
func Decode(token string) (accountID, secret string, err error) {
	idPart, secret, ok := strings.Cut(token, ".")
	if !ok || idPart == "" || secret == "" {
		return "", "", errors.New("session: malformed token")
	}

	raw, err := base64.RawStdEncoding.DecodeString(idPart)
	if err != nil {
		return "", "", errors.New("session: malformed token id")
	}
	return string(raw), secret, nil
}
