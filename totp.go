package totpgate

import (
	"bytes"
	"image/png"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

type totpManager struct {
	config TOTPConfig
}

func newTOTPManager(cfg TOTPConfig) *totpManager {
	if cfg.Algorithm == "" {
		cfg.Algorithm = "SHA256"
	}
	return &totpManager{config: cfg}
}

func (m *totpManager) algorithm() otp.Algorithm {
	switch strings.ToUpper(m.config.Algorithm) {
	case "SHA1":
		return otp.AlgorithmSHA1
	case "SHA512":
		return otp.AlgorithmSHA512
	default:
		return otp.AlgorithmSHA256
	}
}

func (m *totpManager) digits() otp.Digits {
	if m.config.Digits == 8 {
		return otp.DigitsEight
	}
	return otp.DigitsSix
}

// Provision generates a fresh shared secret for the account and returns the
// provisioning key. The account label is "<username> - <id>" so a user with
// several accounts can tell the entries apart in their authenticator.
func (m *totpManager) Provision(accountID, username string) (*otp.Key, error) {
	return totp.Generate(totp.GenerateOpts{
		Issuer:      m.config.Issuer,
		AccountName: username + " - " + accountID,
		Period:      uint(m.config.Period),
		SecretSize:  uint(m.config.SecretSize),
		Digits:      m.digits(),
		Algorithm:   m.algorithm(),
	})
}

// Verify checks code against the stored secret at the given instant,
// accepting the configured skew either side of the current step. Any
// internal verification failure reads as "no match", never as a crash.
func (m *totpManager) Verify(secretBase32, code string, at time.Time) bool {
	ok, err := totp.ValidateCustom(strings.TrimSpace(code), secretBase32, at, totp.ValidateOpts{
		Period:    uint(m.config.Period),
		Skew:      uint(m.config.Skew),
		Digits:    m.digits(),
		Algorithm: m.algorithm(),
	})
	return err == nil && ok
}

// QRCode renders the provisioning URI as a PNG sized for authenticator
// scanning.
func (m *totpManager) QRCode(key *otp.Key) ([]byte, error) {
	img, err := key.Image(m.config.QRSize, m.config.QRSize)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
