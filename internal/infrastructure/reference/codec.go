// Package reference produces the opaque callback reference embedded in the
// gateway return URL. Encoding is deterministic and authenticated: the same
// buy order always yields the same reference, and any reference not minted
// with the configured secret fails to decode.
package reference

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/DanielPopoola/webpay-gateway/internal/domain"
	"golang.org/x/crypto/hkdf"
)

const (
	keySize   = 32
	nonceSize = 12
	minSecret = 16
)

var (
	ErrSecretTooShort = errors.New("reference secret must be at least 16 characters")
	ErrMalformed      = errors.New("reference is malformed")
	ErrForged         = errors.New("reference failed authentication")
)

var encoding = base64.RawURLEncoding

// Codec implements AES-256-GCM with a synthetic nonce derived from the
// plaintext, so encryption needs no randomness and stays reversible.
type Codec struct {
	aead   cipher.AEAD
	macKey []byte
}

func NewCodec(secret string) (*Codec, error) {
	if len(secret) < minSecret {
		return nil, ErrSecretTooShort
	}

	kdf := hkdf.New(sha256.New, []byte(secret), nil, []byte("webpay-gateway callback reference"))
	encKey := make([]byte, keySize)
	macKey := make([]byte, keySize)
	if _, err := io.ReadFull(kdf, encKey); err != nil {
		return nil, fmt.Errorf("derive encryption key: %w", err)
	}
	if _, err := io.ReadFull(kdf, macKey); err != nil {
		return nil, fmt.Errorf("derive mac key: %w", err)
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &Codec{aead: aead, macKey: macKey}, nil
}

func (c *Codec) Encode(plaintext string) (string, error) {
	if plaintext == "" {
		return "", domain.NewValidationError(domain.ErrCodeInvalidBuyOrder, "nothing to encode")
	}

	nonce := c.syntheticNonce([]byte(plaintext))
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return encoding.EncodeToString(sealed), nil
}

// Decode reverses Encode. Every failure is reported as an invalid reference.
func (c *Codec) Decode(reference string) (string, error) {
	raw, err := encoding.DecodeString(reference)
	if err != nil {
		return "", domain.NewInvalidReferenceError(domain.ErrCodeInvalidReference, fmt.Errorf("%w: %v", ErrMalformed, err))
	}
	if len(raw) < nonceSize+c.aead.Overhead()+1 {
		return "", domain.NewInvalidReferenceError(domain.ErrCodeInvalidReference, ErrMalformed)
	}

	nonce, ciphertext := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", domain.NewInvalidReferenceError(domain.ErrCodeInvalidReference, ErrForged)
	}

	if !hmac.Equal(nonce, c.syntheticNonce(plaintext)) {
		return "", domain.NewInvalidReferenceError(domain.ErrCodeInvalidReference, ErrForged)
	}

	return string(plaintext), nil
}

func (c *Codec) syntheticNonce(plaintext []byte) []byte {
	mac := hmac.New(sha256.New, c.macKey)
	mac.Write(plaintext)
	return mac.Sum(nil)[:nonceSize]
}
