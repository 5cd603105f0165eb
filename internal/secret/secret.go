// Package secret seals the Pushover API token before it touches disk.
// The sealing key lives in the OS keyring, so the settings file only
// ever sees an opaque blob. Hosts without a usable keyring fall back to
// a marked plaintext blob: the app keeps working, callers warn that the
// token sits on disk unprotected.
package secret

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	keyring "github.com/zalando/go-keyring"
	"golang.org/x/crypto/nacl/secretbox"
)

// Service is the keyring service the sealing key is stored under.
const Service = "PushoverNotifier"

const keyAccount = "sealing-key"

// The first byte of every stored blob records how the rest is encoded.
const (
	blobPlain  = 0x00
	blobSealed = 0x01
)

const (
	keySize   = 32
	nonceSize = 24
)

// ErrDecrypt means a sealed blob could not be opened, usually because
// the keyring entry changed or the blob was written by another user.
var ErrDecrypt = errors.New("secret: token cannot be decrypted")

// Box wraps and unwraps tokens with the keyring-held sealing key. An
// unprotected Box passes tokens through as marked plaintext instead of
// failing, so a missing keyring never blocks the app.
type Box struct {
	key       [keySize]byte
	protected bool
}

// Open loads the sealing key from the OS keyring, generating and
// storing one on first use. A platform without any keyring yields an
// unprotected Box; a keyring that exists but fails to answer is an
// error, so a transient outage never quietly downgrades sealed storage
// to plaintext. Callers that want to continue anyway fall back to
// Unprotected explicitly.
func Open() (*Box, error) {
	stored, err := keyring.Get(Service, keyAccount)
	switch {
	case err == nil:
		if key, ok := decodeKey(stored); ok {
			return &Box{key: key, protected: true}, nil
		}
		// The entry exists but is unusable. Replace it: blobs sealed
		// with the old key are unrecoverable either way.
		return generate()
	case errors.Is(err, keyring.ErrNotFound):
		return generate()
	case errors.Is(err, keyring.ErrUnsupportedPlatform):
		return Unprotected(), nil
	default:
		return nil, fmt.Errorf("secret: keyring: %w", err)
	}
}

// Unprotected returns a Box that passes tokens through as marked
// plaintext. It is the deliberate fallback after Open fails; whoever
// chooses it owns warning the user.
func Unprotected() *Box {
	return &Box{}
}

// Available reports whether the OS keyring can serve this process. The
// doctor command uses it to explain why a token would be stored
// unprotected.
func Available() bool {
	_, err := keyring.Get(Service, keyAccount)
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}

// Protected reports whether tokens are sealed with a keyring-held key.
func (b *Box) Protected() bool {
	return b.protected
}

// Wrap seals token into a blob safe to persist. Without keyring
// protection the token is stored as marked plaintext; Sealed lets
// callers tell the difference.
func (b *Box) Wrap(token string) ([]byte, error) {
	if !b.protected {
		return append([]byte{blobPlain}, token...), nil
	}

	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 1, 1+nonceSize+len(token)+secretbox.Overhead)
	blob[0] = blobSealed
	blob = append(blob, nonce[:]...)
	return secretbox.Seal(blob, []byte(token), &nonce, &b.key), nil
}

// Unwrap recovers the token from a stored blob. Plaintext blobs pass
// through regardless of protection, so settings written on a
// keyring-less host stay readable everywhere.
func (b *Box) Unwrap(blob []byte) (string, error) {
	if len(blob) == 0 {
		return "", nil
	}

	switch blob[0] {
	case blobPlain:
		return string(blob[1:]), nil
	case blobSealed:
		if len(blob) < 1+nonceSize+secretbox.Overhead {
			return "", fmt.Errorf("%w: blob truncated", ErrDecrypt)
		}
		var nonce [nonceSize]byte
		copy(nonce[:], blob[1:1+nonceSize])
		plain, ok := secretbox.Open(nil, blob[1+nonceSize:], &nonce, &b.key)
		if !ok {
			return "", ErrDecrypt
		}
		return string(plain), nil
	default:
		return "", fmt.Errorf("%w: unknown blob format 0x%02x", ErrDecrypt, blob[0])
	}
}

// Sealed reports whether blob was written with keyring protection.
func Sealed(blob []byte) bool {
	return len(blob) > 0 && blob[0] == blobSealed
}

func generate() (*Box, error) {
	var key [keySize]byte
	if _, err := rand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("generate sealing key: %w", err)
	}
	if err := keyring.Set(Service, keyAccount, base64.StdEncoding.EncodeToString(key[:])); err != nil {
		// Key cannot be persisted, so sealing with it would strand the
		// token. Nothing sealed exists under this key yet, so plaintext
		// is safe to fall back to.
		return Unprotected(), nil
	}
	return &Box{key: key, protected: true}, nil
}

func decodeKey(stored string) ([keySize]byte, bool) {
	var key [keySize]byte
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil || len(raw) != keySize {
		return key, false
	}
	copy(key[:], raw)
	return key, true
}
