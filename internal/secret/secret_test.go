package secret

import (
	"encoding/base64"
	"errors"
	"testing"

	gokeyring "github.com/zalando/go-keyring"
)

func TestBox_WrapUnwrapRoundTrip(t *testing.T) {
	gokeyring.MockInit()

	box, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !box.Protected() {
		t.Fatal("box should be protected with a working keyring")
	}

	blob, err := box.Wrap("azGDORePK8gMaC0QOYAMyEEuzJnyUi")
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}
	if !Sealed(blob) {
		t.Error("blob from a protected box should be sealed")
	}

	got, err := box.Unwrap(blob)
	if err != nil {
		t.Fatalf("Unwrap failed: %v", err)
	}
	if got != "azGDORePK8gMaC0QOYAMyEEuzJnyUi" {
		t.Errorf("Unwrap = %q, want the original token", got)
	}
}

func TestBox_EmptyTokenRoundTrip(t *testing.T) {
	gokeyring.MockInit()

	box, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	blob, err := box.Wrap("")
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}
	got, err := box.Unwrap(blob)
	if err != nil {
		t.Fatalf("Unwrap failed: %v", err)
	}
	if got != "" {
		t.Errorf("Unwrap = %q, want empty string", got)
	}
}

func TestBox_UnwrapWithDifferentKeyFails(t *testing.T) {
	gokeyring.MockInit()

	first, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	blob, err := first.Wrap("token-sealed-by-first-key")
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}

	// Drop the key as if a different user account opened the settings,
	// forcing Open to mint a fresh one.
	if err := gokeyring.Delete(Service, keyAccount); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	second, err := Open()
	if err != nil {
		t.Fatalf("second Open failed: %v", err)
	}

	if _, err := second.Unwrap(blob); !errors.Is(err, ErrDecrypt) {
		t.Errorf("Unwrap with a different key error = %v, want ErrDecrypt", err)
	}
}

func TestOpen_KeyringErrorFails(t *testing.T) {
	gokeyring.MockInitWithError(errors.New("dbus not running"))

	// A keyring that exists but does not answer must not yield a
	// working box: saving through one would downgrade sealed storage.
	box, err := Open()
	if err == nil {
		t.Fatal("Open should fail when the keyring errors")
	}
	if box != nil {
		t.Error("Open must not hand out a box alongside the error")
	}
}

func TestOpen_FirstUseWithoutKeyring(t *testing.T) {
	// Every operation reports the entry missing, so the generated key
	// cannot be persisted either. Nothing is sealed yet, so the box
	// degrades instead of failing.
	gokeyring.MockInitWithError(gokeyring.ErrNotFound)

	box, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if box.Protected() {
		t.Fatal("box should be unprotected when no key can be stored")
	}
}

func TestUnprotectedBox_PlaintextRoundTrip(t *testing.T) {
	box := Unprotected()
	if box.Protected() {
		t.Fatal("Unprotected box must report unprotected")
	}

	blob, err := box.Wrap("fallback-token")
	if err != nil {
		t.Fatalf("Wrap failed: %v", err)
	}
	if Sealed(blob) {
		t.Error("blob from an unprotected box should not be sealed")
	}

	got, err := box.Unwrap(blob)
	if err != nil {
		t.Fatalf("Unwrap failed: %v", err)
	}
	if got != "fallback-token" {
		t.Errorf("Unwrap = %q, want %q", got, "fallback-token")
	}
}

func TestBox_ProtectedBoxReadsPlaintextBlob(t *testing.T) {
	gokeyring.MockInit()

	box, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	// Settings written on a keyring-less host carry plaintext blobs.
	blob := append([]byte{blobPlain}, "portable-token"...)
	got, err := box.Unwrap(blob)
	if err != nil {
		t.Fatalf("Unwrap failed: %v", err)
	}
	if got != "portable-token" {
		t.Errorf("Unwrap = %q, want %q", got, "portable-token")
	}
	if Sealed(blob) {
		t.Error("Sealed should report false for a plaintext blob")
	}
}

func TestBox_UnwrapRejectsMalformedBlobs(t *testing.T) {
	gokeyring.MockInit()

	box, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if got, err := box.Unwrap(nil); err != nil || got != "" {
		t.Errorf("Unwrap(nil) = (%q, %v), want empty and no error", got, err)
	}

	for _, blob := range [][]byte{
		{blobSealed},
		{blobSealed, 1, 2, 3},
		{0x7f, 'x'},
	} {
		if _, err := box.Unwrap(blob); !errors.Is(err, ErrDecrypt) {
			t.Errorf("Unwrap(%v) error = %v, want ErrDecrypt", blob, err)
		}
	}
}

func TestOpen_ReplacesCorruptKeyEntry(t *testing.T) {
	gokeyring.MockInit()

	if err := gokeyring.Set(Service, keyAccount, "not base64 at all!"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	box, err := Open()
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if !box.Protected() {
		t.Fatal("Open should recover from a corrupt key entry")
	}

	stored, err := gokeyring.Get(Service, keyAccount)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil || len(raw) != keySize {
		t.Errorf("replacement key entry is invalid: err=%v len=%d", err, len(raw))
	}
}

func TestAvailable(t *testing.T) {
	gokeyring.MockInit()
	if !Available() {
		t.Error("Available() = false with a working keyring")
	}

	gokeyring.MockInitWithError(errors.New("locked"))
	if Available() {
		t.Error("Available() = true with a broken keyring")
	}
}
