package weavetest

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	"github.com/iov-one/nftswap"
)

// RandomAddr returns a valid random address generated on the fly.
func RandomAddr(t testing.TB) nftswap.Address {
	t.Helper()
	raw := make([]byte, nftswap.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	a := nftswap.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("generated address is not valid: %s", err)
	}
	return a
}

// DecodeAddr takes a hex encoded address and returns its raw representation.
func DecodeAddr(t testing.TB, encoded string) nftswap.Address {
	t.Helper()
	raw, err := hex.DecodeString(encoded)
	if err != nil {
		t.Fatalf("cannot decode hex string: %s", err)
	}
	a := nftswap.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("decoded string is not a valid address: %s", err)
	}
	return a
}

// ParseAddress takes an address in any of the human readable formats
// accepted by nftswap.ParseAddress and returns its binary representation.
func ParseAddress(t testing.TB, encoded string) nftswap.Address {
	t.Helper()
	addr, err := nftswap.ParseAddress(encoded)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encoded, err)
	}
	return addr
}
