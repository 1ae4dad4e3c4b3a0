package nftswap

import (
	"crypto/sha256"

	"filippo.io/edwards25519"
	"github.com/iov-one/nftswap/errors"
)

const (
	// MaxDerivationSeeds is the maximum number of seeds a derived condition
	// can be computed from.
	MaxDerivationSeeds = 16

	// MaxDerivationSeedLength is the maximum length of a single seed.
	MaxDerivationSeedLength = 32

	derivationMarker = "DerivedCondition"
)

// FindDerivedCondition returns the condition derived from the given seeds
// for the extension, together with the bump used to compute it.
//
// Bumps are tried from 255 down to 0 and the first one whose digest is not
// an ed25519 public key wins. A derived condition therefore can never be
// satisfied by a signature. It is authorized only by the extension that
// owns it, through a capability placed in the context.
func FindDerivedCondition(ext, typ string, seeds ...[]byte) (Condition, uint8, error) {
	if err := validateSeeds(seeds); err != nil {
		return nil, 0, err
	}
	for bump := 255; bump >= 0; bump-- {
		digest := derivationDigest(ext, uint8(bump), seeds)
		if !onCurve(digest) {
			return NewCondition(ext, typ, digest), uint8(bump), nil
		}
	}
	return nil, 0, errors.Wrap(errors.ErrState, "no valid bump")
}

// CreateDerivedCondition recomputes a derived condition from the seeds and
// an already known bump. It fails if the bump produces an on curve digest,
// which means it was never returned by FindDerivedCondition.
//
// A valid bump that is not the canonical one still returns a condition, but
// that condition is different from the one FindDerivedCondition returns.
func CreateDerivedCondition(ext, typ string, bump uint8, seeds ...[]byte) (Condition, error) {
	if err := validateSeeds(seeds); err != nil {
		return nil, err
	}
	digest := derivationDigest(ext, bump, seeds)
	if onCurve(digest) {
		return nil, errors.Wrapf(errors.ErrInput, "bump %d produces a public key", bump)
	}
	return NewCondition(ext, typ, digest), nil
}

func validateSeeds(seeds [][]byte) error {
	if len(seeds) > MaxDerivationSeeds {
		return errors.Wrapf(errors.ErrInput, "too many seeds: %d", len(seeds))
	}
	for i, s := range seeds {
		if len(s) > MaxDerivationSeedLength {
			return errors.Wrapf(errors.ErrInput, "seed %d too long: %d", i, len(s))
		}
	}
	return nil
}

func derivationDigest(ext string, bump uint8, seeds [][]byte) []byte {
	h := sha256.New()
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write([]byte{bump})
	h.Write([]byte(ext))
	h.Write([]byte(derivationMarker))
	return h.Sum(nil)
}

// onCurve returns true if the digest is a valid encoding of an ed25519 point.
func onCurve(digest []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(digest)
	return err == nil
}
