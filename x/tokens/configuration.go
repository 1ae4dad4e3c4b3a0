package tokens

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/gconf"
)

const (
	// packageName is the configuration key of this extension.
	packageName = "tokens"

	// defaultMaxSupply is also the highest supply a configuration may set.
	// Escrow custody relies on every asset type having a single unit.
	defaultMaxSupply = 1
)

var _ gconf.OwnedConfig = (*Configuration)(nil)

func (c *Configuration) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	// Owner is optional. Without it the configuration cannot change.
	if len(c.Owner) != 0 {
		if err := c.Owner.Validate(); err != nil {
			return errors.Wrap(err, "owner")
		}
	}
	if err := c.Minter.Validate(); err != nil {
		return errors.Wrap(err, "minter")
	}
	if c.MaxSupply > defaultMaxSupply {
		return errors.Field("MaxSupply", errors.ErrInput, "assets are one of one, got %d", c.MaxSupply)
	}
	return nil
}

func (c *Configuration) GetOwner() nftswap.Address {
	return c.Owner
}

// maxSupply returns the configured supply limit, applying the default.
func (c *Configuration) maxSupply() uint64 {
	if c.MaxSupply == 0 {
		return defaultMaxSupply
	}
	return c.MaxSupply
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
