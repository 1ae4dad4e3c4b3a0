package tokens

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/orm"
	"github.com/iov-one/nftswap/x"
)

// Controller is the ledger API used by other extensions. All state changes
// of token accounts go through it.
type Controller interface {
	// CreateAccount creates an empty account of the given asset type under
	// the given address.
	CreateAccount(db nftswap.KVStore, addr nftswap.Address, assetType string, owner nftswap.Address) (*Account, error)

	// Account returns the account stored under the given address or
	// ErrNotFound.
	Account(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (*Account, error)

	// Balance returns the amount held by the account.
	Balance(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (uint64, error)

	// Transfer moves amount units between two accounts of the same asset
	// type. The authenticator must fulfil the owner of the source account.
	Transfer(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, from, to nftswap.Address, amount uint64) error

	// CanMint returns an error if minting amount units into the account
	// would exceed the supply limit of its asset type.
	CanMint(db nftswap.ReadOnlyKVStore, addr nftswap.Address, amount uint64) error

	// Mint issues new units into an account. Authorization is the
	// responsibility of the caller.
	Mint(db nftswap.KVStore, addr nftswap.Address, amount uint64) error

	// CloseAccount deletes an empty account. The authenticator must
	// fulfil the owner of the account.
	CloseAccount(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, addr nftswap.Address) error
}

// BaseController is the Controller implementation backed by the buckets of
// this package.
type BaseController struct {
	accounts orm.ModelBucket
	assets   orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller using the default buckets.
func NewController() BaseController {
	return BaseController{
		accounts: NewAccountBucket(),
		assets:   NewAssetTypeBucket(),
	}
}

func (c BaseController) CreateAccount(db nftswap.KVStore, addr nftswap.Address, assetType string, owner nftswap.Address) (*Account, error) {
	if err := addr.Validate(); err != nil {
		return nil, errors.Wrap(err, "account address")
	}
	if err := c.assets.Has(db, []byte(assetType)); err != nil {
		return nil, errors.Wrapf(err, "asset type %q", assetType)
	}
	switch err := c.accounts.Has(db, addr); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "account %s", addr)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}

	acc := &Account{
		Metadata:  &nftswap.Metadata{Schema: 1},
		AssetType: assetType,
		Owner:     owner,
	}
	if err := c.accounts.Put(db, addr, acc); err != nil {
		return nil, errors.Wrap(err, "cannot save account")
	}
	return acc, nil
}

func (c BaseController) Account(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (*Account, error) {
	var acc Account
	if err := c.accounts.One(db, addr, &acc); err != nil {
		return nil, errors.Wrapf(err, "account %s", addr)
	}
	return &acc, nil
}

func (c BaseController) Balance(db nftswap.ReadOnlyKVStore, addr nftswap.Address) (uint64, error) {
	acc, err := c.Account(db, addr)
	if err != nil {
		return 0, err
	}
	return acc.Amount, nil
}

func (c BaseController) Transfer(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, from, to nftswap.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "transfer of zero units")
	}
	if from.Equals(to) {
		return errors.Wrap(errors.ErrInput, "source and destination are the same account")
	}

	src, err := c.Account(db, from)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	dst, err := c.Account(db, to)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if src.AssetType != dst.AssetType {
		return errors.Wrapf(errors.ErrType, "cannot move %s into an account of %s", src.AssetType, dst.AssetType)
	}
	if !auth.HasAddress(ctx, src.Owner) {
		return errors.Wrapf(errors.ErrUnauthorized, "source account owner %s", src.Owner)
	}
	if src.Amount < amount {
		return errors.Wrapf(ErrInsufficientBalance, "account %s holds %d, need %d", from, src.Amount, amount)
	}
	if dst.Amount+amount < dst.Amount {
		return errors.Wrap(errors.ErrOverflow, "destination amount")
	}

	src.Amount -= amount
	dst.Amount += amount
	if err := c.accounts.Put(db, from, src); err != nil {
		return errors.Wrap(err, "cannot save source")
	}
	if err := c.accounts.Put(db, to, dst); err != nil {
		return errors.Wrap(err, "cannot save destination")
	}
	return nil
}

func (c BaseController) CanMint(db nftswap.ReadOnlyKVStore, addr nftswap.Address, amount uint64) error {
	_, _, err := c.mintable(db, addr, amount)
	return err
}

func (c BaseController) Mint(db nftswap.KVStore, addr nftswap.Address, amount uint64) error {
	acc, asset, err := c.mintable(db, addr, amount)
	if err != nil {
		return err
	}
	asset.Supply += amount
	acc.Amount += amount
	if err := c.assets.Put(db, []byte(asset.Ticker), asset); err != nil {
		return errors.Wrap(err, "cannot save asset type")
	}
	if err := c.accounts.Put(db, addr, acc); err != nil {
		return errors.Wrap(err, "cannot save account")
	}
	return nil
}

// mintable loads the account and its asset type and ensures both can take
// amount more units.
func (c BaseController) mintable(db nftswap.ReadOnlyKVStore, addr nftswap.Address, amount uint64) (*Account, *AssetType, error) {
	if amount == 0 {
		return nil, nil, errors.Wrap(errors.ErrAmount, "mint of zero units")
	}
	acc, err := c.Account(db, addr)
	if err != nil {
		return nil, nil, err
	}
	var asset AssetType
	if err := c.assets.One(db, []byte(acc.AssetType), &asset); err != nil {
		return nil, nil, errors.Wrapf(err, "asset type %q", acc.AssetType)
	}

	limit, err := maxSupply(db)
	if err != nil {
		return nil, nil, err
	}
	supply := asset.Supply + amount
	if supply < asset.Supply || supply > limit {
		return nil, nil, errors.Wrapf(ErrSupplyExceeded, "%s supply %d, limit %d", asset.Ticker, asset.Supply, limit)
	}
	if acc.Amount+amount < acc.Amount {
		return nil, nil, errors.Wrap(errors.ErrOverflow, "account amount")
	}
	return acc, &asset, nil
}

func (c BaseController) CloseAccount(ctx nftswap.Context, db nftswap.KVStore, auth x.Authenticator, addr nftswap.Address) error {
	acc, err := c.Account(db, addr)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, acc.Owner) {
		return errors.Wrapf(errors.ErrUnauthorized, "account owner %s", acc.Owner)
	}
	if acc.Amount != 0 {
		return errors.Wrapf(errors.ErrState, "account %s holds %d units", addr, acc.Amount)
	}
	return c.accounts.Delete(db, addr)
}

// maxSupply returns the supply limit of a single asset type. Without a
// configuration the default applies.
func maxSupply(db nftswap.ReadOnlyKVStore) (uint64, error) {
	conf, err := loadConf(db)
	switch {
	case err == nil:
		return conf.maxSupply(), nil
	case errors.ErrNotFound.Is(err):
		return defaultMaxSupply, nil
	default:
		return 0, err
	}
}
