package tokens

import (
	"crypto/sha256"
	"regexp"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/orm"
)

const (
	// maxSeedLength limits the seed used to compute an account address.
	maxSeedLength = 32
)

var (
	isTicker    = regexp.MustCompile(`^[A-Z0-9]{3,12}$`).MatchString
	isAssetName = regexp.MustCompile(`^[A-Za-z0-9 \-_:]{3,32}$`).MatchString
)

// ValidateTicker returns an error if the ticker is not a valid asset type
// identifier.
func ValidateTicker(ticker string) error {
	if !isTicker(ticker) {
		return errors.Wrapf(errors.ErrInput, "invalid ticker %q", ticker)
	}
	return nil
}

var _ orm.CloneableData = (*AssetType)(nil)

func (a *AssetType) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", a.Metadata.Validate())
	if !isTicker(a.Ticker) {
		errs = errors.Append(errs, errors.Field("Ticker", errors.ErrModel, "invalid ticker %q", a.Ticker))
	}
	if !isAssetName(a.Name) {
		errs = errors.Append(errs, errors.Field("Name", errors.ErrModel, "invalid name %q", a.Name))
	}
	return errs
}

func (a *AssetType) Copy() orm.CloneableData {
	return &AssetType{
		Metadata: a.Metadata.Copy(),
		Ticker:   a.Ticker,
		Name:     a.Name,
		Supply:   a.Supply,
	}
}

// NewAssetTypeBucket returns a bucket of asset types, keyed by ticker.
func NewAssetTypeBucket() orm.ModelBucket {
	return orm.NewModelBucket("asset", &AssetType{})
}

var _ orm.CloneableData = (*Account)(nil)

func (a *Account) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", a.Metadata.Validate())
	if !isTicker(a.AssetType) {
		errs = errors.Append(errs, errors.Field("AssetType", errors.ErrModel, "invalid ticker %q", a.AssetType))
	}
	errs = errors.AppendField(errs, "Owner", a.Owner.Validate())
	return errs
}

func (a *Account) Copy() orm.CloneableData {
	return &Account{
		Metadata:  a.Metadata.Copy(),
		AssetType: a.AssetType,
		Owner:     append(nftswap.Address(nil), a.Owner...),
		Amount:    a.Amount,
	}
}

// NewAccountBucket returns a bucket of token accounts, keyed by account
// address and indexed by owner.
func NewAccountBucket() orm.ModelBucket {
	return orm.NewModelBucket("tokacc", &Account{},
		orm.WithIndex("owner", accountOwner, false),
	)
}

func accountOwner(obj orm.Object) ([]byte, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	acc, ok := obj.Value().(*Account)
	if !ok {
		return nil, errors.WithType(errors.ErrType, obj.Value())
	}
	return acc.Owner, nil
}

// AccountCondition returns the condition an account created by a user is
// addressed with. The same owner may hold many accounts of one asset type,
// as long as each uses a different seed.
func AccountCondition(owner nftswap.Address, assetType string, seed []byte) nftswap.Condition {
	h := sha256.New()
	h.Write(owner)
	h.Write([]byte(assetType))
	h.Write(seed)
	return nftswap.NewCondition("tokens", "account", h.Sum(nil))
}
