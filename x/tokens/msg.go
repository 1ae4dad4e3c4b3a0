package tokens

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
)

const (
	pathCreateAssetTypeMsg     = "tokens/create_asset_type"
	pathCreateAccountMsg       = "tokens/create_account"
	pathMintMsg                = "tokens/mint"
	pathTransferMsg            = "tokens/transfer"
	pathUpdateConfigurationMsg = "tokens/update_configuration"
)

var _ nftswap.Msg = (*CreateAssetTypeMsg)(nil)
var _ nftswap.Msg = (*CreateAccountMsg)(nil)
var _ nftswap.Msg = (*MintMsg)(nil)
var _ nftswap.Msg = (*TransferMsg)(nil)
var _ nftswap.Msg = (*UpdateConfigurationMsg)(nil)

func (CreateAssetTypeMsg) Path() string {
	return pathCreateAssetTypeMsg
}

func (m *CreateAssetTypeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !isTicker(m.Ticker) {
		errs = errors.Append(errs, errors.Field("Ticker", errors.ErrInput, "invalid ticker %q", m.Ticker))
	}
	if !isAssetName(m.Name) {
		errs = errors.Append(errs, errors.Field("Name", errors.ErrInput, "invalid name %q", m.Name))
	}
	return errs
}

func (CreateAccountMsg) Path() string {
	return pathCreateAccountMsg
}

func (m *CreateAccountMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if !isTicker(m.AssetType) {
		errs = errors.Append(errs, errors.Field("AssetType", errors.ErrInput, "invalid ticker %q", m.AssetType))
	}
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	if len(m.Seed) > maxSeedLength {
		errs = errors.Append(errs, errors.Field("Seed", errors.ErrInput, "longer than %d bytes", maxSeedLength))
	}
	return errs
}

func (MintMsg) Path() string {
	return pathMintMsg
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Account", m.Account.Validate())
	if m.Amount == 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	}
	return errs
}

func (TransferMsg) Path() string {
	return pathTransferMsg
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if m.Amount == 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	}
	if m.Source.Equals(m.Destination) {
		errs = errors.Append(errs, errors.Field("Destination", errors.ErrInput, "same as source"))
	}
	return errs
}

func (UpdateConfigurationMsg) Path() string {
	return pathUpdateConfigurationMsg
}

func (m *UpdateConfigurationMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Patch == nil {
		return errors.Wrap(errors.ErrEmpty, "patch")
	}
	return nil
}
