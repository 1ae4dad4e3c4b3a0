package swap

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/x/tokens"
)

const (
	pathInitMsg            = "swap/init"
	pathFundOfferedMsg     = "swap/fund_offered"
	pathFundRequestedMsg   = "swap/fund_requested"
	pathDefundOfferedMsg   = "swap/defund_offered"
	pathDefundRequestedMsg = "swap/defund_requested"
	pathSettleMsg          = "swap/settle"
	pathCloseMsg           = "swap/close"

	maxBump = 255
)

var _ nftswap.Msg = (*InitMsg)(nil)
var _ nftswap.Msg = (*FundOfferedMsg)(nil)
var _ nftswap.Msg = (*FundRequestedMsg)(nil)
var _ nftswap.Msg = (*DefundOfferedMsg)(nil)
var _ nftswap.Msg = (*DefundRequestedMsg)(nil)
var _ nftswap.Msg = (*SettleMsg)(nil)
var _ nftswap.Msg = (*CloseMsg)(nil)

func (InitMsg) Path() string {
	return pathInitMsg
}

func (m *InitMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Offerer", m.Offerer.Validate())
	errs = errors.AppendField(errs, "Requester", m.Requester.Validate())
	errs = errors.AppendField(errs, "OfferedAssetType", tokens.ValidateTicker(m.OfferedAssetType))
	errs = errors.AppendField(errs, "RequestedAssetType", tokens.ValidateTicker(m.RequestedAssetType))
	errs = errors.AppendField(errs, "OfferedHolding", m.OfferedHolding.Validate())
	errs = errors.AppendField(errs, "RequestedHolding", m.RequestedHolding.Validate())
	if m.Offerer.Equals(m.Requester) {
		errs = errors.Append(errs, errors.Field("Requester", errors.ErrInput, "cannot swap with yourself"))
	}
	if m.OfferedHolding.Equals(m.RequestedHolding) {
		errs = errors.Append(errs, errors.Field("RequestedHolding", errors.ErrInput, "same as offered holding"))
	}
	return errs
}

func (FundOfferedMsg) Path() string {
	return pathFundOfferedMsg
}

func (m *FundOfferedMsg) Validate() error {
	return validateFunding(m.Metadata, m.Escrow, m.Holding, m.Custody)
}

func (FundRequestedMsg) Path() string {
	return pathFundRequestedMsg
}

func (m *FundRequestedMsg) Validate() error {
	return validateFunding(m.Metadata, m.Escrow, m.Holding, m.Custody)
}

func validateFunding(meta *nftswap.Metadata, escrow, holding, custody nftswap.Address) error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", meta.Validate())
	errs = errors.AppendField(errs, "Escrow", escrow.Validate())
	errs = errors.AppendField(errs, "Holding", holding.Validate())
	errs = errors.AppendField(errs, "Custody", custody.Validate())
	if holding.Equals(custody) {
		errs = errors.Append(errs, errors.Field("Custody", errors.ErrInput, "same as holding"))
	}
	return errs
}

func (DefundOfferedMsg) Path() string {
	return pathDefundOfferedMsg
}

func (m *DefundOfferedMsg) Validate() error {
	errs := validateAuthority(m.Metadata, m.Bump, m.Escrow, m.OfferedHolding, m.RequestedHolding)
	return errors.AppendField(errs, "Custody", m.Custody.Validate())
}

func (DefundRequestedMsg) Path() string {
	return pathDefundRequestedMsg
}

func (m *DefundRequestedMsg) Validate() error {
	errs := validateAuthority(m.Metadata, m.Bump, m.Escrow, m.OfferedHolding, m.RequestedHolding)
	return errors.AppendField(errs, "Custody", m.Custody.Validate())
}

func (SettleMsg) Path() string {
	return pathSettleMsg
}

func (m *SettleMsg) Validate() error {
	errs := validateAuthority(m.Metadata, m.Bump, m.Escrow, m.OfferedHolding, m.RequestedHolding)
	errs = errors.AppendField(errs, "OfferedCustody", m.OfferedCustody.Validate())
	errs = errors.AppendField(errs, "RequestedCustody", m.RequestedCustody.Validate())
	errs = errors.AppendField(errs, "OfferedDestination", m.OfferedDestination.Validate())
	errs = errors.AppendField(errs, "RequestedDestination", m.RequestedDestination.Validate())
	return errs
}

func (CloseMsg) Path() string {
	return pathCloseMsg
}

func (m *CloseMsg) Validate() error {
	return validateAuthority(m.Metadata, m.Bump, m.Escrow, m.OfferedHolding, m.RequestedHolding)
}

// validateAuthority checks the fields every message acting with the escrow
// authority carries.
func validateAuthority(meta *nftswap.Metadata, bump uint32, escrow, offeredHolding, requestedHolding nftswap.Address) error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", meta.Validate())
	if bump > maxBump {
		errs = errors.Append(errs, errors.Field("Bump", errors.ErrInput, "must not be greater than %d", maxBump))
	}
	errs = errors.AppendField(errs, "Escrow", escrow.Validate())
	errs = errors.AppendField(errs, "OfferedHolding", offeredHolding.Validate())
	errs = errors.AppendField(errs, "RequestedHolding", requestedHolding.Validate())
	if offeredHolding.Equals(requestedHolding) {
		errs = errors.Append(errs, errors.Field("RequestedHolding", errors.ErrInput, "same as offered holding"))
	}
	return errs
}
