package swap

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/orm"
	"github.com/iov-one/nftswap/x/tokens"
)

var _ orm.CloneableData = (*Escrow)(nil)

// Validate ensures the escrow is valid.
func (e *Escrow) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", e.Metadata.Validate())
	errs = errors.AppendField(errs, "OfferingParty", e.OfferingParty.Validate())
	errs = errors.AppendField(errs, "RequestingParty", e.RequestingParty.Validate())
	errs = errors.AppendField(errs, "OfferedAssetType", tokens.ValidateTicker(e.OfferedAssetType))
	errs = errors.AppendField(errs, "RequestedAssetType", tokens.ValidateTicker(e.RequestedAssetType))
	errs = errors.AppendField(errs, "OfferedCustody", e.OfferedCustody.Validate())
	errs = errors.AppendField(errs, "RequestedCustody", e.RequestedCustody.Validate())
	if e.OfferingParty.Equals(e.RequestingParty) {
		errs = errors.Append(errs, errors.Field("RequestingParty", errors.ErrModel, "same as offering party"))
	}
	if e.OfferedCustody.Equals(e.RequestedCustody) {
		errs = errors.Append(errs, errors.Field("RequestedCustody", errors.ErrModel, "same as offered custody"))
	}
	return errs
}

// Copy makes a new escrow with the same values.
func (e *Escrow) Copy() orm.CloneableData {
	return &Escrow{
		Metadata:           e.Metadata.Copy(),
		OfferingParty:      cloneAddress(e.OfferingParty),
		RequestingParty:    cloneAddress(e.RequestingParty),
		OfferedAssetType:   e.OfferedAssetType,
		RequestedAssetType: e.RequestedAssetType,
		OfferedCustody:     cloneAddress(e.OfferedCustody),
		RequestedCustody:   cloneAddress(e.RequestedCustody),
	}
}

func cloneAddress(a nftswap.Address) nftswap.Address {
	if a == nil {
		return nil
	}
	return append(nftswap.Address(nil), a...)
}

// NewEscrowBucket returns a bucket of escrows, keyed by escrow address and
// indexed by both parties.
func NewEscrowBucket() orm.ModelBucket {
	return orm.NewModelBucket("escrow", &Escrow{},
		orm.WithIndex("offerer", idxOfferer, false),
		orm.WithIndex("requester", idxRequester, false),
	)
}

func toEscrow(obj orm.Object) (*Escrow, error) {
	if obj == nil {
		return nil, errors.Wrap(errors.ErrHuman, "cannot take index of nil")
	}
	esc, ok := obj.Value().(*Escrow)
	if !ok {
		return nil, errors.Wrap(errors.ErrHuman, "can only take index of Escrow")
	}
	return esc, nil
}

func idxOfferer(obj orm.Object) ([]byte, error) {
	esc, err := toEscrow(obj)
	if err != nil {
		return nil, err
	}
	return esc.OfferingParty, nil
}

func idxRequester(obj orm.Object) ([]byte, error) {
	esc, err := toEscrow(obj)
	if err != nil {
		return nil, err
	}
	return esc.RequestingParty, nil
}
