package swap

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/orm"
	"github.com/iov-one/nftswap/x"
	"github.com/iov-one/nftswap/x/tokens"
)

// RegisterQuery registers escrows under "/escrows". They can also be listed
// by party with "/escrows/offerer" and "/escrows/requester".
func RegisterQuery(qr nftswap.QueryRouter) {
	NewEscrowBucket().Register("escrows", qr)
}

// RegisterRoutes registers all handlers of this extension. The ledger holds
// the assets and custody accounts.
func RegisterRoutes(r nftswap.Registry, auth x.Authenticator, ledger tokens.Controller) {
	bucket := NewEscrowBucket()
	r.Handle(&InitMsg{}, &initHandler{auth: auth, bucket: bucket, ledger: ledger})
	r.Handle(&FundOfferedMsg{}, &fundOfferedHandler{auth: auth, bucket: bucket, ledger: ledger})
	r.Handle(&FundRequestedMsg{}, &fundRequestedHandler{auth: auth, bucket: bucket, ledger: ledger})
	r.Handle(&DefundOfferedMsg{}, &defundOfferedHandler{auth: auth, bucket: bucket, ledger: ledger})
	r.Handle(&DefundRequestedMsg{}, &defundRequestedHandler{auth: auth, bucket: bucket, ledger: ledger})
	r.Handle(&SettleMsg{}, &settleHandler{bucket: bucket, ledger: ledger})
	r.Handle(&CloseMsg{}, &closeHandler{auth: auth, bucket: bucket, ledger: ledger})
}

func loadEscrow(db nftswap.ReadOnlyKVStore, bucket orm.ModelBucket, key nftswap.Address) (*Escrow, error) {
	var e Escrow
	if err := bucket.One(db, key, &e); err != nil {
		return nil, errors.Wrapf(err, "escrow %s", key)
	}
	return &e, nil
}

type initHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ledger tokens.Controller
}

var _ nftswap.Handler = (*initHandler)(nil)

func (h *initHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{}, nil
}

func (h *initHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	key, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ledger.CreateAccount(db, escrow.OfferedCustody, escrow.OfferedAssetType, key); err != nil {
		return nil, errors.Wrap(err, "offered custody")
	}
	if _, err := h.ledger.CreateAccount(db, escrow.RequestedCustody, escrow.RequestedAssetType, key); err != nil {
		return nil, errors.Wrap(err, "requested custody")
	}
	if err := h.bucket.Put(db, key, escrow); err != nil {
		return nil, errors.Wrap(err, "cannot save escrow")
	}
	return &nftswap.DeliverResult{Data: key}, nil
}

// validate returns the escrow address and the record to be created.
func (h *initHandler) validate(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (nftswap.Address, *Escrow, error) {
	var msg InitMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Offerer) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "offerer signature required")
	}

	offered, err := h.ledger.Account(db, msg.OfferedHolding)
	if err != nil {
		return nil, nil, errors.Wrap(err, "offered holding")
	}
	if err := requireOwner(ErrAuthorizationMismatch, offered, msg.Offerer, "offered holding"); err != nil {
		return nil, nil, err
	}
	requested, err := h.ledger.Account(db, msg.RequestedHolding)
	if err != nil {
		return nil, nil, errors.Wrap(err, "requested holding")
	}
	if err := requireOwner(ErrAuthorizationMismatch, requested, msg.Requester, "requested holding"); err != nil {
		return nil, nil, err
	}
	if err := requireSingleUnit(offered, msg.OfferedAssetType, "offered holding"); err != nil {
		return nil, nil, err
	}
	if err := requireSingleUnit(requested, msg.RequestedAssetType, "requested holding"); err != nil {
		return nil, nil, err
	}

	cond, _, err := EscrowCondition(msg.OfferedHolding, msg.RequestedHolding)
	if err != nil {
		return nil, nil, errors.Wrap(err, "escrow condition")
	}
	key := cond.Address()
	switch err := h.bucket.Has(db, key); {
	case err == nil:
		return nil, nil, errors.Wrapf(errors.ErrDuplicate, "escrow %s", key)
	case !errors.ErrNotFound.Is(err):
		return nil, nil, err
	}

	offeredCustody, err := CustodyAddress(offeredSide, msg.OfferedHolding)
	if err != nil {
		return nil, nil, errors.Wrap(err, "offered custody")
	}
	requestedCustody, err := CustodyAddress(requestedSide, msg.RequestedHolding)
	if err != nil {
		return nil, nil, errors.Wrap(err, "requested custody")
	}
	if err := h.requireFreeCustody(db, offeredCustody, "offered custody"); err != nil {
		return nil, nil, err
	}
	if err := h.requireFreeCustody(db, requestedCustody, "requested custody"); err != nil {
		return nil, nil, err
	}
	escrow := &Escrow{
		Metadata:           &nftswap.Metadata{Schema: 1},
		OfferingParty:      msg.Offerer,
		RequestingParty:    msg.Requester,
		OfferedAssetType:   msg.OfferedAssetType,
		RequestedAssetType: msg.RequestedAssetType,
		OfferedCustody:     offeredCustody,
		RequestedCustody:   requestedCustody,
	}
	return key, escrow, nil
}

// requireFreeCustody fails if the custody account is still held by another
// escrow of the same holding.
func (h *initHandler) requireFreeCustody(db nftswap.KVStore, custody nftswap.Address, name string) error {
	switch _, err := h.ledger.Account(db, custody); {
	case err == nil:
		return errors.Wrapf(errors.ErrDuplicate, "%s %s in use", name, custody)
	case errors.ErrNotFound.Is(err):
		return nil
	default:
		return errors.Wrap(err, name)
	}
}

// funding holds what both funding handlers share. Funding moves the asset
// with the signature of the party, so no escrow authority is involved.
type funding struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ledger tokens.Controller
}

// validate ensures the side's party signed and the custody account is the
// escrow's own.
func (h *funding) validate(ctx nftswap.Context, db nftswap.KVStore, key, custody nftswap.Address, side string) error {
	escrow, err := loadEscrow(db, h.bucket, key)
	if err != nil {
		return err
	}
	party, recorded := escrow.OfferingParty, escrow.OfferedCustody
	if side == requestedSide {
		party, recorded = escrow.RequestingParty, escrow.RequestedCustody
	}
	if err := requireParty(ctx, h.auth, party, side); err != nil {
		return err
	}
	if err := requireRecorded(custody, recorded, side+" custody"); err != nil {
		return err
	}
	acc, err := h.ledger.Account(db, custody)
	if err != nil {
		return errors.Wrap(err, "custody")
	}
	return requireOwner(ErrOwnershipMismatch, acc, key, side+" custody")
}

func (h *funding) fund(ctx nftswap.Context, db nftswap.KVStore, key, holding, custody nftswap.Address, side string) error {
	if err := h.validate(ctx, db, key, custody, side); err != nil {
		return err
	}
	return h.ledger.Transfer(ctx, db, h.auth, holding, custody, 1)
}

type fundOfferedHandler funding

var _ nftswap.Handler = (*fundOfferedHandler)(nil)

func (h *fundOfferedHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	var msg FundOfferedMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := (*funding)(h).validate(ctx, db, msg.Escrow, msg.Custody, offeredSide); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{}, nil
}

func (h *fundOfferedHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	var msg FundOfferedMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := (*funding)(h).fund(ctx, db, msg.Escrow, msg.Holding, msg.Custody, offeredSide); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{}, nil
}

type fundRequestedHandler funding

var _ nftswap.Handler = (*fundRequestedHandler)(nil)

func (h *fundRequestedHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	var msg FundRequestedMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := (*funding)(h).validate(ctx, db, msg.Escrow, msg.Custody, requestedSide); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{}, nil
}

func (h *fundRequestedHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	var msg FundRequestedMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := (*funding)(h).fund(ctx, db, msg.Escrow, msg.Holding, msg.Custody, requestedSide); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{}, nil
}

// defundRequest is what both defunding messages carry.
type defundRequest struct {
	bump             uint32
	key              nftswap.Address
	offeredHolding   nftswap.Address
	requestedHolding nftswap.Address
	custody          nftswap.Address
}

// defunding holds what both defunding handlers share. The asset is returned
// from custody with the escrow authority, after the party of the side asked
// for it.
type defunding funding

// validate returns the escrow authority and the holding the asset returns
// to.
func (h *defunding) validate(ctx nftswap.Context, db nftswap.KVStore, req defundRequest, side string) (nftswap.Condition, nftswap.Address, error) {
	escrow, err := loadEscrow(db, h.bucket, req.key)
	if err != nil {
		return nil, nil, err
	}
	party, recorded, holding := escrow.OfferingParty, escrow.OfferedCustody, req.offeredHolding
	if side == requestedSide {
		party, recorded, holding = escrow.RequestingParty, escrow.RequestedCustody, req.requestedHolding
	}
	if err := requireParty(ctx, h.auth, party, side); err != nil {
		return nil, nil, err
	}
	if err := requireRecorded(req.custody, recorded, side+" custody"); err != nil {
		return nil, nil, err
	}
	if side == requestedSide {
		if err := h.requireHoldingOwners(db, escrow, req); err != nil {
			return nil, nil, err
		}
	}
	cond, err := escrowAuthority(req.key, req.bump, req.offeredHolding, req.requestedHolding)
	if err != nil {
		return nil, nil, err
	}
	return cond, holding, nil
}

// requireHoldingOwners ensures both holdings are still controlled by the
// recorded parties.
func (h *defunding) requireHoldingOwners(db nftswap.KVStore, escrow *Escrow, req defundRequest) error {
	offered, err := h.ledger.Account(db, req.offeredHolding)
	if err != nil {
		return errors.Wrap(err, "offered holding")
	}
	if err := requireOwner(ErrOwnershipMismatch, offered, escrow.OfferingParty, "offered holding"); err != nil {
		return err
	}
	requested, err := h.ledger.Account(db, req.requestedHolding)
	if err != nil {
		return errors.Wrap(err, "requested holding")
	}
	return requireOwner(ErrOwnershipMismatch, requested, escrow.RequestingParty, "requested holding")
}

func (h *defunding) defund(ctx nftswap.Context, db nftswap.KVStore, req defundRequest, side string) error {
	cond, holding, err := h.validate(ctx, db, req, side)
	if err != nil {
		return err
	}
	return h.ledger.Transfer(withEscrow(ctx, cond), db, Authenticate{}, req.custody, holding, 1)
}

type defundOfferedHandler defunding

var _ nftswap.Handler = (*defundOfferedHandler)(nil)

func (h *defundOfferedHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	req, err := loadDefundOffered(tx)
	if err != nil {
		return nil, err
	}
	if _, _, err := (*defunding)(h).validate(ctx, db, req, offeredSide); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{}, nil
}

func (h *defundOfferedHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	req, err := loadDefundOffered(tx)
	if err != nil {
		return nil, err
	}
	if err := (*defunding)(h).defund(ctx, db, req, offeredSide); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{}, nil
}

func loadDefundOffered(tx nftswap.Tx) (defundRequest, error) {
	var msg DefundOfferedMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return defundRequest{}, errors.Wrap(err, "load msg")
	}
	return defundRequest{
		bump:             msg.Bump,
		key:              msg.Escrow,
		offeredHolding:   msg.OfferedHolding,
		requestedHolding: msg.RequestedHolding,
		custody:          msg.Custody,
	}, nil
}

type defundRequestedHandler defunding

var _ nftswap.Handler = (*defundRequestedHandler)(nil)

func (h *defundRequestedHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	req, err := loadDefundRequested(tx)
	if err != nil {
		return nil, err
	}
	if _, _, err := (*defunding)(h).validate(ctx, db, req, requestedSide); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{}, nil
}

func (h *defundRequestedHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	req, err := loadDefundRequested(tx)
	if err != nil {
		return nil, err
	}
	if err := (*defunding)(h).defund(ctx, db, req, requestedSide); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{}, nil
}

func loadDefundRequested(tx nftswap.Tx) (defundRequest, error) {
	var msg DefundRequestedMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return defundRequest{}, errors.Wrap(err, "load msg")
	}
	return defundRequest{
		bump:             msg.Bump,
		key:              msg.Escrow,
		offeredHolding:   msg.OfferedHolding,
		requestedHolding: msg.RequestedHolding,
		custody:          msg.Custody,
	}, nil
}

// settleHandler completes the swap. Anyone may submit the settlement, as
// the destinations are bound to the parties.
type settleHandler struct {
	bucket orm.ModelBucket
	ledger tokens.Controller
}

var _ nftswap.Handler = (*settleHandler)(nil)

func (h *settleHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{}, nil
}

func (h *settleHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	msg, cond, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	ctx = withEscrow(ctx, cond)

	// Both transfers are applied or none.
	cacheable, ok := db.(nftswap.CacheableKVStore)
	if !ok {
		if err := h.exchange(ctx, db, msg); err != nil {
			return nil, err
		}
	} else {
		cache := cacheable.CacheWrap()
		if err := h.exchange(ctx, cache, msg); err != nil {
			cache.Discard()
			return nil, err
		}
		if err := cache.Write(); err != nil {
			return nil, errors.Wrap(err, "cannot write settlement")
		}
	}

	nftswap.GetLogger(ctx).Info("escrow settled", "escrow", msg.Escrow.String())
	return &nftswap.DeliverResult{}, nil
}

func (h *settleHandler) exchange(ctx nftswap.Context, db nftswap.KVStore, msg *SettleMsg) error {
	if err := h.ledger.Transfer(ctx, db, Authenticate{}, msg.RequestedCustody, msg.RequestedDestination, 1); err != nil {
		return errors.Wrap(err, "requested asset")
	}
	if err := h.ledger.Transfer(ctx, db, Authenticate{}, msg.OfferedCustody, msg.OfferedDestination, 1); err != nil {
		return errors.Wrap(err, "offered asset")
	}
	return nil
}

func (h *settleHandler) validate(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*SettleMsg, nftswap.Condition, error) {
	var msg SettleMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	escrow, err := loadEscrow(db, h.bucket, msg.Escrow)
	if err != nil {
		return nil, nil, err
	}
	if err := requireRecorded(msg.OfferedCustody, escrow.OfferedCustody, "offered custody"); err != nil {
		return nil, nil, err
	}
	if err := requireRecorded(msg.RequestedCustody, escrow.RequestedCustody, "requested custody"); err != nil {
		return nil, nil, err
	}

	accounts := make(map[string]*tokens.Account, 4)
	for _, a := range []struct {
		name string
		addr nftswap.Address
	}{
		{"offered holding", msg.OfferedHolding},
		{"requested holding", msg.RequestedHolding},
		{"offered destination", msg.OfferedDestination},
		{"requested destination", msg.RequestedDestination},
	} {
		acc, err := h.ledger.Account(db, a.addr)
		if err != nil {
			return nil, nil, errors.Wrap(err, a.name)
		}
		accounts[a.name] = acc
	}
	if err := requireSameOwner(accounts["offered holding"], accounts["requested destination"], "offered holding", "requested destination"); err != nil {
		return nil, nil, err
	}
	if err := requireSameOwner(accounts["requested holding"], accounts["offered destination"], "requested holding", "offered destination"); err != nil {
		return nil, nil, err
	}
	if err := requireOwner(ErrOwnershipMismatch, accounts["offered destination"], escrow.RequestingParty, "offered destination"); err != nil {
		return nil, nil, err
	}
	if err := requireOwner(ErrOwnershipMismatch, accounts["requested destination"], escrow.OfferingParty, "requested destination"); err != nil {
		return nil, nil, err
	}

	state, err := LoadFundingState(db, h.ledger, escrow)
	if err != nil {
		return nil, nil, err
	}
	if !state.Ready() {
		return nil, nil, errors.Wrapf(ErrSupplyInvariantViolation,
			"not funded, offered: %t, requested: %t", state.OfferedFunded, state.RequestedFunded)
	}

	cond, err := escrowAuthority(msg.Escrow, msg.Bump, msg.OfferedHolding, msg.RequestedHolding)
	if err != nil {
		return nil, nil, err
	}
	return &msg, cond, nil
}

// closeHandler removes an empty escrow together with its custody accounts,
// so that the same pair of holdings can be swapped again.
type closeHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ledger tokens.Controller
}

var _ nftswap.Handler = (*closeHandler)(nil)

func (h *closeHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{}, nil
}

func (h *closeHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	msg, escrow, cond, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	ctx = withEscrow(ctx, cond)
	if err := h.ledger.CloseAccount(ctx, db, Authenticate{}, escrow.OfferedCustody); err != nil {
		return nil, errors.Wrap(err, "offered custody")
	}
	if err := h.ledger.CloseAccount(ctx, db, Authenticate{}, escrow.RequestedCustody); err != nil {
		return nil, errors.Wrap(err, "requested custody")
	}
	if err := h.bucket.Delete(db, msg.Escrow); err != nil {
		return nil, errors.Wrap(err, "cannot delete escrow")
	}
	return &nftswap.DeliverResult{}, nil
}

func (h *closeHandler) validate(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*CloseMsg, *Escrow, nftswap.Condition, error) {
	var msg CloseMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	escrow, err := loadEscrow(db, h.bucket, msg.Escrow)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := requireEitherParty(ctx, h.auth, escrow); err != nil {
		return nil, nil, nil, err
	}
	cond, err := escrowAuthority(msg.Escrow, msg.Bump, msg.OfferedHolding, msg.RequestedHolding)
	if err != nil {
		return nil, nil, nil, err
	}
	state, err := LoadFundingState(db, h.ledger, escrow)
	if err != nil {
		return nil, nil, nil, err
	}
	if !state.Empty() {
		return nil, nil, nil, errors.Wrap(ErrSupplyInvariantViolation, "custody accounts not empty")
	}
	return &msg, escrow, cond, nil
}
