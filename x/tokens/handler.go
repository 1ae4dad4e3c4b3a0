package tokens

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/gconf"
	"github.com/iov-one/nftswap/orm"
	"github.com/iov-one/nftswap/x"
)

// RegisterQuery registers asset types under "/assets" and accounts under
// "/accounts". Accounts can also be queried by owner with
// "/accounts/owner".
func RegisterQuery(qr nftswap.QueryRouter) {
	NewAssetTypeBucket().Register("assets", qr)
	NewAccountBucket().Register("accounts", qr)
}

// RegisterRoutes registers all handlers of this extension.
func RegisterRoutes(r nftswap.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(&CreateAssetTypeMsg{}, &createAssetTypeHandler{auth: auth, assets: NewAssetTypeBucket()})
	r.Handle(&CreateAccountMsg{}, &createAccountHandler{ctrl: ctrl})
	r.Handle(&MintMsg{}, &mintHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferMsg{}, &transferHandler{auth: auth, ctrl: ctrl})
	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(packageName, &Configuration{}, auth))
}

type createAssetTypeHandler struct {
	auth   x.Authenticator
	assets orm.ModelBucket
}

var _ nftswap.Handler = (*createAssetTypeHandler)(nil)

func (h *createAssetTypeHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{}, nil
}

func (h *createAssetTypeHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	asset := &AssetType{
		Metadata: &nftswap.Metadata{Schema: 1},
		Ticker:   msg.Ticker,
		Name:     msg.Name,
	}
	if err := h.assets.Put(db, []byte(msg.Ticker), asset); err != nil {
		return nil, errors.Wrap(err, "cannot save asset type")
	}
	return &nftswap.DeliverResult{Data: []byte(msg.Ticker)}, nil
}

func (h *createAssetTypeHandler) validate(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*CreateAssetTypeMsg, error) {
	var msg CreateAssetTypeMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Minter) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "minter signature required")
	}
	// An asset type can be registered only once.
	switch err := h.assets.Has(db, []byte(msg.Ticker)); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "ticker %s", msg.Ticker)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}
	return &msg, nil
}

// createAccountHandler creates an account for any owner. Creating an empty
// account grants nothing, so no signature is required.
type createAccountHandler struct {
	ctrl Controller
}

var _ nftswap.Handler = (*createAccountHandler)(nil)

func (h *createAccountHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	var msg CreateAccountMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	addr := AccountCondition(msg.Owner, msg.AssetType, msg.Seed).Address()
	if _, err := h.ctrl.Account(db, addr); !errors.ErrNotFound.Is(err) {
		if err == nil {
			return nil, errors.Wrapf(errors.ErrDuplicate, "account %s", addr)
		}
		return nil, err
	}
	return &nftswap.CheckResult{}, nil
}

func (h *createAccountHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	var msg CreateAccountMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	addr := AccountCondition(msg.Owner, msg.AssetType, msg.Seed).Address()
	if _, err := h.ctrl.CreateAccount(db, addr, msg.AssetType, msg.Owner); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{Data: addr}, nil
}

type mintHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ nftswap.Handler = (*mintHandler)(nil)

func (h *mintHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftswap.CheckResult{}, nil
}

func (h *mintHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Mint(db, msg.Account, msg.Amount); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{}, nil
}

func (h *mintHandler) validate(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*MintMsg, error) {
	var msg MintMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, conf.Minter) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "minter signature required")
	}
	if err := h.ctrl.CanMint(db, msg.Account, msg.Amount); err != nil {
		return nil, err
	}
	return &msg, nil
}

type transferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ nftswap.Handler = (*transferHandler)(nil)

func (h *transferHandler) Check(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.CheckResult, error) {
	var msg TransferMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	src, err := h.ctrl.Account(db, msg.Source)
	if err != nil {
		return nil, errors.Wrap(err, "source")
	}
	if !h.auth.HasAddress(ctx, src.Owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "account owner signature missing")
	}
	return &nftswap.CheckResult{}, nil
}

func (h *transferHandler) Deliver(ctx nftswap.Context, db nftswap.KVStore, tx nftswap.Tx) (*nftswap.DeliverResult, error) {
	var msg TransferMsg
	if err := nftswap.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := h.ctrl.Transfer(ctx, db, h.auth, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &nftswap.DeliverResult{}, nil
}
