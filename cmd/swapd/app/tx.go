package app

import (
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/errors"
	"github.com/iov-one/nftswap/x/sigs"
)

// TxDecoder creates a Tx and unmarshals bytes into it.
func TxDecoder(bz []byte) (nftswap.Tx, error) {
	tx := new(Tx)
	if err := tx.Unmarshal(bz); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return tx, nil
}

// make sure tx fulfills all interfaces
var _ nftswap.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// GetMsg returns the only message set on the transaction.
func (tx *Tx) GetMsg() (nftswap.Msg, error) {
	var msgs []nftswap.Msg
	add := func(set bool, m nftswap.Msg) {
		if set {
			msgs = append(msgs, m)
		}
	}
	add(tx.CreateAssetTypeMsg != nil, tx.CreateAssetTypeMsg)
	add(tx.CreateAccountMsg != nil, tx.CreateAccountMsg)
	add(tx.MintMsg != nil, tx.MintMsg)
	add(tx.TransferMsg != nil, tx.TransferMsg)
	add(tx.UpdateTokensConfigMsg != nil, tx.UpdateTokensConfigMsg)
	add(tx.InitMsg != nil, tx.InitMsg)
	add(tx.FundOfferedMsg != nil, tx.FundOfferedMsg)
	add(tx.FundRequestedMsg != nil, tx.FundRequestedMsg)
	add(tx.DefundOfferedMsg != nil, tx.DefundOfferedMsg)
	add(tx.DefundRequestedMsg != nil, tx.DefundRequestedMsg)
	add(tx.SettleMsg != nil, tx.SettleMsg)
	add(tx.CloseMsg != nil, tx.CloseMsg)
	add(tx.BumpSequenceMsg != nil, tx.BumpSequenceMsg)

	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "message payload is empty")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrInput, "%d messages, only one allowed", len(msgs))
	}
}

// GetSignatures returns the signatures of the transaction.
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes should only come
	// from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := tx.Marshal()

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}
