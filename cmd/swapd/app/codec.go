package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/nftswap/x/sigs"
	"github.com/iov-one/nftswap/x/swap"
	"github.com/iov-one/nftswap/x/tokens"
)

// Tx contains the message and the signatures of everyone who authorized
// it. Exactly one message field must be set.
type Tx struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`

	CreateAssetTypeMsg    *tokens.CreateAssetTypeMsg     `protobuf:"bytes,51,opt,name=create_asset_type_msg,proto3" json:"create_asset_type_msg,omitempty"`
	CreateAccountMsg      *tokens.CreateAccountMsg       `protobuf:"bytes,52,opt,name=create_account_msg,proto3" json:"create_account_msg,omitempty"`
	MintMsg               *tokens.MintMsg                `protobuf:"bytes,53,opt,name=mint_msg,proto3" json:"mint_msg,omitempty"`
	TransferMsg           *tokens.TransferMsg            `protobuf:"bytes,54,opt,name=transfer_msg,proto3" json:"transfer_msg,omitempty"`
	UpdateTokensConfigMsg *tokens.UpdateConfigurationMsg `protobuf:"bytes,55,opt,name=update_tokens_config_msg,proto3" json:"update_tokens_config_msg,omitempty"`
	InitMsg               *swap.InitMsg                  `protobuf:"bytes,61,opt,name=init_msg,proto3" json:"init_msg,omitempty"`
	FundOfferedMsg        *swap.FundOfferedMsg           `protobuf:"bytes,62,opt,name=fund_offered_msg,proto3" json:"fund_offered_msg,omitempty"`
	FundRequestedMsg      *swap.FundRequestedMsg         `protobuf:"bytes,63,opt,name=fund_requested_msg,proto3" json:"fund_requested_msg,omitempty"`
	DefundOfferedMsg      *swap.DefundOfferedMsg         `protobuf:"bytes,64,opt,name=defund_offered_msg,proto3" json:"defund_offered_msg,omitempty"`
	DefundRequestedMsg    *swap.DefundRequestedMsg       `protobuf:"bytes,65,opt,name=defund_requested_msg,proto3" json:"defund_requested_msg,omitempty"`
	SettleMsg             *swap.SettleMsg                `protobuf:"bytes,66,opt,name=settle_msg,proto3" json:"settle_msg,omitempty"`
	CloseMsg              *swap.CloseMsg                 `protobuf:"bytes,67,opt,name=close_msg,proto3" json:"close_msg,omitempty"`
	BumpSequenceMsg       *sigs.BumpSequenceMsg          `protobuf:"bytes,71,opt,name=bump_sequence_msg,proto3" json:"bump_sequence_msg,omitempty"`
}

func (m *Tx) Marshal() ([]byte, error) {
	return proto.Marshal((*txWire)(m))
}

func (m *Tx) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*txWire)(m))
}

type txWire Tx

func (m *txWire) Reset()         { *m = txWire{} }
func (m *txWire) String() string { return proto.CompactTextString(m) }
func (*txWire) ProtoMessage()    {}
