package swap

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/nftswap"
)

// Escrow is the record of a single swap. It is stored under the escrow
// address, which is derived from the two holding accounts. The record never
// changes after it was created, only the balances of the custody accounts do.
type Escrow struct {
	Metadata           *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	OfferingParty      nftswap.Address   `protobuf:"bytes,2,opt,name=offering_party,proto3,casttype=github.com/iov-one/nftswap.Address" json:"offering_party,omitempty"`
	RequestingParty    nftswap.Address   `protobuf:"bytes,3,opt,name=requesting_party,proto3,casttype=github.com/iov-one/nftswap.Address" json:"requesting_party,omitempty"`
	OfferedAssetType   string            `protobuf:"bytes,4,opt,name=offered_asset_type,proto3" json:"offered_asset_type,omitempty"`
	RequestedAssetType string            `protobuf:"bytes,5,opt,name=requested_asset_type,proto3" json:"requested_asset_type,omitempty"`
	OfferedCustody     nftswap.Address   `protobuf:"bytes,6,opt,name=offered_custody,proto3,casttype=github.com/iov-one/nftswap.Address" json:"offered_custody,omitempty"`
	RequestedCustody   nftswap.Address   `protobuf:"bytes,7,opt,name=requested_custody,proto3,casttype=github.com/iov-one/nftswap.Address" json:"requested_custody,omitempty"`
}

func (m *Escrow) Marshal() ([]byte, error) {
	return proto.Marshal((*escrowWire)(m))
}

func (m *Escrow) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*escrowWire)(m))
}

type escrowWire Escrow

func (m *escrowWire) Reset()         { *m = escrowWire{} }
func (m *escrowWire) String() string { return proto.CompactTextString(m) }
func (*escrowWire) ProtoMessage()    {}

// InitMsg creates an escrow between the signing offerer and the requester.
type InitMsg struct {
	Metadata           *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Offerer            nftswap.Address   `protobuf:"bytes,2,opt,name=offerer,proto3,casttype=github.com/iov-one/nftswap.Address" json:"offerer,omitempty"`
	Requester          nftswap.Address   `protobuf:"bytes,3,opt,name=requester,proto3,casttype=github.com/iov-one/nftswap.Address" json:"requester,omitempty"`
	OfferedAssetType   string            `protobuf:"bytes,4,opt,name=offered_asset_type,proto3" json:"offered_asset_type,omitempty"`
	RequestedAssetType string            `protobuf:"bytes,5,opt,name=requested_asset_type,proto3" json:"requested_asset_type,omitempty"`
	OfferedHolding     nftswap.Address   `protobuf:"bytes,6,opt,name=offered_holding,proto3,casttype=github.com/iov-one/nftswap.Address" json:"offered_holding,omitempty"`
	RequestedHolding   nftswap.Address   `protobuf:"bytes,7,opt,name=requested_holding,proto3,casttype=github.com/iov-one/nftswap.Address" json:"requested_holding,omitempty"`
}

func (m *InitMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*initMsgWire)(m))
}

func (m *InitMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*initMsgWire)(m))
}

type initMsgWire InitMsg

func (m *initMsgWire) Reset()         { *m = initMsgWire{} }
func (m *initMsgWire) String() string { return proto.CompactTextString(m) }
func (*initMsgWire) ProtoMessage()    {}

// FundOfferedMsg moves the offered asset from the offerer holding account
// into custody.
type FundOfferedMsg struct {
	Metadata *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Escrow   nftswap.Address   `protobuf:"bytes,2,opt,name=escrow,proto3,casttype=github.com/iov-one/nftswap.Address" json:"escrow,omitempty"`
	Holding  nftswap.Address   `protobuf:"bytes,3,opt,name=holding,proto3,casttype=github.com/iov-one/nftswap.Address" json:"holding,omitempty"`
	Custody  nftswap.Address   `protobuf:"bytes,4,opt,name=custody,proto3,casttype=github.com/iov-one/nftswap.Address" json:"custody,omitempty"`
}

func (m *FundOfferedMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*fundOfferedMsgWire)(m))
}

func (m *FundOfferedMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*fundOfferedMsgWire)(m))
}

type fundOfferedMsgWire FundOfferedMsg

func (m *fundOfferedMsgWire) Reset()         { *m = fundOfferedMsgWire{} }
func (m *fundOfferedMsgWire) String() string { return proto.CompactTextString(m) }
func (*fundOfferedMsgWire) ProtoMessage()    {}

// FundRequestedMsg moves the requested asset from the requester holding
// account into custody.
type FundRequestedMsg struct {
	Metadata *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Escrow   nftswap.Address   `protobuf:"bytes,2,opt,name=escrow,proto3,casttype=github.com/iov-one/nftswap.Address" json:"escrow,omitempty"`
	Holding  nftswap.Address   `protobuf:"bytes,3,opt,name=holding,proto3,casttype=github.com/iov-one/nftswap.Address" json:"holding,omitempty"`
	Custody  nftswap.Address   `protobuf:"bytes,4,opt,name=custody,proto3,casttype=github.com/iov-one/nftswap.Address" json:"custody,omitempty"`
}

func (m *FundRequestedMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*fundRequestedMsgWire)(m))
}

func (m *FundRequestedMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*fundRequestedMsgWire)(m))
}

type fundRequestedMsgWire FundRequestedMsg

func (m *fundRequestedMsgWire) Reset()         { *m = fundRequestedMsgWire{} }
func (m *fundRequestedMsgWire) String() string { return proto.CompactTextString(m) }
func (*fundRequestedMsgWire) ProtoMessage()    {}

// DefundOfferedMsg returns the offered asset from custody to the offerer
// holding account.
type DefundOfferedMsg struct {
	Metadata         *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Bump             uint32            `protobuf:"varint,2,opt,name=bump,proto3" json:"bump,omitempty"`
	Escrow           nftswap.Address   `protobuf:"bytes,3,opt,name=escrow,proto3,casttype=github.com/iov-one/nftswap.Address" json:"escrow,omitempty"`
	OfferedHolding   nftswap.Address   `protobuf:"bytes,4,opt,name=offered_holding,proto3,casttype=github.com/iov-one/nftswap.Address" json:"offered_holding,omitempty"`
	RequestedHolding nftswap.Address   `protobuf:"bytes,5,opt,name=requested_holding,proto3,casttype=github.com/iov-one/nftswap.Address" json:"requested_holding,omitempty"`
	Custody          nftswap.Address   `protobuf:"bytes,6,opt,name=custody,proto3,casttype=github.com/iov-one/nftswap.Address" json:"custody,omitempty"`
}

func (m *DefundOfferedMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*defundOfferedMsgWire)(m))
}

func (m *DefundOfferedMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*defundOfferedMsgWire)(m))
}

type defundOfferedMsgWire DefundOfferedMsg

func (m *defundOfferedMsgWire) Reset()         { *m = defundOfferedMsgWire{} }
func (m *defundOfferedMsgWire) String() string { return proto.CompactTextString(m) }
func (*defundOfferedMsgWire) ProtoMessage()    {}

// DefundRequestedMsg returns the requested asset from custody to the
// requester holding account.
type DefundRequestedMsg struct {
	Metadata         *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Bump             uint32            `protobuf:"varint,2,opt,name=bump,proto3" json:"bump,omitempty"`
	Escrow           nftswap.Address   `protobuf:"bytes,3,opt,name=escrow,proto3,casttype=github.com/iov-one/nftswap.Address" json:"escrow,omitempty"`
	OfferedHolding   nftswap.Address   `protobuf:"bytes,4,opt,name=offered_holding,proto3,casttype=github.com/iov-one/nftswap.Address" json:"offered_holding,omitempty"`
	RequestedHolding nftswap.Address   `protobuf:"bytes,5,opt,name=requested_holding,proto3,casttype=github.com/iov-one/nftswap.Address" json:"requested_holding,omitempty"`
	Custody          nftswap.Address   `protobuf:"bytes,6,opt,name=custody,proto3,casttype=github.com/iov-one/nftswap.Address" json:"custody,omitempty"`
}

func (m *DefundRequestedMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*defundRequestedMsgWire)(m))
}

func (m *DefundRequestedMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*defundRequestedMsgWire)(m))
}

type defundRequestedMsgWire DefundRequestedMsg

func (m *defundRequestedMsgWire) Reset()         { *m = defundRequestedMsgWire{} }
func (m *defundRequestedMsgWire) String() string { return proto.CompactTextString(m) }
func (*defundRequestedMsgWire) ProtoMessage()    {}

// SettleMsg exchanges both assets held in custody. Anyone can submit it.
type SettleMsg struct {
	Metadata             *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Bump                 uint32            `protobuf:"varint,2,opt,name=bump,proto3" json:"bump,omitempty"`
	Escrow               nftswap.Address   `protobuf:"bytes,3,opt,name=escrow,proto3,casttype=github.com/iov-one/nftswap.Address" json:"escrow,omitempty"`
	OfferedHolding       nftswap.Address   `protobuf:"bytes,4,opt,name=offered_holding,proto3,casttype=github.com/iov-one/nftswap.Address" json:"offered_holding,omitempty"`
	RequestedHolding     nftswap.Address   `protobuf:"bytes,5,opt,name=requested_holding,proto3,casttype=github.com/iov-one/nftswap.Address" json:"requested_holding,omitempty"`
	OfferedCustody       nftswap.Address   `protobuf:"bytes,6,opt,name=offered_custody,proto3,casttype=github.com/iov-one/nftswap.Address" json:"offered_custody,omitempty"`
	RequestedCustody     nftswap.Address   `protobuf:"bytes,7,opt,name=requested_custody,proto3,casttype=github.com/iov-one/nftswap.Address" json:"requested_custody,omitempty"`
	OfferedDestination   nftswap.Address   `protobuf:"bytes,8,opt,name=offered_destination,proto3,casttype=github.com/iov-one/nftswap.Address" json:"offered_destination,omitempty"`
	RequestedDestination nftswap.Address   `protobuf:"bytes,9,opt,name=requested_destination,proto3,casttype=github.com/iov-one/nftswap.Address" json:"requested_destination,omitempty"`
}

func (m *SettleMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*settleMsgWire)(m))
}

func (m *SettleMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*settleMsgWire)(m))
}

type settleMsgWire SettleMsg

func (m *settleMsgWire) Reset()         { *m = settleMsgWire{} }
func (m *settleMsgWire) String() string { return proto.CompactTextString(m) }
func (*settleMsgWire) ProtoMessage()    {}

// CloseMsg deletes an escrow with both custody accounts empty.
type CloseMsg struct {
	Metadata         *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Bump             uint32            `protobuf:"varint,2,opt,name=bump,proto3" json:"bump,omitempty"`
	Escrow           nftswap.Address   `protobuf:"bytes,3,opt,name=escrow,proto3,casttype=github.com/iov-one/nftswap.Address" json:"escrow,omitempty"`
	OfferedHolding   nftswap.Address   `protobuf:"bytes,4,opt,name=offered_holding,proto3,casttype=github.com/iov-one/nftswap.Address" json:"offered_holding,omitempty"`
	RequestedHolding nftswap.Address   `protobuf:"bytes,5,opt,name=requested_holding,proto3,casttype=github.com/iov-one/nftswap.Address" json:"requested_holding,omitempty"`
}

func (m *CloseMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*closeMsgWire)(m))
}

func (m *CloseMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*closeMsgWire)(m))
}

type closeMsgWire CloseMsg

func (m *closeMsgWire) Reset()         { *m = closeMsgWire{} }
func (m *closeMsgWire) String() string { return proto.CompactTextString(m) }
func (*closeMsgWire) ProtoMessage()    {}
