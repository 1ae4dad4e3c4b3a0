package sigs

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/crypto"
)

// UserData is the state stored for every public key that signed a
// transaction.
type UserData struct {
	Metadata *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Pubkey   *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	// Sequence is the nonce that the next signature of this key must
	// carry.
	Sequence int64 `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

func (m *UserData) Marshal() ([]byte, error) {
	return proto.Marshal((*userDataWire)(m))
}

func (m *UserData) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*userDataWire)(m))
}

type userDataWire UserData

func (m *userDataWire) Reset()         { *m = userDataWire{} }
func (m *userDataWire) String() string { return proto.CompactTextString(m) }
func (*userDataWire) ProtoMessage()    {}

// StdSignature represents the signature, the identity of the signer (the
// Pubkey) and a sequence number to prevent replay attacks.
type StdSignature struct {
	Sequence  int64             `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Pubkey    *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature *crypto.Signature `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
}

func (m *StdSignature) Marshal() ([]byte, error) {
	return proto.Marshal((*stdSignatureWire)(m))
}

func (m *StdSignature) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*stdSignatureWire)(m))
}

type stdSignatureWire StdSignature

func (m *stdSignatureWire) Reset()         { *m = stdSignatureWire{} }
func (m *stdSignatureWire) String() string { return proto.CompactTextString(m) }
func (*stdSignatureWire) ProtoMessage()    {}

// BumpSequenceMsg increments the sequence of the signer by the given value
// plus one, as every processed transaction increments it by one.
type BumpSequenceMsg struct {
	Metadata  *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Increment uint32            `protobuf:"varint,2,opt,name=increment,proto3" json:"increment,omitempty"`
}

func (m *BumpSequenceMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*bumpSequenceMsgWire)(m))
}

func (m *BumpSequenceMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*bumpSequenceMsgWire)(m))
}

type bumpSequenceMsgWire BumpSequenceMsg

func (m *bumpSequenceMsgWire) Reset()         { *m = bumpSequenceMsgWire{} }
func (m *bumpSequenceMsgWire) String() string { return proto.CompactTextString(m) }
func (*bumpSequenceMsgWire) ProtoMessage()    {}
