package nftswap

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/nftswap/errors"
)

// Metadata is attached to every persisted model and every message. The schema
// version allows a model layout to change without breaking the state that was
// written with an older one.
type Metadata struct {
	Schema int32 `protobuf:"varint,1,opt,name=schema,proto3" json:"schema,omitempty"`
}

// Validate returns an error if the schema is not set.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrEmpty, "metadata")
	}
	if m.Schema < 1 {
		return errors.Field("Schema", errors.ErrModel, "schema must be positive, got %d", m.Schema)
	}
	return nil
}

// Copy returns a copy of this object. This method is helpful when
// implementing orm.CloneableData interface to make a copy of the header.
func (m *Metadata) Copy() *Metadata {
	if m == nil {
		return nil
	}
	cpy := *m
	return &cpy
}

func (m *Metadata) Marshal() ([]byte, error) {
	return proto.Marshal((*metadataWire)(m))
}

func (m *Metadata) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*metadataWire)(m))
}

// metadataWire shares the Metadata layout without its Marshal method, so that
// the protobuf encoder serializes the fields instead of calling back.
type metadataWire Metadata

func (m *metadataWire) Reset()         { *m = metadataWire{} }
func (m *metadataWire) String() string { return proto.CompactTextString(m) }
func (*metadataWire) ProtoMessage()    {}
