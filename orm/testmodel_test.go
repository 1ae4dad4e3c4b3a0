package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/nftswap/errors"
)

// thing is a model used only by the tests of this package.
type thing struct {
	Name  string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Owner []byte `protobuf:"bytes,2,opt,name=owner,proto3" json:"owner,omitempty"`
}

func (t *thing) Validate() error {
	if t.Name == "" {
		return errors.Field("Name", errors.ErrEmpty, "required")
	}
	return nil
}

func (t *thing) Copy() CloneableData {
	cpy := *t
	return &cpy
}

func (t *thing) Marshal() ([]byte, error) { return proto.Marshal((*thingWire)(t)) }
func (t *thing) Unmarshal(b []byte) error { return proto.Unmarshal(b, (*thingWire)(t)) }

type thingWire thing

func (t *thingWire) Reset()         { *t = thingWire{} }
func (t *thingWire) String() string { return proto.CompactTextString(t) }
func (*thingWire) ProtoMessage()    {}

func thingOwner(obj Object) ([]byte, error) {
	t, ok := obj.Value().(*thing)
	if !ok {
		return nil, errors.WithType(errors.ErrType, obj.Value())
	}
	return t.Owner, nil
}

func thingName(obj Object) ([]byte, error) {
	t, ok := obj.Value().(*thing)
	if !ok {
		return nil, errors.WithType(errors.ErrType, obj.Value())
	}
	return []byte(t.Name), nil
}
