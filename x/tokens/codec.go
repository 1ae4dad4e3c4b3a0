package tokens

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/nftswap"
)

// AssetType describes a class of assets. It is stored under its ticker.
type AssetType struct {
	Metadata *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Ticker   string            `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Name     string            `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	// Supply is the total amount of units minted so far.
	Supply uint64 `protobuf:"varint,4,opt,name=supply,proto3" json:"supply,omitempty"`
}

func (m *AssetType) Marshal() ([]byte, error) {
	return proto.Marshal((*assetTypeWire)(m))
}

func (m *AssetType) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*assetTypeWire)(m))
}

type assetTypeWire AssetType

func (m *assetTypeWire) Reset()         { *m = assetTypeWire{} }
func (m *assetTypeWire) String() string { return proto.CompactTextString(m) }
func (*assetTypeWire) ProtoMessage()    {}

// Account holds units of a single asset type.
type Account struct {
	Metadata  *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	AssetType string            `protobuf:"bytes,2,opt,name=asset_type,json=assetType,proto3" json:"asset_type,omitempty"`
	// Owner is the only address that can move units out of this account.
	Owner  nftswap.Address `protobuf:"bytes,3,opt,name=owner,proto3,casttype=github.com/iov-one/nftswap.Address" json:"owner,omitempty"`
	Amount uint64          `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Account) Marshal() ([]byte, error) {
	return proto.Marshal((*accountWire)(m))
}

func (m *Account) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*accountWire)(m))
}

type accountWire Account

func (m *accountWire) Reset()         { *m = accountWire{} }
func (m *accountWire) String() string { return proto.CompactTextString(m) }
func (*accountWire) ProtoMessage()    {}

// Configuration is the runtime configuration of the ledger.
type Configuration struct {
	Metadata *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Owner is allowed to change the configuration.
	Owner nftswap.Address `protobuf:"bytes,2,opt,name=owner,proto3,casttype=github.com/iov-one/nftswap.Address" json:"owner,omitempty"`
	// Minter is allowed to register asset types and mint units.
	Minter nftswap.Address `protobuf:"bytes,3,opt,name=minter,proto3,casttype=github.com/iov-one/nftswap.Address" json:"minter,omitempty"`
	// MaxSupply is the maximum number of units of a single asset type.
	// Zero means one.
	MaxSupply uint64 `protobuf:"varint,4,opt,name=max_supply,json=maxSupply,proto3" json:"max_supply,omitempty"`
}

func (m *Configuration) Marshal() ([]byte, error) {
	return proto.Marshal((*configurationWire)(m))
}

func (m *Configuration) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*configurationWire)(m))
}

type configurationWire Configuration

func (m *configurationWire) Reset()         { *m = configurationWire{} }
func (m *configurationWire) String() string { return proto.CompactTextString(m) }
func (*configurationWire) ProtoMessage()    {}

// CreateAssetTypeMsg registers a new asset type.
type CreateAssetTypeMsg struct {
	Metadata *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Ticker   string            `protobuf:"bytes,2,opt,name=ticker,proto3" json:"ticker,omitempty"`
	Name     string            `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *CreateAssetTypeMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*createAssetTypeMsgWire)(m))
}

func (m *CreateAssetTypeMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*createAssetTypeMsgWire)(m))
}

type createAssetTypeMsgWire CreateAssetTypeMsg

func (m *createAssetTypeMsgWire) Reset()         { *m = createAssetTypeMsgWire{} }
func (m *createAssetTypeMsgWire) String() string { return proto.CompactTextString(m) }
func (*createAssetTypeMsgWire) ProtoMessage()    {}

// CreateAccountMsg creates an empty account. The address of the account is
// computed from the owner, the asset type and the seed.
type CreateAccountMsg struct {
	Metadata  *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	AssetType string            `protobuf:"bytes,2,opt,name=asset_type,json=assetType,proto3" json:"asset_type,omitempty"`
	Owner     nftswap.Address   `protobuf:"bytes,3,opt,name=owner,proto3,casttype=github.com/iov-one/nftswap.Address" json:"owner,omitempty"`
	// Seed allows one owner to have many accounts of the same asset type.
	Seed []byte `protobuf:"bytes,4,opt,name=seed,proto3" json:"seed,omitempty"`
}

func (m *CreateAccountMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*createAccountMsgWire)(m))
}

func (m *CreateAccountMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*createAccountMsgWire)(m))
}

type createAccountMsgWire CreateAccountMsg

func (m *createAccountMsgWire) Reset()         { *m = createAccountMsgWire{} }
func (m *createAccountMsgWire) String() string { return proto.CompactTextString(m) }
func (*createAccountMsgWire) ProtoMessage()    {}

// MintMsg issues new units of an asset into an account.
type MintMsg struct {
	Metadata *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Account  nftswap.Address   `protobuf:"bytes,2,opt,name=account,proto3,casttype=github.com/iov-one/nftswap.Address" json:"account,omitempty"`
	Amount   uint64            `protobuf:"varint,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *MintMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*mintMsgWire)(m))
}

func (m *MintMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*mintMsgWire)(m))
}

type mintMsgWire MintMsg

func (m *mintMsgWire) Reset()         { *m = mintMsgWire{} }
func (m *mintMsgWire) String() string { return proto.CompactTextString(m) }
func (*mintMsgWire) ProtoMessage()    {}

// TransferMsg moves units between two accounts of the same asset type.
type TransferMsg struct {
	Metadata    *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      nftswap.Address   `protobuf:"bytes,2,opt,name=source,proto3,casttype=github.com/iov-one/nftswap.Address" json:"source,omitempty"`
	Destination nftswap.Address   `protobuf:"bytes,3,opt,name=destination,proto3,casttype=github.com/iov-one/nftswap.Address" json:"destination,omitempty"`
	Amount      uint64            `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TransferMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*transferMsgWire)(m))
}

func (m *TransferMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*transferMsgWire)(m))
}

type transferMsgWire TransferMsg

func (m *transferMsgWire) Reset()         { *m = transferMsgWire{} }
func (m *transferMsgWire) String() string { return proto.CompactTextString(m) }
func (*transferMsgWire) ProtoMessage()    {}

// UpdateConfigurationMsg patches the configuration. Only non zero fields of
// the patch are applied.
type UpdateConfigurationMsg struct {
	Metadata *nftswap.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Patch    *Configuration    `protobuf:"bytes,2,opt,name=patch,proto3" json:"patch,omitempty"`
}

func (m *UpdateConfigurationMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*updateConfigurationMsgWire)(m))
}

func (m *UpdateConfigurationMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*updateConfigurationMsgWire)(m))
}

type updateConfigurationMsgWire UpdateConfigurationMsg

func (m *updateConfigurationMsgWire) Reset()         { *m = updateConfigurationMsgWire{} }
func (m *updateConfigurationMsgWire) String() string { return proto.CompactTextString(m) }
func (*updateConfigurationMsgWire) ProtoMessage()    {}
