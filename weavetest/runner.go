package weavetest

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/app"
	"github.com/iov-one/nftswap/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Tester is implemented by both *testing.T and *testing.B.
type Tester interface {
	Helper()
	Errorf(string, ...interface{})
	Fatalf(string, ...interface{})
	Logf(string, ...interface{})
}

// AppRunner provides a translation layer between the ABCI interface and the
// transaction API. It takes care of serializing transactions and creating
// blocks.
type AppRunner struct {
	chainID string
	height  int64
	now     time.Time
	t       Tester
	app     abci.Application
}

// TxRunner processes transactions within a block.
type TxRunner interface {
	DeliverTx(nftswap.Tx) error
	CheckTx(nftswap.Tx) error
}

var _ TxRunner = (*AppRunner)(nil)

// NewAppRunner returns a runner for the given application. Each block is
// five seconds after the previous one.
func NewAppRunner(t Tester, app abci.Application, chainID string) *AppRunner {
	return &AppRunner{
		chainID: chainID,
		now:     time.Date(2019, time.June, 1, 12, 0, 0, 0, time.UTC),
		t:       t,
		app:     app,
	}
}

// InitChain serializes the given genesis to JSON and loads it in a separate
// block. The test fails if loading the genesis did not change the state.
func (r *AppRunner) InitChain(genesis interface{}) {
	r.t.Helper()

	raw, err := json.MarshalIndent(genesis, "", "  ")
	if err != nil {
		r.t.Fatalf("cannot JSON serialize genesis: %s", err)
	}

	changed := r.InBlock(func(TxRunner) error {
		r.app.InitChain(abci.RequestInitChain{
			Time:          r.now,
			ChainId:       r.chainID,
			AppStateBytes: raw,
		})
		return nil
	})
	if !changed {
		r.t.Fatalf("genesis did not change the state")
	}
}

// CheckTx serializes the transaction and runs the check phase. A failure is
// returned as the registered error matching the ABCI code.
func (r *AppRunner) CheckTx(tx nftswap.Tx) error {
	raw, err := tx.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal transaction")
	}
	if resp := r.app.CheckTx(raw); resp.Code != errors.SuccessABCICode {
		return errors.ABCIError(resp.Code, resp.Log)
	}
	return nil
}

// DeliverTx serializes the transaction and runs the delivery phase. A
// failure is returned as the registered error matching the ABCI code.
func (r *AppRunner) DeliverTx(tx nftswap.Tx) error {
	raw, err := tx.Marshal()
	if err != nil {
		return errors.Wrap(err, "cannot marshal transaction")
	}
	if resp := r.app.DeliverTx(raw); resp.Code != errors.SuccessABCICode {
		return errors.ABCIError(resp.Code, resp.Log)
	}
	return nil
}

// InBlock begins a block and runs the given function. All transactions
// executed by it are part of the new block. Upon success the block is
// finished and changes committed. InBlock returns true if the application
// state was modified.
//
// Any failure ends the test instantly.
func (r *AppRunner) InBlock(executeTx func(TxRunner) error) bool {
	r.t.Helper()

	r.height++
	r.now = r.now.Add(5 * time.Second)

	initialHash := r.app.Info(abci.RequestInfo{}).LastBlockAppHash

	r.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{
			ChainID: r.chainID,
			Height:  r.height,
			Time:    r.now,
		},
	})

	if err := executeTx(r); err != nil {
		r.t.Fatalf("operation failed with %+v", err)
	}

	r.app.EndBlock(abci.RequestEndBlock{Height: r.height})

	finalHash := r.app.Commit().Data
	return !bytes.Equal(initialHash, finalHash)
}

// Query runs an ABCI query against the last committed state and returns
// the decoded models.
func (r *AppRunner) Query(path string, data []byte) ([]nftswap.Model, error) {
	resp := r.app.Query(abci.RequestQuery{Path: path, Data: data})
	if resp.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(resp.Code, resp.Log)
	}
	var keys, values app.ResultSet
	if err := keys.Unmarshal(resp.Key); err != nil {
		return nil, errors.Wrap(err, "cannot parse keys")
	}
	if err := values.Unmarshal(resp.Value); err != nil {
		return nil, errors.Wrap(err, "cannot parse values")
	}
	return app.JoinResults(&keys, &values)
}

// BlockTime returns the time of the last block.
func (r *AppRunner) BlockTime() time.Time {
	return r.now
}
