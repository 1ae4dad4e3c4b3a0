package weavetest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/nftswap"
	"github.com/iov-one/nftswap/store/iavl"
)

// CommitKVStore returns a store instance that is using a filesystem backend
// engine to store the data. Use it instead of store.MemStore when the test
// needs the same storage implementation as a running node.
func CommitKVStore(t testing.TB) (db nftswap.CommitKVStore, cleanup func()) {
	t.Helper()
	dbpath, err := ioutil.TempDir("", "nftswap")
	if err != nil {
		t.Fatalf("cannot create a temporary directory: %s", err)
	}
	return iavl.NewCommitStore(dbpath, "db"), func() { os.RemoveAll(dbpath) }
}
