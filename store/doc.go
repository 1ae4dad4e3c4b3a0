/*
Package store provides the storage layers used by the application.

A CommitKVStore persists state between blocks. On top of it the app keeps a
cache wrap for checking and another for delivering transactions. Each
transaction, and each savepoint inside a transaction, runs in a further
cache wrap, so that a failure discards every write done since that point.

BTreeCacheWrap is the cache wrap implementation. It keeps uncommitted writes
and deletes in a btree and merges them with the backing store when reading
or iterating. MemStore returns one over an empty store, which is what most
tests need.
*/
package store
