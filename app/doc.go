/*
Package app contains the glue between the extensions and the consensus
engine.

StoreApp manages the state: it loads the committed store, keeps separate
caches for checking and delivering transactions, answers queries and
initializes the extensions from the genesis file. BaseApp adds transaction
processing on top of it, passing every decoded transaction through a chain
of decorators to the router that dispatches it to the handler registered for
its message path.
*/
package app
