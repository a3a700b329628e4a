/*
Package app contains the glue between the extensions and tendermint.

A Router dispatches transactions to the handlers registered for their
message path. ChainDecorators builds the decorator stack in front of it.
StoreApp keeps the committed state with separate check and deliver caches
and serves queries. BaseApp adds transaction processing on top of it and
implements abci.Application.
*/
package app
