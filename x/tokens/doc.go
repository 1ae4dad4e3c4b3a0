/*
Package tokens implements the asset ledger used by the swap extension.

An asset type is identified by its ticker. Every unit of an asset lives in a
token account, which is bound to a single asset type and controlled by a
single owner address. The owner may be the address of a signature, or the
derived address of an extension, like an escrow. Moving units out of an
account requires the authenticator passed to the transfer to fulfil the
owner of that account.

The total supply of an asset type is limited by the max_supply setting of
the configuration. With the default value of one, every asset type is a one
of one asset.
*/
package tokens
