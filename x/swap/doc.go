/*
Package swap implements a trustless exchange of two one-of-one assets
between two parties.

The offering party opens an escrow naming both holding accounts. The
escrow address is derived from the two holdings, so there is at most one
escrow per pair, and it owns two custody accounts, one per side. No private
key exists for a derived condition: only the handlers of this package can
move assets out of custody, after recomputing the escrow condition from the
bump supplied by the caller.

Each party funds its side by moving its unit into custody and may take it
back at any time before settlement. Once both custody accounts hold their
unit, anyone can settle the escrow, which delivers each asset to an account
of the other party in a single atomic step. An empty escrow can be closed by
either party.

Whether a side is funded is never stored. It is read from the custody
balances, see LoadFundingState.
*/
package swap
