/*

Package alms defines the interfaces used throughout the fund-allocation
engine: storage, transactions, handlers, queries and identities. It also
contains helpers to work with context, time and abci responses.

The root package carries no business logic. Donation accounting, voting,
impact intake and cycle distribution live in x/fund; the collaborator
ledgers and middleware live in the other x/ packages; app wires them
into an ABCI application served by cmd/almsd.

*/

package alms
