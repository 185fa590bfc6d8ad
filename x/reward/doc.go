/*
Package reward implements a mintable token ledger that compensates donors
for their contributions.

Rewards are never transferred between accounts. They are minted by the
Controller whenever another extension reports a contribution, at the rate
declared in the package configuration. The package registers no message
handlers of its own.
*/
package reward
