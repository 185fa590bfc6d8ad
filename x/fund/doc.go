/*
Package fund implements the allocation engine: donors contribute into a
shared pool, spend the voting power issued in exchange on verified
beneficiaries and a trusted source attests their impact. Activity is
grouped into cycles that move one way through Open, Closed and
Distributed.

Voting is quadratic. A donor is debited the full power spent while the
beneficiary tally grows with the integer square root of the donor's
cumulative spend, so concentrating power on one beneficiary yields
diminishing influence.

Distribution splits the frozen pool between a vote weighted and an impact
weighted portion using exact rational arithmetic, floors every payout to
whole units and carries the rounding remainder into the next cycle as its
seed. Given the same ledger every node computes byte identical payouts.
*/
package fund
