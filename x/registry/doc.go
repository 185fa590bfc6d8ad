/*
Package registry keeps the beneficiary register: every organization that
may receive fund payouts must be registered here and verified by the
registry admin before votes or impact scores can reference it.

Registration is open to anyone controlling the registered address.
Verification and revocation are admin-only operations; the admin address
comes from the genesis configuration.
*/
package registry
