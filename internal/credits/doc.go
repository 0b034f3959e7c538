// Package credits implements the credit-metering core: the static pricing
// table, the transactional ledger with its audit trail, and the request gate
// that turns an inbound feature call into an admit/reject decision.
//
// The only operation that needs mutual exclusion is a deduction for a single
// user; the Store contract makes that the storage layer's problem so that
// deductions for different users never contend. Every internal fault inside
// the gate degrades to "request allowed, no charge" under the default
// FailOpen policy. The one condition that must surface to the caller is an
// explicit credit shortfall, reported as HTTP 402 with the price attached.
package credits
