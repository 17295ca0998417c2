// Package deletion implements the capability-tiered track removal workflow.
//
// The workflow is a small state machine keyed by deletion capability tier
// and permission response. Depending on the tier a request either deletes
// directly, or parks in an awaiting-consent state behind an opaque consent
// handle that the presentation layer must resolve. The workflow never
// blocks or polls for consent; the single allowed retry is the
// recoverable-consent replay after a grant.
//
// Deletion faults are always surfaced as an explicit [Outcome], never
// swallowed: removal is a destructive user-initiated action.
package deletion
