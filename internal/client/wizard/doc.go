// Package wizard implements the multi-step flows of the client: identity
// verification and onboarding. Both are plain state machines driven by the
// caller; the only background work is the onboarding KYC poll, which runs as
// a Poller owned by the wizard.
package wizard
