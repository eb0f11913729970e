// Package campaign implements the incomplete-signup recovery workflow.
//
// The service layer owns all business rules: the eligibility window, the
// idempotency guard, the sequential rate-limited bulk loop, and the reset
// cool-down. It depends on interfaces defined in this package and never
// imports from the api or repository packages.
//
// Repository implementations live in repository/postgres/; the email
// resolver lives in identity/; mail adapters live in mailer/.
package campaign
