// Package tabelle scrapes season-end league standings and per-team match
// schedules from a football statistics site and hands them to a caller as
// ordered tabular records. It is built around a politeness contract: every
// outbound request is paced by a randomized delay, transient server
// failures are retried with exponential backoff, and permanent failures
// surface immediately as typed errors.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, fs/).
package tabelle
