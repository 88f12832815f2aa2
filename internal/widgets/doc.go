// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (cards, badges, progress bars, checkboxes)
//
// Not allowed here:
// - key handling, dashboard state, or tab policy
package widgets
