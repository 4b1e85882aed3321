// Package idgen wraps the UUID generator so that it can be stubbed in tests.
// Identifiers are random (version 4) UUIDs in their canonical 36 character
// lowercase form, e.g. 1b4e28ba-2fa1-41d2-883f-0016d3cca427.
package idgen
