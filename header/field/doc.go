// Package field provides helpers for writing "Name: body" header fields into
// the lines of a header.Block, along with the date, address, and charset
// formatting those fields commonly need. Nothing here validates field names or
// bodies.
package field
