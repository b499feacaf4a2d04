// Package manifest derives deterministic identifiers for HTML files from
// their filenames and assembles them into an ordered manifest.
//
// An identifier has the form "<prefix>_<last3>": a three-letter lowercase
// tag taken from the filename's alphabetic characters, and a three-digit
// tag taken from the trailing numeric token before the extension. Both
// derivations are total, so every filename yields a valid record and the
// builder never fails. Identifiers are not required to be unique;
// collisions are preserved as-is.
package manifest
