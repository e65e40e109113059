// Package colorname maps between human-readable color names and colors.
//
// A Source loads a name database (the classic "#RRGGBB name" line format,
// or a YAML palette), answers exact lookups through an ordered name index,
// and answers "what is this color called" through a cover tree built over
// the named colors under a configurable metric (HSL distance by default).
package colorname
