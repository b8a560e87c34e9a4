// Package naming translates between the dash-separated command tokens users
// type and the internal command names pools declare.
package naming

import (
	"strings"
	"unicode"
)

// ExternalSeparator joins words in the names users type.
const ExternalSeparator = "-"

// InternalSeparator joins words in declared command names.
const InternalSeparator = "_"

// Codec translates command names in both directions.
type Codec interface {
	// Externalize turns an internal name into the form shown to users.
	Externalize(internal string) string
	// Internalize turns a typed token into the internal name.
	Internalize(token string) string
}

// Default is the codec used when none is configured.
var Default Codec = NewCodec(InternalSeparator)

type separatorCodec struct {
	sep string
}

// NewCodec returns a codec whose internal names join words with sep.
// No case or whitespace normalization is applied. A separator that could not
// appear in a valid internal name (empty, containing a dash or whitespace)
// falls back to InternalSeparator.
func NewCodec(sep string) Codec {
	if !Valid(sep) {
		sep = InternalSeparator
	}
	return separatorCodec{sep: sep}
}

func (c separatorCodec) Externalize(internal string) string {
	return strings.ReplaceAll(internal, c.sep, ExternalSeparator)
}

func (c separatorCodec) Internalize(token string) string {
	return strings.ReplaceAll(token, ExternalSeparator, c.sep)
}

// Externalize translates with the Default codec.
func Externalize(internal string) string {
	return Default.Externalize(internal)
}

// Internalize translates with the Default codec.
func Internalize(token string) string {
	return Default.Internalize(token)
}

// Valid reports whether name follows the internal naming convention:
// non-empty, no dashes, no whitespace. Dashes would make the round trip lossy.
func Valid(name string) bool {
	if name == "" || strings.Contains(name, ExternalSeparator) {
		return false
	}
	return strings.IndexFunc(name, unicode.IsSpace) < 0
}
