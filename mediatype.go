// seehuhn.de/go/dataurl - encode and decode data: URLs
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dataurl

import (
	"slices"
	"strings"
)

// A Parameter is a single name=value pair of a media type.  The zero
// value ("" = "") is a valid parameter.
type Parameter struct {
	Name  string
	Value string
}

// A MediaType is an RFC 2045 media type: a mime type of the form
// "type/subtype", followed by any number of parameters.  Parameter order
// is preserved, and names keep their original case.  MediaType values
// are immutable.
type MediaType struct {
	canonical string
	mimeType  string
	params    []Parameter
}

// DefaultMediaType is the media type readers must assume when a data:
// URL does not specify one, as required by RFC 2397.
var DefaultMediaType = &MediaType{
	canonical: "text/plain;charset=US-ASCII",
	mimeType:  "text/plain",
	params:    []Parameter{{Name: "charset", Value: "US-ASCII"}},
}

// ParseMediaType parses a media type string of the form
// "type/subtype;name=value;...".
//
// Parameter values may use double quotes to protect semicolons, and
// backslash inside a value escapes the next quote or backslash.  Quoting
// is a transport detail: the parsed parameter values contain neither the
// quotes nor the escaping backslashes.  A parameter without "=" and a
// parameter with an empty value both parse to the value "".
func ParseMediaType(s string) (*MediaType, error) {
	// The first ";" always terminates the mime type: no parameter value
	// has been entered yet, so it cannot be quoted.
	idx := strings.IndexByte(s, ';')
	if idx < 0 {
		if !isValidMimeType(s) {
			return nil, &InvalidMimeTypeError{MimeType: s}
		}
		return &MediaType{canonical: s, mimeType: s}, nil
	}

	mimeType := strings.TrimSpace(s[:idx])
	if !isValidMimeType(mimeType) {
		return nil, &InvalidMimeTypeError{MimeType: mimeType}
	}
	params := parseParameters(strings.TrimSpace(s[idx+1:]))
	return &MediaType{canonical: s, mimeType: mimeType, params: params}, nil
}

// NewMediaType builds a media type from a mime type and a parameter
// list.  The mime type must match the RFC 2045 token grammar.  Parameter
// names and values are deliberately not validated, so that any value
// which survives serialization can also be constructed directly.
func NewMediaType(mimeType string, params []Parameter) (*MediaType, error) {
	if !isValidMimeType(mimeType) {
		return nil, &InvalidMimeTypeError{MimeType: mimeType}
	}
	params = slices.Clone(params)
	return &MediaType{
		canonical: formatMediaType(mimeType, params),
		mimeType:  mimeType,
		params:    params,
	}, nil
}

// MimeType returns the "type/subtype" part of the media type.
func (m *MediaType) MimeType() string {
	return m.mimeType
}

// Parameters returns a copy of the parameters, in their original order.
func (m *MediaType) Parameters() []Parameter {
	return slices.Clone(m.params)
}

// Param looks up a parameter value by name, ignoring case.  If several
// parameters match, the last one wins.  The second return value reports
// whether the parameter is present at all, distinguishing an absent
// parameter from an empty value.
func (m *MediaType) Param(name string) (string, bool) {
	value, ok := "", false
	for _, p := range m.params {
		if strings.EqualFold(p.Name, name) {
			value, ok = p.Value, true
		}
	}
	return value, ok
}

// Charset returns the value of the "charset" parameter, if any.
func (m *MediaType) Charset() (string, bool) {
	return m.Param("charset")
}

// String returns the canonical form of the media type.  For parsed media
// types this is the parsed text, for constructed ones it is the
// serialization built at construction time; it is never recomputed.
func (m *MediaType) String() string {
	return m.canonical
}

// Equal reports whether two media types have the same mime type and the
// same parameters in the same order.  The canonical form does not take
// part in the comparison, since quoting is not retained state.
func (m *MediaType) Equal(other *MediaType) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.mimeType == other.mimeType && slices.Equal(m.params, other.params)
}

// formatMediaType serializes a media type.  Values containing ";" are
// wrapped in double quotes, and quotes and backslashes inside values are
// escaped, so that the result parses back to the same parameters.
func formatMediaType(mimeType string, params []Parameter) string {
	b := &strings.Builder{}
	b.WriteString(mimeType)
	for _, p := range params {
		b.WriteByte(';')
		b.WriteString(p.Name)
		b.WriteByte('=')
		quoted := strings.IndexByte(p.Value, ';') >= 0
		if quoted {
			b.WriteByte('"')
		}
		for i := 0; i < len(p.Value); i++ {
			c := p.Value[i]
			if c == '"' || c == '\\' {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
		if quoted {
			b.WriteByte('"')
		}
	}
	return b.String()
}

func parseParameters(s string) []Parameter {
	var params []Parameter
	pos := 0
	for pos < len(s) {
		pos, params = parseParameter(s, pos, params)
	}
	return params
}

// Parameter value scanning uses an explicit three-state machine.  The
// scanEscaped state remembers which state to resume, since a backslash
// escape is valid both inside and outside quotes.
type scanState int

const (
	scanPlain scanState = iota
	scanQuoted
	scanEscaped
)

// parseParameter parses one name=value pair starting at pos and merges
// it into params.  It returns the position of the next parameter.
func parseParameter(s string, pos int, params []Parameter) (int, []Parameter) {
	end := nameEnd(s, pos)
	name := strings.TrimSpace(s[pos:end])
	if end < len(s) && s[end] == '=' {
		end++
	}

	value := &strings.Builder{}
	state, resume := scanPlain, scanPlain
	for i := end; i < len(s); i++ {
		c := s[i]
		switch state {
		case scanEscaped:
			if c != '"' && c != '\\' {
				// A backslash not followed by a quote or backslash has
				// no meaning in the grammar and stays in the value.
				value.WriteByte('\\')
			}
			value.WriteByte(c)
			state = resume
		case scanQuoted:
			switch c {
			case '"':
				state = scanPlain
			case '\\':
				state, resume = scanEscaped, scanQuoted
			default:
				value.WriteByte(c)
			}
		default: // scanPlain
			switch c {
			case '"':
				state = scanQuoted
			case '\\':
				state, resume = scanEscaped, scanPlain
			case ';':
				params = setParameter(params, name, strings.TrimSpace(value.String()))
				return i + 1, params
			default:
				value.WriteByte(c)
			}
		}
	}
	if state == scanEscaped {
		value.WriteByte('\\')
	}
	params = setParameter(params, name, strings.TrimSpace(value.String()))
	return len(s), params
}

// nameEnd finds the end of a parameter name: the first "=" or ";" at or
// after pos, or the end of the string.
func nameEnd(s string, pos int) int {
	for i := pos; i < len(s); i++ {
		if s[i] == '=' || s[i] == ';' {
			return i
		}
	}
	return len(s)
}

// setParameter updates the value of an existing parameter in place, or
// appends a new one.  Names must match exactly for the update case;
// parameters whose names differ only in case coexist.
func setParameter(params []Parameter, name, value string) []Parameter {
	for i := range params {
		if params[i].Name == name {
			params[i].Value = value
			return params
		}
	}
	return append(params, Parameter{Name: name, Value: value})
}

func removeParameter(params []Parameter, name string) []Parameter {
	for i := range params {
		if params[i].Name == name {
			return append(params[:i], params[i+1:]...)
		}
	}
	return params
}

// isValidMimeType checks the "TOKEN+/TOKEN+" grammar.
func isValidMimeType(s string) bool {
	slash := strings.IndexByte(s, '/')
	if slash < 0 {
		return false
	}
	return isToken(s[:slash]) && isToken(s[slash+1:])
}

func isToken(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isTokenByte(s[i]) {
			return false
		}
	}
	return true
}

// isTokenByte reports whether c is an RFC 2045 token character: any
// printable ASCII character which is not a tspecial.
func isTokenByte(c byte) bool {
	if c <= ' ' || c >= 0x7f {
		return false
	}
	switch c {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=':
		return false
	}
	return true
}
