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
	"bytes"
	"fmt"
	"net/url"
	"strings"
)

// Scheme is the URL scheme handled by this package.
const Scheme = "data"

const base64Marker = ";base64"

// A URI is the decoded form of a data: URL: a media type and the raw
// content bytes.  The caller owns the value; the codec keeps no
// references to it.
type URI struct {
	MediaType *MediaType
	Data      []byte
}

// Parse parses a complete data: URL.  The scheme is matched without
// regard to case; any other scheme is an *[InvalidProtocolError].
func Parse(s string) (*URI, error) {
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return nil, &InvalidProtocolError{Scheme: s}
	}
	if !strings.EqualFold(s[:idx], Scheme) {
		return nil, &InvalidProtocolError{Scheme: s[:idx]}
	}
	return ParseBody(s[idx+1:])
}

// ParseBody parses the body of a data: URL, i.e. everything after the
// "data:" prefix.
func ParseBody(body string) (*URI, error) {
	idxComma := strings.IndexByte(body, ',')
	if idxComma < 0 {
		return nil, &MissingCommaError{Body: body}
	}

	mediaTypeEnd := idxComma
	isBase64 := strings.HasSuffix(body[:idxComma], base64Marker)
	if isBase64 {
		mediaTypeEnd -= len(base64Marker)
	}

	mediaType := DefaultMediaType
	if mediaTypeEnd > 0 {
		var err error
		mediaType, err = ParseMediaType(body[:mediaTypeEnd])
		if err != nil {
			return nil, err
		}
	}

	var data []byte
	var err error
	if isBase64 {
		data, err = decodeBase64(body[idxComma+1:])
	} else {
		data, err = decodeFormData(mediaType, body[idxComma+1:])
	}
	if err != nil {
		return nil, err
	}
	return &URI{MediaType: mediaType, Data: data}, nil
}

// Encode encodes a media type and content bytes as a complete data:
// URL.  A nil media type is omitted from the output; readers then
// assume text/plain;charset=US-ASCII per RFC 2397.
//
// With useBase64 the payload is base64 text and any content round-trips
// through [Parse] unchanged.  Without it the payload is form-encoded
// text in the resolved charset, which round-trips for every content the
// charset can represent.
func Encode(m *MediaType, data []byte, useBase64 bool) (string, error) {
	body, err := EncodeBody(m, data, useBase64)
	if err != nil {
		return "", err
	}
	return Scheme + ":" + body, nil
}

// EncodeBody is like [Encode] but omits the "data:" prefix.
func EncodeBody(m *MediaType, data []byte, useBase64 bool) (string, error) {
	b := &strings.Builder{}
	if m != nil {
		b.WriteString(m.String())
	}
	if useBase64 {
		b.WriteString(base64Marker)
		b.WriteByte(',')
		if err := appendBase64(b, bytes.NewReader(data)); err != nil {
			return "", err
		}
		return b.String(), nil
	}
	b.WriteByte(',')
	if err := appendFormData(b, m, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// decodeFormData decodes a form-encoded payload ("+" for space, "%XX"
// escapes) in the charset given by the media type.  The unescaped bytes
// are decoded as text in that charset and converted back to bytes in
// the same charset; for any charset-representable input this is the
// identity on the unescaped bytes.
func decodeFormData(m *MediaType, payload string) ([]byte, error) {
	enc, err := charsetFor(m)
	if err != nil {
		return nil, err
	}
	raw, err := url.QueryUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid data: URL payload: %w", err)
	}
	text, err := enc.NewDecoder().String(raw)
	if err != nil {
		return nil, err
	}
	return enc.NewEncoder().Bytes([]byte(text))
}

// appendFormData is the inverse of decodeFormData: the content bytes
// pass through the charset once, to pin down the representable subset,
// and the result is form-encoded.
func appendFormData(b *strings.Builder, m *MediaType, data []byte) error {
	enc, err := charsetFor(m)
	if err != nil {
		return err
	}
	text, err := enc.NewDecoder().String(string(data))
	if err != nil {
		return err
	}
	raw, err := enc.NewEncoder().String(text)
	if err != nil {
		return err
	}
	b.WriteString(url.QueryEscape(raw))
	return nil
}

// String returns the URI as a data: URL in base64 form.  Base64 does
// not depend on the charset, so this succeeds for any content.
func (u *URI) String() string {
	body, _ := EncodeBody(u.MediaType, u.Data, true)
	return Scheme + ":" + body
}

// Equal reports whether two URIs have equal media types and content.
func (u *URI) Equal(other *URI) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.MediaType.Equal(other.MediaType) && bytes.Equal(u.Data, other.Data)
}
