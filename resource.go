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
	"io"
	"strings"
	"sync"
)

// A Resource presents the decoded content of a data: URL the way a
// resource-loading framework expects it: a content type, a length, and
// a reader over the bytes.
type Resource struct {
	uri *URI
}

// Resource wraps the URI for use by resource-loading code.
func (u *URI) Resource() *Resource {
	return &Resource{uri: u}
}

// ContentType returns the canonical media type of the content.
func (r *Resource) ContentType() string {
	return r.uri.MediaType.String()
}

// ContentEncoding returns the charset of the content, or "" if the
// media type has no charset parameter.
func (r *Resource) ContentEncoding() string {
	cs, _ := r.uri.MediaType.Charset()
	return cs
}

// ContentLength returns the length of the decoded content in bytes.
func (r *Resource) ContentLength() int64 {
	return int64(len(r.uri.Data))
}

// Open returns a reader over the decoded content.  Every call returns
// an independent reader positioned at the start.
func (r *Resource) Open() io.Reader {
	return bytes.NewReader(r.uri.Data)
}

// A Codec is a decode/encode function pair for the body of one URL
// scheme.  The registry below lets an application dispatch URL bodies
// to codecs by scheme name; this package only provides and registers
// the "data" codec.
type Codec struct {
	Decode func(body string) (*URI, error)
	Encode func(m *MediaType, data []byte, useBase64 bool) (string, error)
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Codec{
		Scheme: {Decode: ParseBody, Encode: EncodeBody},
	}
)

// RegisterScheme makes a codec available under the given scheme name.
// Scheme names are case-insensitive.
func RegisterScheme(name string, c Codec) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[strings.ToLower(name)] = c
}

// LookupScheme returns the codec registered for a scheme name.
func LookupScheme(name string) (Codec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[strings.ToLower(name)]
	return c, ok
}
