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
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

// A Builder assembles a data: URL from a text, byte or stream payload
// and an optional media type.  Methods can be chained:
//
//	url, err := dataurl.FromBytes(img).
//	    WithMediaType("image/png").
//	    Build()
//
// The payload source is not touched until [Builder.Build] is called;
// Build reads it exactly once, and all errors, including read errors
// from a stream source, are reported by Build.
type Builder struct {
	text      func() (string, error) // set for text payloads
	data      func() io.Reader       // set for byte payloads
	useBase64 bool

	mediaType     string
	haveMediaType bool
	paramOps      []paramOp
}

type paramOp struct {
	name   string
	value  string
	remove bool
}

// FromText returns a builder for a data: URL containing the given text.
// Text payloads are always form-encoded, never base64.
func FromText(s string) *Builder {
	return &Builder{
		text: func() (string, error) { return s, nil },
	}
}

// FromTextReader is like [FromText], reading the text from r.  The
// reader is consumed when Build is called.
func FromTextReader(r io.Reader) *Builder {
	return &Builder{
		text: func() (string, error) {
			b, err := io.ReadAll(r)
			if err != nil {
				return "", fmt.Errorf("reading data: %w", err)
			}
			return string(b), nil
		},
	}
}

// FromBytes returns a builder for a data: URL containing the given
// bytes.  Byte payloads are base64-encoded unless [Builder.WithBase64]
// turns this off.
func FromBytes(data []byte) *Builder {
	return &Builder{
		data:      func() io.Reader { return bytes.NewReader(data) },
		useBase64: true,
	}
}

// FromReader is like [FromBytes], reading the bytes from r.  The reader
// is consumed when Build is called; in base64 mode it is streamed
// straight into the URL without being buffered as a whole.
func FromReader(r io.Reader) *Builder {
	return &Builder{
		data:      func() io.Reader { return r },
		useBase64: true,
	}
}

// WithMediaType sets the media type of the URL.  The string may already
// contain parameters; it is parsed, and thus validated, at Build time.
func (b *Builder) WithMediaType(mediaType string) *Builder {
	b.mediaType = mediaType
	b.haveMediaType = true
	return b
}

// WithParameter sets the value of a media type parameter, either
// overriding a parameter of the same name from the WithMediaType string
// or appending a new one.
func (b *Builder) WithParameter(name, value string) *Builder {
	b.paramOps = append(b.paramOps, paramOp{name: name, value: value})
	return b
}

// WithoutParameter removes a media type parameter.
func (b *Builder) WithoutParameter(name string) *Builder {
	b.paramOps = append(b.paramOps, paramOp{name: name, remove: true})
	return b
}

// WithCharset is shorthand for WithParameter("charset", name).
func (b *Builder) WithCharset(name string) *Builder {
	return b.WithParameter("charset", name)
}

// WithBase64 controls whether a byte payload is base64-encoded.  The
// default is true.  Text payloads ignore this setting.
func (b *Builder) WithBase64(enabled bool) *Builder {
	b.useBase64 = enabled
	return b
}

// Build materializes the data: URL.
func (b *Builder) Build() (string, error) {
	mediaType, err := b.buildMediaType()
	if err != nil {
		return "", err
	}

	sb := &strings.Builder{}
	sb.WriteString(Scheme)
	sb.WriteByte(':')
	if mediaType != nil {
		sb.WriteString(mediaType.String())
	}

	switch {
	case b.data != nil && b.useBase64:
		sb.WriteString(base64Marker)
		sb.WriteByte(',')
		if err := appendBase64(sb, b.data()); err != nil {
			return "", fmt.Errorf("reading data: %w", err)
		}
	case b.data != nil:
		raw, err := io.ReadAll(b.data())
		if err != nil {
			return "", fmt.Errorf("reading data: %w", err)
		}
		sb.WriteByte(',')
		if err := appendFormData(sb, mediaType, raw); err != nil {
			return "", err
		}
	default:
		text, err := b.text()
		if err != nil {
			return "", err
		}
		enc, err := charsetFor(mediaType)
		if err != nil {
			return "", err
		}
		raw, err := enc.NewEncoder().String(text)
		if err != nil {
			return "", err
		}
		sb.WriteByte(',')
		sb.WriteString(url.QueryEscape(raw))
	}
	return sb.String(), nil
}

func (b *Builder) buildMediaType() (*MediaType, error) {
	if !b.haveMediaType {
		if len(b.paramOps) > 0 {
			return nil, errors.New("media type parameters without a media type")
		}
		return nil, nil
	}
	m, err := ParseMediaType(b.mediaType)
	if err != nil {
		return nil, err
	}
	params := m.Parameters()
	for _, op := range b.paramOps {
		if op.remove {
			params = removeParameter(params, op.name)
		} else {
			params = setParameter(params, op.name, op.value)
		}
	}
	return NewMediaType(m.MimeType(), params)
}
