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
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// charsetFor resolves the charset used for form-encoded payloads: the
// media type's charset parameter, or US-ASCII when the media type is
// absent or has no charset.  This is the single charset resolution used
// by both encoding and decoding, so that the two stay inverses.
func charsetFor(m *MediaType) (encoding.Encoding, error) {
	name := "US-ASCII"
	if m != nil {
		if cs, ok := m.Charset(); ok {
			name = cs
		}
	}
	return lookupCharset(name)
}

// lookupCharset maps an IANA charset name to its encoding.  Matching is
// case-insensitive.
func lookupCharset(name string) (encoding.Encoding, error) {
	// US-ASCII and UTF-8 are resolved locally: they cover almost all
	// data: URLs in the wild, and ianaindex maps US-ASCII to an
	// encoding which passes non-ASCII bytes through unchanged.
	switch {
	case strings.EqualFold(name, "US-ASCII") || strings.EqualFold(name, "ASCII"):
		return asciiEncoding{}, nil
	case strings.EqualFold(name, "UTF-8"):
		return unicode.UTF8, nil
	}
	enc, err := ianaindex.MIME.Encoding(name)
	if err != nil || enc == nil {
		return nil, &UnsupportedCharsetError{Name: name}
	}
	return enc, nil
}

// asciiEncoding is the US-ASCII charset.  Decoding replaces bytes
// outside the ASCII range with U+FFFD, and encoding replaces non-ASCII
// runes with "?".
type asciiEncoding struct{}

func (asciiEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: asciiDecoder{}}
}

func (asciiEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: asciiEncoder{}}
}

func (asciiEncoding) String() string {
	return "US-ASCII"
}

type asciiDecoder struct {
	transform.NopResetter
}

func (asciiDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		c := src[nSrc]
		if c < utf8.RuneSelf {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
		} else {
			if nDst+utf8.RuneLen(utf8.RuneError) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += utf8.EncodeRune(dst[nDst:], utf8.RuneError)
		}
		nSrc++
	}
	return nDst, nSrc, nil
}

type asciiEncoder struct {
	transform.NopResetter
}

func (asciiEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if r < utf8.RuneSelf {
			dst[nDst] = byte(r)
		} else {
			dst[nDst] = '?'
		}
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}
