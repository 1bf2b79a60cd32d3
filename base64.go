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
	"encoding/base64"
	"io"
	"strings"
)

// appendBase64 streams r through a base64 encoder and appends the
// encoded text to dest.  The payload is never materialized: encoded
// quanta go into the builder as soon as they are complete.  The builder
// doubles as the encoder's byte sink; the encoder guarantees that every
// byte written to it is a base64 alphabet character, so no validation
// happens on the way.
func appendBase64(dest *strings.Builder, r io.Reader) error {
	enc := base64.NewEncoder(base64.StdEncoding, dest)
	if _, err := io.Copy(enc, r); err != nil {
		return err
	}
	return enc.Close()
}

// decodeBase64 decodes a base64 payload.  ASCII whitespace may appear
// anywhere in the payload and is removed first.  Input without trailing
// padding is accepted; any other deviation from the standard alphabet
// and padding rules is an error.
func decodeBase64(s string) ([]byte, error) {
	s = stripSpace(s)
	enc := base64.StdEncoding
	if !strings.HasSuffix(s, "=") {
		enc = base64.RawStdEncoding
	}
	b, err := enc.DecodeString(s)
	if err != nil {
		return nil, &InvalidBase64Error{Err: err}
	}
	return b, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			return -1
		}
		return r
	}, s)
}
