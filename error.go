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

import "strconv"

// InvalidProtocolError indicates that a URL passed to [Parse] does not
// use the data: scheme.
type InvalidProtocolError struct {
	Scheme string
}

func (err *InvalidProtocolError) Error() string {
	return "not a data: URL (scheme " + strconv.Quote(err.Scheme) + ")"
}

// InvalidMimeTypeError indicates that a mime type does not have the form
// "type/subtype" with both parts built from RFC 2045 token characters.
type InvalidMimeTypeError struct {
	MimeType string
}

func (err *InvalidMimeTypeError) Error() string {
	return "invalid mime type " + strconv.Quote(err.MimeType)
}

// MissingCommaError indicates a data: URL body without the comma that
// separates the media type section from the payload.
type MissingCommaError struct {
	Body string
}

func (err *MissingCommaError) Error() string {
	return "missing comma in data: URL " + strconv.Quote(err.Body)
}

// InvalidBase64Error indicates a base64 payload which cannot be decoded.
type InvalidBase64Error struct {
	Err error
}

func (err *InvalidBase64Error) Error() string {
	return "invalid base64 data: " + err.Err.Error()
}

func (err *InvalidBase64Error) Unwrap() error {
	return err.Err
}

// UnsupportedCharsetError indicates a charset parameter naming a
// character set which is not in the IANA registry.
type UnsupportedCharsetError struct {
	Name string
}

func (err *UnsupportedCharsetError) Error() string {
	return "unsupported charset " + strconv.Quote(err.Name)
}
