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

// Package dataurl encodes and decodes data: URLs as specified in RFC 2397.
//
// A data: URL embeds content directly in the URL string:
//
//	data:[<mediatype>][;base64],<data>
//
// The media type is an RFC 2045 media type with optional parameters.  If
// it is absent, readers must assume "text/plain;charset=US-ASCII".  The
// payload is either base64 text (when the ";base64" marker is present) or
// form-encoded text in the media type's charset.
//
// [Parse] decodes a complete URL into a media type and content bytes:
//
//	u, err := dataurl.Parse("data:text/plain;charset=UTF-8,hello%20world")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(u.MediaType, string(u.Data))
//
// [Encode] is the inverse operation.  For more control over media type
// parameters, or to encode directly from a stream, use a [Builder]:
//
//	url, err := dataurl.FromReader(f).
//	    WithMediaType("application/octet-stream").
//	    Build()
//
// Decoding a URL and encoding the result gives back an equivalent URL,
// and vice versa, for every input the resolved charset can represent;
// base64 URLs round-trip unconditionally.
package dataurl
