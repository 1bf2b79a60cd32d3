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
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name      string
		in        string
		mediaType string // canonical form of the expected media type
		data      string
	}
	cases := []testCase{
		{
			name:      "no_media_type",
			in:        "data:,hello+world",
			mediaType: "text/plain;charset=US-ASCII",
			data:      "hello world",
		},
		{
			name:      "percent_escapes",
			in:        "data:text/plain;charset=UTF-8,hello%20world",
			mediaType: "text/plain;charset=UTF-8",
			data:      "hello world",
		},
		{
			name:      "base64_no_media_type",
			in:        "data:;base64,aGVsbG8gd29ybGQ=",
			mediaType: "text/plain;charset=US-ASCII",
			data:      "hello world",
		},
		{
			name:      "base64_with_media_type",
			in:        "data:application/octet-stream;base64,AAEC",
			mediaType: "application/octet-stream",
			data:      "\x00\x01\x02",
		},
		{
			name:      "base64_with_whitespace",
			in:        "data:;base64,aGVs\nbG8g d29y\tbGQ=",
			mediaType: "text/plain;charset=US-ASCII",
			data:      "hello world",
		},
		{
			name:      "base64_unpadded",
			in:        "data:;base64,QUJD",
			mediaType: "text/plain;charset=US-ASCII",
			data:      "ABC",
		},
		{
			name:      "empty_payload",
			in:        "data:,",
			mediaType: "text/plain;charset=US-ASCII",
			data:      "",
		},
		{
			name:      "empty_base64_payload",
			in:        "data:;base64,",
			mediaType: "text/plain;charset=US-ASCII",
			data:      "",
		},
		{
			name:      "scheme_is_case_insensitive",
			in:        "DATA:,x",
			mediaType: "text/plain;charset=US-ASCII",
			data:      "x",
		},
		{
			name:      "media_type_with_parameters",
			in:        "data:text/plain;foo=bar;charset=UTF-8,abc",
			mediaType: "text/plain;foo=bar;charset=UTF-8",
			data:      "abc",
		},
		{
			name:      "latin1_payload",
			in:        "data:text/plain;charset=ISO-8859-1,caf%E9",
			mediaType: "text/plain;charset=ISO-8859-1",
			data:      "caf\xe9",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := Parse(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			wantType, err := ParseMediaType(tc.mediaType)
			if err != nil {
				t.Fatal(err)
			}
			if !u.MediaType.Equal(wantType) {
				t.Errorf("media type = %v, want %v", u.MediaType, wantType)
			}
			if d := cmp.Diff(tc.data, string(u.Data)); d != "" {
				t.Errorf("data mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("wrong_scheme", func(t *testing.T) {
		_, err := Parse("http://www.example.com/")
		var protoErr *InvalidProtocolError
		if !errors.As(err, &protoErr) {
			t.Fatalf("got %v, want InvalidProtocolError", err)
		}
		if protoErr.Scheme != "http" {
			t.Errorf("error reports scheme %q, want \"http\"", protoErr.Scheme)
		}
	})

	t.Run("no_scheme", func(t *testing.T) {
		_, err := Parse("hello world")
		var protoErr *InvalidProtocolError
		if !errors.As(err, &protoErr) {
			t.Fatalf("got %v, want InvalidProtocolError", err)
		}
	})

	t.Run("missing_comma", func(t *testing.T) {
		_, err := Parse("data:hello+world")
		var commaErr *MissingCommaError
		if !errors.As(err, &commaErr) {
			t.Fatalf("got %v, want MissingCommaError", err)
		}
		if commaErr.Body != "hello+world" {
			t.Errorf("error reports body %q", commaErr.Body)
		}
	})

	t.Run("invalid_mime_type", func(t *testing.T) {
		_, err := Parse("data:application,payload")
		var invErr *InvalidMimeTypeError
		if !errors.As(err, &invErr) {
			t.Fatalf("got %v, want InvalidMimeTypeError", err)
		}
	})

	t.Run("invalid_base64", func(t *testing.T) {
		payload := base64.StdEncoding.EncodeToString([]byte("some test data"))
		for _, spec := range []string{
			"data:;base64," + payload + "%",
			"data:application/octet-stream;base64," + payload + "%",
			"data:application/octet-stream;charset=UTF-8;base64," + payload + "%",
		} {
			_, err := Parse(spec)
			var b64Err *InvalidBase64Error
			if !errors.As(err, &b64Err) {
				t.Errorf("Parse(%q): got %v, want InvalidBase64Error", spec, err)
			}
		}
	})

	t.Run("unsupported_charset", func(t *testing.T) {
		_, err := Parse("data:text/plain;charset=something+invalid,hello+world")
		var csErr *UnsupportedCharsetError
		if !errors.As(err, &csErr) {
			t.Fatalf("got %v, want UnsupportedCharsetError", err)
		}
		if csErr.Name != "something+invalid" {
			t.Errorf("error reports charset %q", csErr.Name)
		}
	})

	t.Run("invalid_percent_escape", func(t *testing.T) {
		_, err := Parse("data:,abc%zz")
		if err == nil {
			t.Error("invalid escape unexpectedly accepted")
		}
	})
}

func TestEncode(t *testing.T) {
	textPlain, err := ParseMediaType("text/plain")
	if err != nil {
		t.Fatal(err)
	}
	utf8Type, err := ParseMediaType("text/plain;charset=UTF-8")
	if err != nil {
		t.Fatal(err)
	}

	type testCase struct {
		name      string
		mediaType *MediaType
		data      string
		useBase64 bool
		want      string
	}
	cases := []testCase{
		{
			name: "plain_no_media_type",
			data: "hello world",
			want: "data:,hello+world",
		},
		{
			name:      "plain_with_media_type",
			mediaType: textPlain,
			data:      "hello world",
			want:      "data:text/plain,hello+world",
		},
		{
			name:      "base64_no_media_type",
			data:      "hello world",
			useBase64: true,
			want:      "data:;base64,aGVsbG8gd29ybGQ=",
		},
		{
			name:      "base64_with_media_type",
			mediaType: textPlain,
			data:      "hello world",
			useBase64: true,
			want:      "data:text/plain;base64,aGVsbG8gd29ybGQ=",
		},
		{
			name:      "base64_empty_data",
			data:      "",
			useBase64: true,
			want:      "data:;base64,",
		},
		{
			name:      "utf8_escapes",
			mediaType: utf8Type,
			data:      "café +",
			want:      "data:text/plain;charset=UTF-8,caf%C3%A9+%2B",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Encode(tc.mediaType, []byte(tc.data), tc.useBase64)
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("Encode = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncodeUnsupportedCharset(t *testing.T) {
	m, err := ParseMediaType("text/plain;charset=no-such-charset")
	if err != nil {
		t.Fatal(err)
	}
	_, err = Encode(m, []byte("x"), false)
	var csErr *UnsupportedCharsetError
	if !errors.As(err, &csErr) {
		t.Fatalf("got %v, want UnsupportedCharsetError", err)
	}
}

func TestRoundTripBase64(t *testing.T) {
	m, err := ParseMediaType("application/octet-stream")
	if err != nil {
		t.Fatal(err)
	}

	payloads := [][]byte{
		nil,
		[]byte("hello world"),
		{0, 1, 2, 3, 254, 255},
		bytes.Repeat([]byte{0xa5, 0x00, 0xff}, 1000),
	}
	for _, data := range payloads {
		spec, err := Encode(m, data, true)
		if err != nil {
			t.Fatal(err)
		}
		u, err := Parse(spec)
		if err != nil {
			t.Fatal(err)
		}
		if !u.MediaType.Equal(m) {
			t.Errorf("media type = %v, want %v", u.MediaType, m)
		}
		if !bytes.Equal(u.Data, data) {
			t.Errorf("data = %q, want %q", u.Data, data)
		}
	}
}

func TestRoundTripFormEncoded(t *testing.T) {
	m, err := ParseMediaType("text/plain;charset=UTF-8")
	if err != nil {
		t.Fatal(err)
	}

	payloads := []string{
		"",
		"hello world",
		"café",
		"a=b&c=d;e,f%g",
		"line one\nline two\r\n",
		"日本語",
	}
	for _, data := range payloads {
		spec, err := Encode(m, []byte(data), false)
		if err != nil {
			t.Fatal(err)
		}
		u, err := Parse(spec)
		if err != nil {
			t.Fatal(err)
		}
		if !u.MediaType.Equal(m) {
			t.Errorf("media type = %v, want %v", u.MediaType, m)
		}
		if string(u.Data) != data {
			t.Errorf("data = %q, want %q", u.Data, data)
		}
	}
}

func TestURIString(t *testing.T) {
	m, err := ParseMediaType("text/plain;charset=UTF-8")
	if err != nil {
		t.Fatal(err)
	}
	u := &URI{MediaType: m, Data: []byte("hello world")}

	want := "data:text/plain;charset=UTF-8;base64,aGVsbG8gd29ybGQ="
	if got := u.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	u2, err := Parse(u.String())
	if err != nil {
		t.Fatal(err)
	}
	if !u.Equal(u2) {
		t.Error("URI does not round trip through String")
	}
}

func FuzzRoundTripBase64(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("hello world"))
	f.Add([]byte{0, 1, 2, 255})

	f.Fuzz(func(t *testing.T, data []byte) {
		spec, err := Encode(nil, data, true)
		if err != nil {
			t.Fatal(err)
		}
		u, err := Parse(spec)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(u.Data, data) {
			t.Errorf("data = %q, want %q", u.Data, data)
		}
		if !u.MediaType.Equal(DefaultMediaType) {
			t.Errorf("media type = %v, want default", u.MediaType)
		}
	})
}

func FuzzRoundTripFormEncoded(f *testing.F) {
	f.Add("hello world")
	f.Add("café")
	f.Add("%%%+++;;;,,,")

	f.Fuzz(func(t *testing.T, s string) {
		if !utf8.ValidString(s) {
			return
		}
		m, err := ParseMediaType("text/plain;charset=UTF-8")
		if err != nil {
			t.Fatal(err)
		}
		spec, err := Encode(m, []byte(s), false)
		if err != nil {
			t.Fatal(err)
		}
		if strings.ContainsAny(spec, " \n") {
			t.Errorf("encoded URL contains whitespace: %q", spec)
		}
		u, err := Parse(spec)
		if err != nil {
			t.Fatal(err)
		}
		if string(u.Data) != s {
			t.Errorf("data = %q, want %q", u.Data, s)
		}
	})
}
