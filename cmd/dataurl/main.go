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

package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/dataurl"
)

func main() {
	decode := flag.Bool("d", false, "decode a data: URL instead of encoding")
	mediaType := flag.String("t", "", "media type for the encoded URL")
	useBase64 := flag.Bool("base64", true, "base64-encode the payload")
	force := flag.Bool("f", false, "allow binary output on a terminal")
	flag.Parse()

	var err error
	if *decode {
		err = runDecode(flag.Arg(0), *force)
	} else {
		err = runEncode(flag.Arg(0), *mediaType, *useBase64)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "dataurl: %v\n", err)
		os.Exit(1)
	}
}

// runEncode reads the payload from the named file, or from stdin when
// no file is given, and writes the data: URL to stdout.
func runEncode(fname, mediaType string, useBase64 bool) error {
	in := io.Reader(os.Stdin)
	if fname != "" {
		f, err := os.Open(fname)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	b := dataurl.FromReader(in).WithBase64(useBase64)
	if mediaType != "" {
		b = b.WithMediaType(mediaType)
	}
	url, err := b.Build()
	if err != nil {
		return err
	}

	fmt.Print(url)
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println()
	}
	return nil
}

// runDecode parses the URL given as an argument, or read from stdin,
// and writes the decoded content to stdout.  Binary content is not
// written to a terminal unless forced.
func runDecode(arg string, force bool) error {
	spec := arg
	if spec == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		spec = string(bytes.TrimSpace(b))
	}

	u, err := dataurl.Parse(spec)
	if err != nil {
		return err
	}

	if !force && term.IsTerminal(int(os.Stdout.Fd())) && bytes.IndexByte(u.Data, 0) >= 0 {
		return fmt.Errorf("content %q looks binary; use -f to write it to the terminal",
			u.Resource().ContentType())
	}

	_, err = os.Stdout.Write(u.Data)
	return err
}
