// seehuhn.de/go/pdfpass - PDF password encoding for legacy security handlers
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

package pdfpass

import "io"

// Mode selects which characters are acceptable in a password.
type Mode int

// When a document is encrypted, only the most portable characters are
// allowed, so that the new password can later be typed identically on a
// different platform.  When a document is decrypted, the password already
// exists and as many characters as possible are accepted.
const (
	Encrypt Mode = iota + 1
	Decrypt
)

// Size returns the number of bytes Convert would write for the given
// password, without writing anything.  The password is UTF-8 encoded; a
// zero byte, if present, ends the password early.
//
// The error is [ErrInvalidUTF8] or [ErrUnmappable] if the password cannot
// be converted; in this case Convert would fail in the same way.
func Size(src []byte, mode Mode) (int, error) {
	return convert(nil, src, mode, false)
}

// Convert converts the UTF-8 encoded password src to PDFDocEncoding and
// writes the result to dst.  It returns the number of bytes written.
// Callers should size dst using [Size]; if dst is too small, Convert
// returns [io.ErrShortBuffer].
//
// Conversion is all or nothing: if any character of src is rejected,
// Convert returns [ErrInvalidUTF8] or [ErrUnmappable] and the contents of
// dst must not be used.
func Convert(dst, src []byte, mode Mode) (int, error) {
	return convert(dst, src, mode, true)
}

// Encode converts a password to PDFDocEncoding in a freshly allocated
// buffer of exactly the right size.
func Encode(password string, mode Mode) ([]byte, error) {
	src := []byte(password)
	n, err := Size(src, mode)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, n)
	_, err = Convert(dst, src, mode)
	if err != nil {
		return nil, err
	}
	return dst, nil
}

// convert implements both the capacity query and the fill pass, so that
// the two are guaranteed to agree on counts and on failures.
func convert(dst, src []byte, mode Mode, write bool) (int, error) {
	n := 0
	for i := 0; i < len(src) && src[i] != 0; {
		r, size, ok := decodeRune(src[i:])
		if !ok {
			return 0, ErrInvalidUTF8
		}
		i += size

		c, ok := mapRune(r, mode)
		if !ok {
			return 0, ErrUnmappable
		}

		if write {
			if n >= len(dst) {
				return 0, io.ErrShortBuffer
			}
			dst[n] = c
		}
		n++
	}
	return n, nil
}
