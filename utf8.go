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

// decodeRune decodes the first code point in s, which must be non-empty.
// Only the one- to three-byte UTF-8 forms are recognised: no code point
// above U+FFFF has a PDFDocEncoding equivalent, so four-byte forms are
// treated as malformed input here.  Overlong encodings are not detected,
// matching the historic behavior of the security handlers this feeds into.
//
// ok is false if s starts with a malformed or truncated sequence.
func decodeRune(s []byte) (r rune, size int, ok bool) {
	switch {
	case s[0]&0x80 == 0:
		return rune(s[0]), 1, true
	case s[0]&0xE0 == 0xC0 && len(s) >= 2 && s[1]&0xC0 == 0x80:
		r = rune(s[0]&0x1F)<<6 | rune(s[1]&0x3F)
		return r, 2, true
	case s[0]&0xF0 == 0xE0 && len(s) >= 3 && s[1]&0xC0 == 0x80 && s[2]&0xC0 == 0x80:
		r = rune(s[0]&0x0F)<<12 | rune(s[1]&0x3F)<<6 | rune(s[2]&0x3F)
		return r, 3, true
	}
	return 0, 0, false
}

// incompleteRune reports whether s, which must be non-empty, could become a
// valid multi-byte sequence if more input were appended.  This is used to
// tell a sequence split across buffer boundaries from one which is
// genuinely malformed.
func incompleteRune(s []byte) bool {
	switch {
	case s[0]&0xE0 == 0xC0:
		return len(s) < 2
	case s[0]&0xF0 == 0xE0:
		if len(s) < 2 {
			return true
		}
		return s[1]&0xC0 == 0x80 && len(s) < 3
	}
	return false
}
