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

// pdfDocSpecial maps the eight code points which have dedicated
// PDFDocEncoding slots but no ISO 8859-1 position.  These are valid
// password characters in both modes.
var pdfDocSpecial = map[rune]byte{
	0x0152: 0x96, // OE
	0x0153: 0x9C, // oe
	0x0160: 0x97, // Scaron
	0x0161: 0x9D, // scaron
	0x0178: 0x98, // Ydieresis
	0x017D: 0x99, // Zcaron
	0x017E: 0x9E, // zcaron
	0x0192: 0x86, // florin
}

// winPunctuation maps punctuation code points which Acrobat/Reader accept
// as password input on Windows.  Since the mapping is platform dependent,
// these are only allowed when checking an existing password, never when
// setting a new one.
var winPunctuation = map[rune]byte{
	0x02C6: 0x1A, // circumflex
	0x02DC: 0x1F, // tilde
	0x2013: 0x85, // endash
	0x2014: 0x84, // emdash
	0x2018: 0x8F, // quoteleft
	0x2019: 0x90, // quoteright
	0x201A: 0x91, // quotesinglbase
	0x201C: 0x8D, // quotedblleft
	0x201D: 0x8E, // quotedblright
	0x201E: 0x8C, // quotedblbase
	0x2020: 0x81, // dagger
	0x2021: 0x82, // daggerdbl
	0x2022: 0x80, // bullet
	0x2026: 0x83, // ellipsis
	0x2030: 0x8B, // perthousand
	0x2039: 0x88, // guilsinglleft
	0x203A: 0x89, // guilsinglright
	0x20AC: 0xA0, // Euro
	0x2122: 0x92, // trademark
}

// mapRune returns the PDFDocEncoding byte for the code point r.  ok is
// false if r cannot be used in a password under the given mode.
func mapRune(r rune, mode Mode) (c byte, ok bool) {
	if 0x20 <= r && r < 0x7F || 0xA0 <= r && r <= 0xFF {
		return byte(r), true
	}
	if c, ok := pdfDocSpecial[r]; ok {
		return c, true
	}
	if mode == Encrypt {
		// Restrict new passwords to characters which can be typed
		// identically on every platform.
		return 0, false
	}
	if 0x100 <= r && r <= 0x1FF {
		return latinExtended[r-0x100], true
	}
	c, ok = winPunctuation[r]
	return c, ok
}
