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

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/maps"
)

// TestDisjointTables checks that the mode-independent specials and the
// decrypt-only punctuation do not overlap, so that the lookup order in
// mapRune cannot change the result.
func TestDisjointTables(t *testing.T) {
	keys := maps.Keys(pdfDocSpecial)
	slices.Sort(keys)
	for _, r := range keys {
		if _, ok := winPunctuation[r]; ok {
			t.Errorf("%04x is in both special tables", r)
		}
	}
}

// TestSpecialsShadowTable checks that the eight code points with dedicated
// PDFDocEncoding slots take precedence over their entries in the Latin
// Extended table.
func TestSpecialsShadowTable(t *testing.T) {
	for r, want := range pdfDocSpecial {
		if r < 0x100 || r > 0x1FF {
			continue
		}
		c, ok := mapRune(r, Decrypt)
		if !ok || c != want {
			t.Errorf("%04x: got (%02x, %t), want (%02x, true)", r, c, ok, want)
		}
	}
	// U+0160 also has a CP-1250 position, which must not win
	if c, _ := mapRune(0x0160, Decrypt); c != 0x97 {
		t.Errorf("U+0160: got %02x, want 97", c)
	}
	if latinExtended[0x0160-0x100] != 0x8A {
		t.Errorf("table slot for U+0160: got %02x, want 8a",
			latinExtended[0x0160-0x100])
	}
}

func TestLatinExtendedTable(t *testing.T) {
	samples := map[rune]byte{
		0x0100: 'A',  // A with macron
		0x0101: 'a',  // a with macron
		0x0104: 0xA5, // A with ogonek (CP-1250)
		0x0141: 0xA3, // L with stroke (CP-1250)
		0x0191: 0x83, // F with hook (CP-1252 guess)
		0x01C0: '|',  // dental click
		0x01C3: '!',  // retroflex click
		0x01DE: 'A',  // A with diaeresis and macron
		0x01FF: '.',  // no single-byte form
	}
	got := make(map[rune]byte)
	for r := range samples {
		got[r] = latinExtended[r-0x100]
	}
	if d := cmp.Diff(samples, got); d != "" {
		t.Errorf("wrong table values (-want +got):\n%s", d)
	}
}

// TestTableFallbacks pins down the lossy part of the table: no entry is
// zero (every code point in the range yields a byte, never a failure), and
// the number of '.' fallbacks matches the historic table.  A change in
// either would silently break decryption of existing documents.
func TestTableFallbacks(t *testing.T) {
	dots := 0
	for i, c := range latinExtended {
		if c == 0 {
			t.Errorf("entry %04x is zero", 0x100+i)
		}
		if c == '.' {
			dots++
		}
	}
	if dots != 148 {
		t.Errorf("got %d fallback entries, want 148", dots)
	}
}
