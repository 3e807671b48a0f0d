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

// latinExtended maps the code points U+0100 to U+01FF to single-byte
// alternatives.  Acrobat/Reader accept these code points as password input
// for revision 4 security and earlier, but map them to single bytes in a
// platform dependent way.  The values here reproduce the behavior observed
// on Windows: mostly CP-1250, a few CP-1252 guesses, and '.' for code
// points with no usable single-byte form.  Reader maps these to '.' as
// well, so the fallback must yield a byte rather than fail.
//
// The values are preserved verbatim for compatibility, including the
// guesses.  The eight code points with dedicated PDFDocEncoding slots
// (U+0152, U+0153, U+0160, U+0161, U+0178, U+017D, U+017E, U+0192) are
// handled before this table is consulted, so their entries below are
// never used.
var latinExtended = [256]byte{
	'A',  // U+0100 Latin Capital Letter A with macron
	'a',  // U+0101 Latin Small Letter A with macron
	0xC3, // U+0102 Latin Capital Letter A with breve
	0xC4, // U+0103 Latin Small Letter A with breve
	0xA5, // U+0104 Latin Capital Letter A with ogonek
	0xB9, // U+0105 Latin Small Letter A with ogonek
	0xC6, // U+0106 Latin Capital Letter C with acute
	0xE6, // U+0107 Latin Small Letter C with acute
	'.',  // U+0108 Latin Capital Letter C with circumflex
	'.',  // U+0109 Latin Small Letter C with circumflex
	'.',  // U+010A Latin Capital Letter C with dot above
	'.',  // U+010B Latin Small Letter C with dot above
	0xC8, // U+010C Latin Capital Letter C with caron
	0xE8, // U+010D Latin Small Letter C with caron
	0xCF, // U+010E Latin Capital Letter D with caron
	0xEF, // U+010F Latin Small Letter D with caron
	0xD0, // U+0110 Latin Capital Letter D with stroke
	0xF0, // U+0111 Latin Small Letter D with stroke
	'E',  // U+0112 Latin Capital Letter E with macron
	'e',  // U+0113 Latin Small Letter E with macron
	'.',  // U+0114 Latin Capital Letter E with breve
	'.',  // U+0115 Latin Small Letter E with breve
	'E',  // U+0116 Latin Capital Letter E with dot above
	'e',  // U+0117 Latin Small Letter E with dot above
	0xCA, // U+0118 Latin Capital Letter E with ogonek
	0xEA, // U+0119 Latin Small Letter E with ogonek
	0xCC, // U+011A Latin Capital Letter E with caron
	0xEC, // U+011B Latin Small Letter E with caron
	'.',  // U+011C Latin Capital Letter G with circumflex
	'.',  // U+011D Latin Small Letter G with circumflex
	'G',  // U+011E Latin Capital Letter G with breve
	'g',  // U+011F Latin Small Letter G with breve
	'.',  // U+0120 Latin Capital Letter G with dot above
	'.',  // U+0121 Latin Small Letter G with dot above
	'G',  // U+0122 Latin Capital Letter G with cedilla
	'g',  // U+0123 Latin Small Letter G with cedilla
	'.',  // U+0124 Latin Capital Letter H with circumflex
	'.',  // U+0125 Latin Small Letter H with circumflex
	'.',  // U+0126 Latin Capital Letter H with stroke
	'.',  // U+0127 Latin Small Letter H with stroke
	'.',  // U+0128 Latin Capital Letter I with tilde
	'.',  // U+0129 Latin Small Letter I with tilde
	'I',  // U+012A Latin Capital Letter I with macron
	'i',  // U+012B Latin Small Letter I with macron
	'.',  // U+012C Latin Capital Letter I with breve
	'.',  // U+012D Latin Small Letter I with breve
	'I',  // U+012E Latin Capital Letter I with ogonek
	'i',  // U+012F Latin Small Letter I with ogonek
	'I',  // U+0130 Latin Capital Letter I with dot above
	'i',  // U+0131 Latin Small Letter dotless I
	'.',  // U+0132 Latin Capital Ligature IJ
	'.',  // U+0133 Latin Small Ligature IJ
	'.',  // U+0134 Latin Capital Letter J with circumflex
	'.',  // U+0135 Latin Small Letter J with circumflex
	'K',  // U+0136 Latin Capital Letter K with cedilla
	'k',  // U+0137 Latin Small Letter K with cedilla
	'.',  // U+0138 Latin Small Letter Kra
	0xC5, // U+0139 Latin Capital Letter L with acute
	0xE5, // U+013A Latin Small Letter L with acute
	'L',  // U+013B Latin Capital Letter L with cedilla
	'l',  // U+013C Latin Small Letter L with cedilla
	0xBC, // U+013D Latin Capital Letter L with caron
	0xBE, // U+013E Latin Small Letter L with caron
	'.',  // U+013F Latin Capital Letter L with middle dot
	'.',  // U+0140 Latin Small Letter L with middle dot
	0xA3, // U+0141 Latin Capital Letter L with stroke
	0xB3, // U+0142 Latin Small Letter L with stroke
	0xD1, // U+0143 Latin Capital Letter N with acute
	0xF1, // U+0144 Latin Small Letter N with acute
	'N',  // U+0145 Latin Capital Letter N with cedilla
	'n',  // U+0146 Latin Small Letter N with cedilla
	0xD2, // U+0147 Latin Capital Letter N with caron
	0xF2, // U+0148 Latin Small Letter N with caron
	'.',  // U+0149 Latin Small Letter N preceded by apostrophe
	'.',  // U+014A Latin Capital Letter Eng
	'.',  // U+014B Latin Small Letter Eng
	'O',  // U+014C Latin Capital Letter O with macron
	'o',  // U+014D Latin Small Letter O with macron
	'.',  // U+014E Latin Capital Letter O with breve
	'.',  // U+014F Latin Small Letter O with breve
	0xD5, // U+0150 Latin Capital Letter O with double acute
	0xF5, // U+0151 Latin Small Letter O with double acute
	0x96, // U+0152 Latin Capital Ligature OE
	0x9C, // U+0153 Latin Small Ligature OE
	0xC0, // U+0154 Latin Capital Letter R with acute
	0xE0, // U+0155 Latin Small Letter R with acute
	'R',  // U+0156 Latin Capital Letter R with cedilla
	'r',  // U+0157 Latin Small Letter R with cedilla
	0xD8, // U+0158 Latin Capital Letter R with caron
	0xF8, // U+0159 Latin Small Letter R with caron
	0x8C, // U+015A Latin Capital Letter S with acute
	0x9C, // U+015B Latin Small Letter S with acute
	'.',  // U+015C Latin Capital Letter S with circumflex
	'.',  // U+015D Latin Small Letter S with circumflex
	0xAA, // U+015E Latin Capital Letter S with cedilla
	0xBA, // U+015F Latin Small Letter S with cedilla
	0x8A, // U+0160 Latin Capital Letter S with caron
	0x9A, // U+0161 Latin Small Letter S with caron
	0xDE, // U+0162 Latin Capital Letter T with cedilla
	0xFE, // U+0163 Latin Small Letter T with cedilla
	0x8D, // U+0164 Latin Capital Letter T with caron
	0x9D, // U+0165 Latin Small Letter T with caron
	'T',  // U+0166 Latin Capital Letter T with stroke
	't',  // U+0167 Latin Small Letter T with stroke
	'.',  // U+0168 Latin Capital Letter U with tilde
	'.',  // U+0169 Latin Small Letter U with tilde
	'U',  // U+016A Latin Capital Letter U with macron
	'u',  // U+016B Latin Small Letter U with macron
	'.',  // U+016C Latin Capital Letter U with breve
	'.',  // U+016D Latin Small Letter U with breve
	0xD9, // U+016E Latin Capital Letter U with ring above
	0xF9, // U+016F Latin Small Letter U with ring above
	0xDB, // U+0170 Latin Capital Letter U with double acute
	0xFB, // U+0171 Latin Small Letter U with double acute
	'U',  // U+0172 Latin Capital Letter U with ogonek
	'u',  // U+0173 Latin Small Letter U with ogonek
	'.',  // U+0174 Latin Capital Letter W with circumflex
	'.',  // U+0175 Latin Small Letter W with circumflex
	'.',  // U+0176 Latin Capital Letter Y with circumflex
	'.',  // U+0177 Latin Small Letter Y with circumflex
	0x98, // U+0178 Latin Capital Letter Y with diaeresis
	0x8F, // U+0179 Latin Capital Letter Z with acute
	0x9F, // U+017A Latin Small Letter Z with acute
	0xAF, // U+017B Latin Capital Letter Z with dot above
	0xBF, // U+017C Latin Small Letter Z with dot above
	0x99, // U+017D Latin Capital Letter Z with caron
	0x9E, // U+017E Latin Small Letter Z with caron
	'.',  // U+017F Latin Small Letter long S
	'b',  // U+0180 Latin Small Letter B with stroke
	'.',  // U+0181 Latin Capital Letter B with hook
	'.',  // U+0182 Latin Capital Letter B with top bar
	'.',  // U+0183 Latin Small Letter B with top bar
	'.',  // U+0184 Latin Capital Letter Tone Six
	'.',  // U+0185 Latin Small Letter Tone Six
	'.',  // U+0186 Latin Capital Letter Open O
	'.',  // U+0187 Latin Capital Letter C with hook
	'.',  // U+0188 Latin Small Letter C with hook
	0xD0, // U+0189 Latin Capital Letter African D
	'.',  // U+018A Latin Capital Letter D with hook
	'.',  // U+018B Latin Capital Letter D with top bar
	'.',  // U+018C Latin Small Letter D with top bar
	'.',  // U+018D Latin Small Letter Turned Delta
	'.',  // U+018E Latin Capital Letter Reversed E
	'.',  // U+018F Latin Capital Letter Schwa
	'.',  // U+0190 Latin Capital Letter Open E
	0x83, // U+0191 Latin Capital Letter F with hook (guess, CP-1252)
	0x83, // U+0192 Latin Small Letter F with hook (guess, CP-1252)
	'.',  // U+0193 Latin Capital Letter G with hook
	'.',  // U+0194 Latin Capital Letter Gamma
	'.',  // U+0195 Latin Small Letter HV
	'.',  // U+0196 Latin Capital Letter Iota
	'I',  // U+0197 Latin Capital Letter I with stroke
	'.',  // U+0198 Latin Capital Letter K with hook
	'.',  // U+0199 Latin Small Letter K with hook
	'l',  // U+019A Latin Small Letter L with bar
	'.',  // U+019B Latin Small Letter Lambda with stroke
	'.',  // U+019C Latin Capital Letter Turned M
	'.',  // U+019D Latin Capital Letter N with left hook
	'.',  // U+019E Latin Small Letter N with long right leg
	'O',  // U+019F Latin Capital Letter O with middle tilde
	'O',  // U+01A0 Latin Capital Letter O with horn
	'o',  // U+01A1 Latin Small Letter O with horn
	'.',  // U+01A2 Latin Capital Letter OI
	'.',  // U+01A3 Latin Small Letter OI
	'.',  // U+01A4 Latin Capital Letter P with hook
	'.',  // U+01A5 Latin Small Letter P with hook
	'.',  // U+01A6 Latin Letter YR
	'.',  // U+01A7 Latin Capital Letter Tone Two
	'.',  // U+01A8 Latin Small Letter Tone Two
	'.',  // U+01A9 Latin Capital Letter Esh
	'.',  // U+01AA Latin Letter Reversed Esh Loop
	't',  // U+01AB Latin Small Letter T with palatal hook
	'.',  // U+01AC Latin Capital Letter T with hook
	'.',  // U+01AD Latin Small Letter T with hook
	'T',  // U+01AE Latin Capital Letter T with retroflex hook
	'U',  // U+01AF Latin Capital Letter U with horn
	'u',  // U+01B0 Latin Small Letter U with horn
	'.',  // U+01B1 Latin Capital Letter Upsilon
	'.',  // U+01B2 Latin Capital Letter V with hook
	'.',  // U+01B3 Latin Capital Letter Y with hook
	'.',  // U+01B4 Latin Small Letter Y with hook
	'.',  // U+01B5 Latin Capital Letter Z with stroke
	'.',  // U+01B6 Latin Small Letter Z with stroke
	'.',  // U+01B7 Latin Capital Letter Ezh
	'.',  // U+01B8 Latin Capital Letter Ezh reversed
	'.',  // U+01B9 Latin Small Letter Ezh reversed
	'.',  // U+01BA Latin Small Letter Ezh with tail
	'.',  // U+01BB Latin Letter Two with stroke
	'.',  // U+01BC Latin Capital Letter Tone Five
	'.',  // U+01BD Latin Small Letter Tone Five
	'.',  // U+01BE Latin Letter Inverted Glottal Stop with stroke
	'.',  // U+01BF Latin Letter Wynn
	'|',  // U+01C0 Latin Letter Dental Click
	'.',  // U+01C1 Latin Letter Lateral Click
	'.',  // U+01C2 Latin Letter Alveolar Click
	'!',  // U+01C3 Latin Letter Retroflex Click
	'.',  // U+01C4 Latin Capital Letter DZ with caron
	'.',  // U+01C5 Latin Capital Letter D with Small Letter Z with caron
	'.',  // U+01C6 Latin Small Letter DZ with caron
	'.',  // U+01C7 Latin Capital Letter LJ
	'.',  // U+01C8 Latin Capital Letter L with Small Letter J
	'.',  // U+01C9 Latin Small Letter LJ
	'.',  // U+01CA Latin Capital Letter NJ
	'.',  // U+01CB Latin Capital Letter N with Small Letter J
	'.',  // U+01CC Latin Small Letter NJ
	'.',  // U+01CD Latin Capital Letter A with caron
	'.',  // U+01CE Latin Small Letter A with caron
	'.',  // U+01CF Latin Capital Letter I with caron
	'.',  // U+01D0 Latin Small Letter I with caron
	'.',  // U+01D1 Latin Capital Letter O with caron
	'.',  // U+01D2 Latin Small Letter O with caron
	'.',  // U+01D3 Latin Capital Letter U with caron
	'.',  // U+01D4 Latin Small Letter U with caron
	'.',  // U+01D5 Latin Capital Letter U with diaeresis and macron
	'.',  // U+01D6 Latin Small Letter U with diaeresis and macron
	'.',  // U+01D7 Latin Capital Letter U with diaeresis and acute
	'.',  // U+01D8 Latin Small Letter U with diaeresis and acute
	'.',  // U+01D9 Latin Capital Letter U with diaeresis and caron
	'.',  // U+01DA Latin Small Letter U with diaeresis and caron
	'.',  // U+01DB Latin Capital Letter U with diaeresis and grave
	'.',  // U+01DC Latin Small Letter U with diaeresis and grave
	'.',  // U+01DD Latin Small Letter Turned E
	'A',  // U+01DE Latin Capital Letter A with diaeresis and macron
	'a',  // U+01DF Latin Small Letter A with diaeresis and macron
	'.',  // U+01E0 Latin Capital Letter A with dot above and macron
	'.',  // U+01E1 Latin Small Letter A with dot above and macron
	'.',  // U+01E2 Latin Capital Letter Æ with macron
	'.',  // U+01E3 Latin Small Letter æ with macron
	'G',  // U+01E4 Latin Capital Letter G with stroke
	'g',  // U+01E5 Latin Small Letter G with stroke
	'.',  // U+01E6 Latin Capital Letter G with caron
	'.',  // U+01E7 Latin Small Letter G with caron
	'.',  // U+01E8 Latin Capital Letter K with caron
	'.',  // U+01E9 Latin Small Letter K with caron
	'.',  // U+01EA Latin Capital Letter O with ogonek
	'.',  // U+01EB Latin Small Letter O with ogonek
	'O',  // U+01EC Latin Capital Letter O with ogonek and macron
	'o',  // U+01ED Latin Small Letter O with ogonek and macron
	'.',  // U+01EE Latin Capital Letter Ezh with caron
	'.',  // U+01EF Latin Small Letter Ezh with caron
	'.',  // U+01F0 Latin Small Letter J with caron
	'.',  // U+01F1 Latin Capital Letter DZ
	'.',  // U+01F2 Latin Capital Letter D with Small Letter Z
	'.',  // U+01F3 Latin Small Letter DZ
	'.',  // U+01F4 Latin Capital Letter G with acute
	'.',  // U+01F5 Latin Small Letter G with acute
	'.',  // U+01F6 Latin Capital Letter Hwair
	'.',  // U+01F7 Latin Capital Letter Wynn
	'.',  // U+01F8 Latin Capital Letter N with grave
	'.',  // U+01F9 Latin Small Letter N with grave
	'.',  // U+01FA Latin Capital Letter A with ring above and acute
	'.',  // U+01FB Latin Small Letter A with ring above and acute
	'.',  // U+01FC Latin Capital Letter Æ with acute
	'.',  // U+01FD Latin Small Letter æ with acute
	'.',  // U+01FE Latin Capital Letter O with stroke and acute
	'.',  // U+01FF Latin Small Letter O with stroke and acute
}
