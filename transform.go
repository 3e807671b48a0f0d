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

import "golang.org/x/text/transform"

// NewTransformer returns a transform.Transformer which converts UTF-8 text
// to PDFDocEncoding under the acceptance rules of mode m.  This allows the
// conversion to be used with the golang.org/x/text/transform helpers, for
// example transform.Bytes or transform.NewReader.
//
// As with [Convert], a failed transformation is terminal and no part of the
// output is valid.  The errors returned are [ErrInvalidUTF8] and
// [ErrUnmappable].
func (m Mode) NewTransformer() transform.Transformer {
	return &docTransformer{mode: m}
}

type docTransformer struct {
	mode Mode
	eos  bool // a zero byte ends the password
}

func (t *docTransformer) Reset() {
	t.eos = false
}

func (t *docTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if t.eos {
		return 0, len(src), nil
	}
	for nSrc < len(src) {
		if src[nSrc] == 0 {
			t.eos = true
			return nDst, len(src), nil
		}

		r, size, ok := decodeRune(src[nSrc:])
		if !ok {
			if !atEOF && incompleteRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, ErrInvalidUTF8
		}

		c, ok := mapRune(r, t.mode)
		if !ok {
			return nDst, nSrc, ErrUnmappable
		}

		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = c
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}
