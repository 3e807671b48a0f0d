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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/transform"
)

// TestTransformer checks that the transform.Transformer adapter gives the
// same results as Encode.
func TestTransformer(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		"café",
		"Œuvre",
		"a™b",
		"ab\x00cd",
	}
	for _, mode := range []Mode{Encrypt, Decrypt} {
		for _, in := range inputs {
			want, wantErr := Encode(in, mode)
			got, _, err := transform.Bytes(mode.NewTransformer(), []byte(in))
			if wantErr != nil {
				if !errors.Is(err, wantErr) {
					t.Errorf("%q/%d: got error %v, want %v", in, mode, err, wantErr)
				}
				continue
			}
			if err != nil {
				t.Errorf("%q/%d: %v", in, mode, err)
				continue
			}
			if d := cmp.Diff(want, got); d != "" {
				t.Errorf("%q/%d: wrong output (-want +got):\n%s", in, mode, d)
			}
		}
	}
}

func TestTransformerErrors(t *testing.T) {
	_, _, err := transform.Bytes(Encrypt.NewTransformer(), []byte{0x61, 0xC3})
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("got error %v, want ErrInvalidUTF8", err)
	}

	_, _, err = transform.Bytes(Encrypt.NewTransformer(), []byte("™"))
	if !errors.Is(err, ErrUnmappable) {
		t.Errorf("got error %v, want ErrUnmappable", err)
	}
}

// TestTransformerChunks feeds a multi-byte sequence split across two calls
// and checks that the transformer asks for more input instead of failing.
func TestTransformerChunks(t *testing.T) {
	tr := Decrypt.NewTransformer()
	src := []byte("€") // 0xE2 0x82 0xAC

	var dst [4]byte
	nDst, nSrc, err := tr.Transform(dst[:], src[:2], false)
	if err != transform.ErrShortSrc || nDst != 0 || nSrc != 0 {
		t.Fatalf("got (%d, %d, %v), want (0, 0, ErrShortSrc)", nDst, nSrc, err)
	}
	nDst, nSrc, err = tr.Transform(dst[:], src, true)
	if err != nil || nDst != 1 || nSrc != 3 {
		t.Fatalf("got (%d, %d, %v), want (1, 3, nil)", nDst, nSrc, err)
	}
	if dst[0] != 0xA0 {
		t.Errorf("got output %02x, want a0", dst[0])
	}

	// a truncated sequence at the end of input is an error
	tr.Reset()
	_, _, err = tr.Transform(dst[:], src[:2], true)
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("got error %v, want ErrInvalidUTF8", err)
	}
}

func TestTransformerShortDst(t *testing.T) {
	tr := Encrypt.NewTransformer()
	src := []byte("abc")

	var dst [2]byte
	nDst, nSrc, err := tr.Transform(dst[:], src, true)
	if err != transform.ErrShortDst || nDst != 2 || nSrc != 2 {
		t.Fatalf("got (%d, %d, %v), want (2, 2, ErrShortDst)", nDst, nSrc, err)
	}
	nDst, nSrc, err = tr.Transform(dst[:], src[nSrc:], true)
	if err != nil || nDst != 1 || nSrc != 1 {
		t.Fatalf("got (%d, %d, %v), want (1, 1, nil)", nDst, nSrc, err)
	}
}

// TestTransformerEOS checks that a zero byte ends the password even when
// the remaining input arrives in later calls.
func TestTransformerEOS(t *testing.T) {
	tr := Encrypt.NewTransformer()

	var dst [8]byte
	nDst, nSrc, err := tr.Transform(dst[:], []byte("ab\x00cd"), false)
	if err != nil || nDst != 2 || nSrc != 5 {
		t.Fatalf("got (%d, %d, %v), want (2, 5, nil)", nDst, nSrc, err)
	}
	nDst, nSrc, err = tr.Transform(dst[:], []byte("\xFF\xFE"), true)
	if err != nil || nDst != 0 || nSrc != 2 {
		t.Fatalf("got (%d, %d, %v), want (0, 2, nil)", nDst, nSrc, err)
	}
}
