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

// Package pdfpass converts PDF passwords from UTF-8 to PDFDocEncoding, the
// single-byte encoding used by the PDF standard security handler before
// version 5.
//
// Acceptance rules depend on whether the password is used to encrypt or to
// decrypt a document.  When encrypting, only the most portable characters
// are allowed, so that the new password can be typed again identically on a
// different platform.  When decrypting, the password already exists and the
// package accepts as many characters as possible, reproducing the
// platform-dependent mapping used by Acrobat and Reader on Windows.
//
// The common case is a single call to Encode:
//
//	pwd, err := pdfpass.Encode(passwd, pdfpass.Decrypt)
//	if err != nil {
//	    ... the password cannot be used with this security handler ...
//	}
//	... pass pwd to the key derivation ...
//
// Callers managing their own buffers can use Size to determine the exact
// output length and then Convert to fill the buffer:
//
//	n, err := pdfpass.Size(src, pdfpass.Encrypt)
//	if err != nil {
//	    ...
//	}
//	buf := make([]byte, n)
//	_, err = pdfpass.Convert(buf, src, pdfpass.Encrypt)
//
// Conversion is all or nothing: on error no part of the output is valid.
// Errors can be tested with errors.Is against [ErrInvalidUTF8] and
// [ErrUnmappable].
package pdfpass
