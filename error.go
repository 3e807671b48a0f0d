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

import "errors"

var (
	// ErrInvalidUTF8 indicates that the password is not well-formed UTF-8.
	ErrInvalidUTF8 = errors.New("password is not valid UTF-8")

	// ErrUnmappable indicates that the password contains a character with
	// no PDFDocEncoding equivalent under the requested mode.
	ErrUnmappable = errors.New("password contains unsupported characters")
)
