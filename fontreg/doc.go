// ttfsampler - generate PDF sample sheets from TrueType/OpenType fonts
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

// Package fontreg loads the fonts for a sample sheet.
//
// Loading is split into two steps.  [Load] parses the font files, decodes
// the face names, removes broken and duplicate fonts and optionally sorts
// the result.  [Register] then makes the surviving fonts known to the
// rendering backend, in the final order.  Both steps talk to the backend
// only through the [Loader] and [Registrar] interfaces.
package fontreg
