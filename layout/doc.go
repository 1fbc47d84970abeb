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

// Package layout arranges the font samples on pages.
//
// Every font gets one line.  Pages are filled greedily: lines are added to
// a page until the next line would exceed the available height.  The block
// of lines on each page is then centred horizontally and vertically.
//
// Layout happens in two passes.  In the measure pass, [LineRenderer.Measure]
// computes the size of each line without drawing anything.  Once the lines
// for a page are known, [Engine.Draw] emits them at their final position.
package layout
