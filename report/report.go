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

// Package report carries progress and diagnostic messages from a sample
// sheet run to whoever presents them.
//
// Debug messages are tagged with a [Tier], so that a front-end can decide how
// much detail to show without parsing message text.
package report

import "fmt"

// Tier gives the level of detail of a debug message.
type Tier int

// These are the supported tiers, from least to most detailed.
const (
	Coarse Tier = 1 + iota // one message per page
	Medium                 // one message per font
	Fine                   // one message per rendered line
)

func (t Tier) String() string {
	switch t {
	case Coarse:
		return "coarse"
	case Medium:
		return "medium"
	case Fine:
		return "fine"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// Level distinguishes debug messages from warnings and errors.
type Level int

// These are the message levels.
const (
	LevelDebug Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Record is a single message.
// Tier is only meaningful for debug records.
type Record struct {
	Level Level
	Tier  Tier
	Text  string
}

// Sink receives the messages generated during a run.
type Sink interface {
	Debug(r Record)
	Warning(msg string)
	Error(msg string)
}

// Debugf formats a debug message and sends it to s.
// A nil sink discards the message.
func Debugf(s Sink, tier Tier, format string, args ...any) {
	if s == nil {
		return
	}
	s.Debug(Record{
		Level: LevelDebug,
		Tier:  tier,
		Text:  fmt.Sprintf(format, args...),
	})
}

// Warningf formats a warning and sends it to s.
// A nil sink discards the message.
func Warningf(s Sink, format string, args ...any) {
	if s == nil {
		return
	}
	s.Warning(fmt.Sprintf(format, args...))
}

// Discard is a sink which ignores all messages.
var Discard Sink = discard{}

type discard struct{}

func (discard) Debug(Record)   {}
func (discard) Warning(string) {}
func (discard) Error(string)   {}
