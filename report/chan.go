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

package report

import "sync"

// ChanSink forwards all messages to a channel.
//
// This is meant for interactive front-ends, which run the sample sheet
// generation in a separate goroutine and poll C from their event loop.
// Sending blocks while the channel buffer is full.  After Close, further
// messages are dropped.
type ChanSink struct {
	C chan Record

	mu     sync.Mutex
	done   chan struct{}
	once   sync.Once
	closed bool
}

// NewChanSink allocates a channel sink with the given buffer size.
func NewChanSink(size int) *ChanSink {
	return &ChanSink{
		C:    make(chan Record, size),
		done: make(chan struct{}),
	}
}

// Debug implements the [Sink] interface.
func (c *ChanSink) Debug(r Record) {
	r.Level = LevelDebug
	c.send(r)
}

// Warning implements the [Sink] interface.
func (c *ChanSink) Warning(msg string) {
	c.send(Record{Level: LevelWarning, Text: msg})
}

// Error implements the [Sink] interface.
func (c *ChanSink) Error(msg string) {
	c.send(Record{Level: LevelError, Text: msg})
}

func (c *ChanSink) send(r Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.C <- r:
	case <-c.done:
	}
}

// Close closes the channel.  Senders blocked on a full channel return
// without delivering their message.  Close may be called from any
// goroutine, and more than once.
func (c *ChanSink) Close() {
	c.once.Do(func() {
		close(c.done) // wakes up a blocked sender, which releases mu

		c.mu.Lock()
		c.closed = true
		close(c.C)
		c.mu.Unlock()
	})
}

// Recorder keeps all messages in memory.
type Recorder struct {
	Records []Record
}

// Debug implements the [Sink] interface.
func (r *Recorder) Debug(rec Record) {
	rec.Level = LevelDebug
	r.Records = append(r.Records, rec)
}

// Warning implements the [Sink] interface.
func (r *Recorder) Warning(msg string) {
	r.Records = append(r.Records, Record{Level: LevelWarning, Text: msg})
}

// Error implements the [Sink] interface.
func (r *Recorder) Error(msg string) {
	r.Records = append(r.Records, Record{Level: LevelError, Text: msg})
}

// Filter returns the texts of all records with the given level.
func (r *Recorder) Filter(level Level) []string {
	var res []string
	for _, rec := range r.Records {
		if rec.Level == level {
			res = append(res, rec.Text)
		}
	}
	return res
}
