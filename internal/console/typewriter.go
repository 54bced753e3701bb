package console

import (
	"io"
	"time"
	"unicode/utf8"
)

// Typewriter writes one rune at a time with a fixed pause between runes.
// A zero delay makes it a plain pass-through.
type Typewriter struct {
	w     io.Writer
	delay time.Duration
	sleep func(time.Duration)
}

// NewTypewriter creates a Typewriter over w
func NewTypewriter(w io.Writer, delay time.Duration) *Typewriter {
	return &Typewriter{w: w, delay: delay, sleep: time.Sleep}
}

func (t *Typewriter) Write(p []byte) (int, error) {
	if t.delay <= 0 {
		return t.w.Write(p)
	}

	written := 0
	for written < len(p) {
		_, size := utf8.DecodeRune(p[written:])
		n, err := t.w.Write(p[written : written+size])
		written += n
		if err != nil {
			return written, err
		}
		t.sleep(t.delay)
	}
	return written, nil
}
