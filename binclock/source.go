package binclock

import (
	"io"
	"time"
)

// Source supplies the time to display. The RTC drivers in this module satisfy it.
type Source interface {
	Clock() (hour, minute uint8, err error)
}

// Fixed is a Source that always reports the same time.
type Fixed struct {
	Hour, Minute uint8
}

func (f Fixed) Clock() (hour, minute uint8, err error) {
	return f.Hour, f.Minute, nil
}

// Display presents a grid for d, blocking the caller for that long.
type Display interface {
	Show(g *Grid, d time.Duration) error
}

// Logger receives one diagnostic line per loop iteration.
type Logger interface {
	Println(string) error
}

type writerLogger struct {
	w io.Writer
}

// WriterLogger returns a Logger that writes each line, newline terminated, to w.
func WriterLogger(w io.Writer) Logger {
	return writerLogger{w: w}
}

func (l writerLogger) Println(s string) error {
	_, err := io.WriteString(l.w, s+"\n")
	return err
}
