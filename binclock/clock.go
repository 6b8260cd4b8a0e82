package binclock

import (
	"errors"
	"fmt"
	"time"
)

// DefaultBlink is how long each colon phase is shown.
const DefaultBlink = 500 * time.Millisecond

var errNoSource = errors.New("no time source")

type Config struct {
	// Blink is how long the grid is shown with the colon lit, and then again with it dark. Defaults to DefaultBlink.
	Blink time.Duration
	// Log receives a liveness line every iteration. Optional.
	Log Logger
	// Retries is how many more times a failed time read is attempted within one iteration.
	Retries int
	// HoldLastTime keeps showing the last time that was read when reading fails, instead of returning the error. It
	// has no effect until one read has succeeded.
	HoldLastTime bool
}

// Clock owns the grid and runs the blink loop.
type Clock struct {
	src  Source
	disp Display
	cfg  Config
	grid Grid

	hour, minute uint8
	haveTime     bool
}

func New(src Source, disp Display) *Clock {
	return &Clock{
		src:  src,
		disp: disp,
		cfg:  Config{Blink: DefaultBlink},
	}
}

func (c *Clock) Configure(cfg Config) {
	if cfg.Blink <= 0 {
		cfg.Blink = DefaultBlink
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	c.cfg = cfg
}

// Grid returns a copy of the grid as last rendered.
func (c *Clock) Grid() Grid {
	return c.grid
}

// Run ticks forever, returning the first error Tick reports.
func (c *Clock) Run() error {
	for {
		err := c.Tick()
		if err != nil {
			return err
		}
	}
}

// Tick runs one iteration: read the time, render it, then show it once with the colon lit and once with it dark.
func (c *Clock) Tick() error {
	hour, minute, err := c.read()
	if err != nil {
		if !c.cfg.HoldLastTime || !c.haveTime {
			return fmt.Errorf("binclock: read time: %w", err)
		}
		hour, minute = c.hour, c.minute
		c.log(fmt.Sprintf("binclock: hold %02d:%02d: %v", hour, minute, err))
	} else {
		c.hour, c.minute, c.haveTime = hour, minute, true
	}

	c.grid.SetTime(hour, minute)
	c.log(fmt.Sprintf("binclock %02d:%02d", hour, minute))

	c.grid.SetColon(true)
	err = c.disp.Show(&c.grid, c.cfg.Blink)
	if err != nil {
		return fmt.Errorf("binclock: show: %w", err)
	}
	c.grid.SetColon(false)
	err = c.disp.Show(&c.grid, c.cfg.Blink)
	if err != nil {
		return fmt.Errorf("binclock: show: %w", err)
	}
	return nil
}

func (c *Clock) read() (hour, minute uint8, err error) {
	if c.src == nil {
		return 0, 0, errNoSource
	}
	for i := 0; i <= c.cfg.Retries; i++ {
		hour, minute, err = c.src.Clock()
		if err == nil {
			return hour, minute, nil
		}
	}
	return 0, 0, err
}

func (c *Clock) log(s string) {
	if c.cfg.Log != nil {
		// diagnostics are best effort
		_ = c.cfg.Log.Println(s)
	}
}
