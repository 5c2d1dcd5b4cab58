package core

import (
	"context"
	"time"
)

// Stepper is anything that advances on fixed ticks.
type Stepper interface {
	Step(in InputFrame) StepResult
}

// Loop drives a Stepper from a single tick source. It is the headless
// counterpart of the Bubble Tea tick used by the TUI; both guarantee that
// Step is never called concurrently with itself.
type Loop struct {
	// Interval between ticks. Zero steps as fast as possible.
	Interval time.Duration
	// MaxTicks stops the loop after that many steps. Zero means unbounded.
	MaxTicks uint64
}

// NewLoop returns a loop ticking at rate ticks per second.
func NewLoop(rate int) Loop {
	if rate <= 0 {
		return Loop{}
	}
	return Loop{Interval: time.Second / time.Duration(rate)}
}

// Run steps s until the context is cancelled, MaxTicks is reached, or the
// game reports GameOver. input is asked for the frame of each tick; observe
// (optional) sees every result. Cancelling ctx stops the ticker before Run
// returns, so no Step happens after Run has returned.
func (l Loop) Run(ctx context.Context, s Stepper, input func(tick uint64) InputFrame, observe func(StepResult)) (uint64, error) {
	var ticker *time.Ticker
	if l.Interval > 0 {
		ticker = time.NewTicker(l.Interval)
		defer ticker.Stop()
	}

	var tick uint64
	for {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return tick, ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return tick, err
		}

		var in InputFrame
		if input != nil {
			in = input(tick)
		}
		res := s.Step(in)
		tick++
		if observe != nil {
			observe(res)
		}

		if res.State.GameOver() {
			return tick, nil
		}
		if l.MaxTicks > 0 && tick >= l.MaxTicks {
			return tick, nil
		}
	}
}
