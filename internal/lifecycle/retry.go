package lifecycle

import (
	"context"
	"io"
	"log"
	"time"

	"missionloop.ai/internal/engine"
)

const (
	DefaultBackoff     = 2 * time.Second
	DefaultMaxAttempts = 5
)

type Action uint8

const (
	Proceed Action = iota
	Retry
	Fatal
)

func (a Action) String() string {
	switch a {
	case Proceed:
		return "proceed"
	case Retry:
		return "retry"
	default:
		return "fatal"
	}
}

// Decision is what to do after one start attempt. Delay is set for Retry.
type Decision struct {
	Action Action
	Class  Class
	Delay  time.Duration
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// RetryPolicy governs mission-start retries. Warming-up refusals are retried
// without limit; capped classes share one counter and become fatal on the
// MaxAttempts-th failure.
type RetryPolicy struct {
	Backoff     time.Duration
	MaxAttempts int
	Sleep       SleepFunc
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{Backoff: DefaultBackoff, MaxAttempts: DefaultMaxAttempts}
}

func (p RetryPolicy) normalized() RetryPolicy {
	if p.Backoff <= 0 {
		p.Backoff = DefaultBackoff
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.Sleep == nil {
		p.Sleep = Sleep
	}
	return p
}

// Decide classifies the outcome of one attempt. cappedFailures is the number
// of capped-class failures seen before this attempt.
func (p RetryPolicy) Decide(err error, role, cappedFailures int) Decision {
	p = p.normalized()
	if err == nil {
		return Decision{Action: Proceed}
	}
	class := Classify(err, role)
	switch {
	case class == ClassWarmingUp:
		return Decision{Action: Retry, Class: class, Delay: p.Backoff}
	case class.Capped():
		if cappedFailures+1 >= p.MaxAttempts {
			return Decision{Action: Fatal, Class: class}
		}
		return Decision{Action: Retry, Class: class, Delay: p.Backoff}
	default:
		return Decision{Action: Fatal, Class: class}
	}
}

// Start issues the start request for c's role until the engine accepts it or
// the policy gives up. On success c is Starting; on failure it is Failed and
// the error is a *StartupError, or the context error once ctx is done.
func (p RetryPolicy) Start(ctx context.Context, c *Conn, m engine.Mission, logger *log.Logger) error {
	p = p.normalized()
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	m.Role = c.Role()
	c.transition(Starting)

	capped := 0
	for attempt := 1; ; attempt++ {
		err := c.StartMission(ctx, m)
		if err != nil && ctx.Err() != nil {
			c.transition(Failed)
			return ctx.Err()
		}
		d := p.Decide(err, m.Role, capped)
		switch d.Action {
		case Proceed:
			if attempt > 1 {
				logger.Printf("%s: mission start accepted after %d attempts", c.Name(), attempt)
			}
			return nil
		case Retry:
			if d.Class.Capped() {
				capped++
			}
			logger.Printf("%s: start refused (%s), retrying in %s", c.Name(), d.Class, d.Delay)
			if err := p.Sleep(ctx, d.Delay); err != nil {
				c.transition(Failed)
				return err
			}
		default:
			c.transition(Failed)
			return &StartupError{Agent: c.Name(), Class: d.Class, Attempts: attempt, Err: err}
		}
	}
}

// Sleep is the default SleepFunc. A non-positive d only reports whether ctx
// is already done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
