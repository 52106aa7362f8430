package lifecycle

import (
	"context"
	"time"
)

const (
	DefaultStartTimeout      = 120 * time.Second
	DefaultStartPollInterval = 100 * time.Millisecond
)

type WaitOptions struct {
	Timeout  time.Duration
	Interval time.Duration
	Sleep    SleepFunc
}

// WaitForStart polls every connection until all report the mission begun.
// Any engine error on any connection aborts the wait with a *ProtocolError;
// running out of time yields a *BarrierTimeoutError naming the stragglers.
// Either failure leaves every connection Failed; on success every connection
// is Running.
func WaitForStart(ctx context.Context, conns []*Conn, opts WaitOptions) error {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultStartTimeout
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultStartPollInterval
	}
	if opts.Sleep == nil {
		opts.Sleep = Sleep
	}

	deadline := time.Now().Add(opts.Timeout)
	for {
		var waiting []string
		for _, c := range conns {
			st := c.Peek()
			if len(st.Errors) > 0 {
				for _, o := range conns {
					o.transition(Failed)
				}
				return &ProtocolError{Agent: c.Name(), Messages: st.Errors}
			}
			if !st.MissionBegun {
				waiting = append(waiting, c.Name())
			}
		}
		if len(waiting) == 0 {
			for _, c := range conns {
				c.transition(Running)
			}
			return nil
		}
		if !time.Now().Before(deadline) {
			for _, c := range conns {
				c.transition(Failed)
			}
			return &BarrierTimeoutError{Phase: "mission start", Waiting: waiting, Timeout: opts.Timeout}
		}
		if err := opts.Sleep(ctx, opts.Interval); err != nil {
			return err
		}
	}
}
