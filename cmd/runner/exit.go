package main

import (
	"context"
	"errors"
	"fmt"

	"missionloop.ai/internal/lifecycle"
)

const (
	exitOK       = 0
	exitFailed   = 1
	exitConfig   = 2
	exitDial     = 3
	exitStartup  = 4
	exitProtocol = 5
	exitTimeout  = 6
	exitCanceled = 130
)

// describe turns a session's terminal error into a one-line message and an
// exit code.
func describe(err error) (string, int) {
	var (
		se *lifecycle.StartupError
		pe *lifecycle.ProtocolError
		be *lifecycle.BarrierTimeoutError
	)
	switch {
	case errors.Is(err, context.Canceled):
		return "interrupted", exitCanceled
	case errors.As(err, &se):
		return fmt.Sprintf("startup failed: agent %s could not start (%s, %d attempt(s)): %v", se.Agent, se.Class, se.Attempts, se.Err), exitStartup
	case errors.As(err, &pe):
		return fmt.Sprintf("protocol error: %v", pe), exitProtocol
	case errors.As(err, &be):
		return fmt.Sprintf("timeout: %v", be), exitTimeout
	default:
		return fmt.Sprintf("session failed: %v", err), exitFailed
	}
}
