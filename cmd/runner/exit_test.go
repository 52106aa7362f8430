package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"missionloop.ai/internal/lifecycle"
)

func TestDescribe(t *testing.T) {
	cases := []struct {
		err    error
		prefix string
		code   int
	}{
		{&lifecycle.StartupError{Agent: "human", Class: lifecycle.ClassPrimaryNotFound, Attempts: 5, Err: errors.New("refused")}, "startup failed: agent human", exitStartup},
		{&lifecycle.ProtocolError{Agent: "computer", Messages: []string{"bad xml"}}, "protocol error:", exitProtocol},
		{fmt.Errorf("run: %w", &lifecycle.BarrierTimeoutError{Phase: "tick barrier", Waiting: []string{"human"}, Timeout: time.Second}), "timeout: tick barrier", exitTimeout},
		{context.Canceled, "interrupted", exitCanceled},
		{&lifecycle.StartupError{Agent: "human", Class: lifecycle.ClassFatal, Attempts: 1, Err: context.Canceled}, "interrupted", exitCanceled},
		{errors.New("tick 3: boom"), "session failed:", exitFailed},
	}
	for _, tc := range cases {
		msg, code := describe(tc.err)
		if code != tc.code || !strings.HasPrefix(msg, tc.prefix) {
			t.Fatalf("describe(%v) = %q,%d want prefix %q code %d", tc.err, msg, code, tc.prefix, tc.code)
		}
	}
}
