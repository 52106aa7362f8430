// Package agent turns high-level intents (look at, move to, attack, equip,
// give) into the single-line commands an engine understands, using the
// latest decoded snapshot of the agent's surroundings.
package agent

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"sync"

	"missionloop.ai/internal/control"
	"missionloop.ai/internal/engine"
	"missionloop.ai/internal/snapshot"
)

// AttackReach is the distance within which an aligned agent swings.
const AttackReach = 3.0

type Agent struct {
	name string
	cmd  engine.Commander
	law  control.Law
	log  *log.Logger

	state *snapshot.World

	mu      sync.Mutex
	sent    []string
	sendErr error
}

func New(name string, cmd engine.Commander, law control.Law, logger *log.Logger) *Agent {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Agent{name: name, cmd: cmd, law: law, log: logger}
}

func (a *Agent) Name() string { return a.name }

// State is the latest decoded snapshot, or nil before the first successful
// decode.
func (a *Agent) State() *snapshot.World { return a.state }

// Sync replaces the cached snapshot. A nil world is ignored so a failed
// decode leaves the previous snapshot current.
func (a *Agent) Sync(w *snapshot.World) {
	if w != nil {
		a.state = w
	}
}

// DrainSent returns the commands sent since the last call.
func (a *Agent) DrainSent() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := a.sent
	a.sent = nil
	return out
}

// Err returns the first command delivery error, if any.
func (a *Agent) Err() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.sendErr
}

func (a *Agent) send(verb string, v float64) {
	a.sendRaw(verb + " " + strconv.FormatFloat(v, 'f', -1, 64))
}

func (a *Agent) sendf(format string, args ...any) {
	a.sendRaw(fmt.Sprintf(format, args...))
}

func (a *Agent) sendRaw(cmd string) {
	err := a.cmd.SendCommand(cmd)
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sent = append(a.sent, cmd)
	if err != nil {
		if a.sendErr == nil {
			a.sendErr = err
		}
		a.log.Printf("warn: %s: send %q: %v", a.name, cmd, err)
	}
}
