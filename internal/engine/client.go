package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"missionloop.ai/internal/protocol"
)

type ClientConfig struct {
	// Name identifies the agent this link belongs to; it is sent in HELLO.
	Name string
	URL  string

	HandshakeTimeout time.Duration
	WriteTimeout     time.Duration
}

// Client is a Connection over a WebSocket. A background reader keeps the
// latest mission status and observation; the public methods only touch that
// cached state, so Peek and Poll never block on the network.
type Client struct {
	cfg ClientConfig
	log *log.Logger

	conn    *websocket.Conn
	writeMu sync.Mutex

	mu       sync.RWMutex
	clientID string
	begun    bool
	running  bool
	obsSince int
	lastSeq  uint64
	lastObs  json.RawMessage
	errs     []string
	pending  map[string]chan protocol.StartResultMsg
	readErr  error

	reqSeq    atomic.Uint64
	closing   atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
}

var _ Connection = (*Client)(nil)

// Dial connects to an engine endpoint and completes the HELLO/WELCOME
// handshake before returning.
func Dial(ctx context.Context, cfg ClientConfig, logger *log.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("engine %s: empty url", cfg.Name)
	}
	if cfg.HandshakeTimeout <= 0 {
		cfg.HandshakeTimeout = 5 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	d := websocket.Dialer{HandshakeTimeout: cfg.HandshakeTimeout}
	conn, resp, err := d.DialContext(ctx, cfg.URL, http.Header{})
	if err != nil {
		return nil, fmt.Errorf("engine %s: dial %s: %w", cfg.Name, cfg.URL, err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	c := &Client{
		cfg:     cfg,
		log:     logger,
		conn:    conn,
		pending: map[string]chan protocol.StartResultMsg{},
		done:    make(chan struct{}),
	}
	if err := c.handshake(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("engine %s: %w", cfg.Name, err)
	}
	go c.readLoop()
	return c, nil
}

func (c *Client) handshake() error {
	hello := protocol.HelloMsg{
		Type:            protocol.TypeHello,
		ProtocolVersion: protocol.Version,
		AgentName:       c.cfg.Name,
	}
	if err := c.writeJSON(hello); err != nil {
		return fmt.Errorf("send HELLO: %w", err)
	}

	_ = c.conn.SetReadDeadline(time.Now().Add(c.cfg.HandshakeTimeout))
	defer c.conn.SetReadDeadline(time.Time{})
	_, msg, err := c.conn.ReadMessage()
	if err != nil {
		return fmt.Errorf("read WELCOME: %w", err)
	}
	base, err := protocol.DecodeBase(msg)
	if err != nil || base.Type != protocol.TypeWelcome {
		return fmt.Errorf("expected WELCOME, got %q", base.Type)
	}
	if !protocol.IsSupportedVersion(base.ProtocolVersion) {
		return fmt.Errorf("unsupported protocol_version %q", base.ProtocolVersion)
	}
	var w protocol.WelcomeMsg
	if err := json.Unmarshal(msg, &w); err != nil {
		return fmt.Errorf("parse WELCOME: %w", err)
	}
	c.clientID = w.ClientID
	return nil
}

func (c *Client) Name() string { return c.cfg.Name }

func (c *Client) ClientID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clientID
}

// StartMission asks the engine to start this connection's role in m and
// waits for its answer. A refusal is returned as *StartError.
func (c *Client) StartMission(ctx context.Context, m Mission) error {
	id := fmt.Sprintf("S_%d", c.reqSeq.Add(1))
	ch := make(chan protocol.StartResultMsg, 1)

	c.mu.Lock()
	if c.readErr != nil {
		err := c.readErr
		c.mu.Unlock()
		return fmt.Errorf("engine link closed: %w", err)
	}
	c.pending[id] = ch
	c.mu.Unlock()
	defer func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}()

	req := protocol.StartMissionMsg{
		Type:            protocol.TypeStartMission,
		ProtocolVersion: protocol.Version,
		ReqID:           id,
		ExperimentID:    m.ExperimentID,
		Role:            m.Role,
		Roles:           m.Roles,
		Mission:         string(m.Descriptor),
	}
	if err := c.writeJSON(req); err != nil {
		return fmt.Errorf("send START_MISSION: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.done:
		c.mu.RLock()
		err := c.readErr
		c.mu.RUnlock()
		return fmt.Errorf("engine link closed: %w", err)
	case res := <-ch:
		if res.OK {
			return nil
		}
		code := res.Code
		if code == "" {
			code = protocol.ErrInternal
		}
		return &StartError{Code: code, Message: res.Message}
	}
}

func (c *Client) Peek() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.statusLocked()
}

func (c *Client) statusLocked() Status {
	return Status{
		MissionBegun:              c.begun,
		MissionRunning:            c.running,
		ObservationsSinceLastPoll: c.obsSince,
		Errors:                    append([]string(nil), c.errs...),
	}
}

// Poll returns the current status and latest observation, then resets the
// observation counter and clears collected errors.
func (c *Client) Poll() WorldState {
	c.mu.Lock()
	defer c.mu.Unlock()
	ws := WorldState{
		Status:      c.statusLocked(),
		Seq:         c.lastSeq,
		Observation: append(json.RawMessage(nil), c.lastObs...),
	}
	c.obsSince = 0
	c.errs = nil
	return ws
}

func (c *Client) SendCommand(cmd string) error {
	cmd = strings.TrimSpace(cmd)
	if cmd == "" || strings.ContainsAny(cmd, "\r\n") {
		return fmt.Errorf("engine %s: invalid command %q", c.cfg.Name, cmd)
	}
	return c.writeJSON(protocol.CmdMsg{
		Type:            protocol.TypeCmd,
		ProtocolVersion: protocol.Version,
		Command:         cmd,
	})
}

func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.closing.Store(true)
		c.writeMu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"), time.Now().Add(time.Second))
		c.writeMu.Unlock()
		err = c.conn.Close()
		<-c.done
	})
	return err
}

func (c *Client) writeJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
	return c.conn.WriteJSON(v)
}

// linkLostLocked reports whether a read failure should surface as an engine
// error. Only our own Close and a normal closure after the mission ended are
// quiet.
func (c *Client) linkLostLocked(err error) bool {
	if c.closing.Load() || errors.Is(err, net.ErrClosed) {
		return false
	}
	ended := c.begun && !c.running
	return !(ended && websocket.IsCloseError(err, websocket.CloseNormalClosure))
}

func (c *Client) readLoop() {
	defer close(c.done)
	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			c.readErr = err
			if c.linkLostLocked(err) {
				c.log.Printf("%s: connection lost: %v", c.cfg.Name, err)
				c.errs = append(c.errs, "connection lost: "+err.Error())
			}
			c.running = false
			c.mu.Unlock()
			return
		}
		base, err := protocol.DecodeBase(msg)
		if err != nil || !protocol.IsSupportedVersion(base.ProtocolVersion) {
			continue
		}
		switch base.Type {
		case protocol.TypeStartResult:
			var r protocol.StartResultMsg
			if err := json.Unmarshal(msg, &r); err != nil {
				continue
			}
			c.mu.RLock()
			ch := c.pending[r.ReqID]
			c.mu.RUnlock()
			if ch != nil {
				select {
				case ch <- r:
				default:
				}
			}

		case protocol.TypeStatus:
			var s protocol.StatusMsg
			if err := json.Unmarshal(msg, &s); err != nil {
				continue
			}
			c.mu.Lock()
			if s.MissionBegun && !c.begun {
				c.log.Printf("%s: mission begun", c.cfg.Name)
			}
			c.begun = c.begun || s.MissionBegun
			c.running = s.MissionRunning
			c.errs = append(c.errs, s.Errors...)
			c.mu.Unlock()

		case protocol.TypeObs:
			var o protocol.ObsMsg
			if err := json.Unmarshal(msg, &o); err != nil {
				continue
			}
			c.mu.Lock()
			c.lastSeq = o.Seq
			c.lastObs = append(json.RawMessage(nil), o.Observation...)
			c.obsSince++
			c.mu.Unlock()
		}
	}
}
