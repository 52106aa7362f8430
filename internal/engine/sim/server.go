package sim

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"missionloop.ai/internal/protocol"
)

type Server struct {
	world *World
	log   *log.Logger

	upgrader websocket.Upgrader
}

func NewServer(w *World, logger *log.Logger) *Server {
	if logger == nil {
		logger = w.log
	}
	return &Server{
		world: w,
		log:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // dev default
		},
	}
}

// Routes mounts the engine endpoint and a small read-only HTTP surface.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/v1/engine", s.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Get("/v1/state", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		st, err := s.world.State(ctx)
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(st)
	})
	return r
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		clientID, ctrl, obs := s.handshake(conn)
		if clientID == "" {
			return
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Writer goroutine. Control messages go first so a status change is
		// never stuck behind queued observations.
		go func() {
			write := func(b []byte) bool {
				_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				return conn.WriteMessage(websocket.TextMessage, b) == nil
			}
			for {
				select {
				case <-ctx.Done():
					return
				case b := <-ctrl:
					if !write(b) {
						cancel()
						return
					}
					continue
				default:
				}
				select {
				case <-ctx.Done():
					return
				case b := <-ctrl:
					if !write(b) {
						cancel()
						return
					}
				case b := <-obs:
					if !write(b) {
						cancel()
						return
					}
				}
			}
		}()

		// Reader loop.
		for {
			_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				cancel()
				break
			}
			base, err := protocol.DecodeBase(msg)
			if err != nil || !protocol.IsSupportedVersion(base.ProtocolVersion) {
				continue
			}
			switch base.Type {
			case protocol.TypeStartMission:
				var m protocol.StartMissionMsg
				if err := json.Unmarshal(msg, &m); err != nil {
					s.reject(ctrl, m.ReqID, protocol.ErrProtoBadRequest, "bad START_MISSION")
					continue
				}
				s.world.start <- startRequest{ClientID: clientID, Msg: m}
			case protocol.TypeCmd:
				var c protocol.CmdMsg
				if err := json.Unmarshal(msg, &c); err != nil {
					continue
				}
				s.world.inbox <- commandEnvelope{ClientID: clientID, Command: c.Command}
			}
		}

		// Cleanup.
		s.world.leave <- clientID
	}
}

func (s *Server) handshake(conn *websocket.Conn) (clientID string, ctrl, obs chan []byte) {
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		return "", nil, nil
	}

	base, err := protocol.DecodeBase(msg)
	if err != nil || base.Type != protocol.TypeHello {
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "expected HELLO"), time.Now().Add(time.Second))
		return "", nil, nil
	}
	var hello protocol.HelloMsg
	if err := json.Unmarshal(msg, &hello); err != nil {
		return "", nil, nil
	}
	if !protocol.IsSupportedVersion(hello.ProtocolVersion) {
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "bad protocol_version"), time.Now().Add(time.Second))
		return "", nil, nil
	}

	ctrl = make(chan []byte, 64)
	obs = make(chan []byte, 4)
	resp := make(chan protocol.WelcomeMsg, 1)
	s.world.join <- joinRequest{Name: hello.AgentName, Ctrl: ctrl, Obs: obs, Resp: resp}
	welcome := <-resp

	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if err := conn.WriteJSON(welcome); err != nil {
		s.world.leave <- welcome.ClientID
		return "", nil, nil
	}
	return welcome.ClientID, ctrl, obs
}

func (s *Server) reject(ctrl chan []byte, reqID, code, message string) {
	b, err := json.Marshal(protocol.StartResultMsg{
		Type:            protocol.TypeStartResult,
		ProtocolVersion: protocol.Version,
		ReqID:           reqID,
		Code:            code,
		Message:         message,
	})
	if err != nil {
		return
	}
	select {
	case ctrl <- b:
	default:
	}
}
