package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"runtime/debug"

	"github.com/lguibr/duopong/game"
	"golang.org/x/net/websocket"
)

// HandleSubscribe attaches a websocket to the session. The first client to arrive
// steers the primary paddle; everyone else watches until the controller leaves.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		clientID := s.nextClientID()
		connectionAddr := ws.Request().RemoteAddr

		defer func() {
			if r := recover(); r != nil {
				log.Printf("[SERVER] PANIC recovered in HandleSubscribe for %s: %v\nStack trace:\n%s", connectionAddr, r, string(debug.Stack()))
			}
			_ = ws.Close()
		}()

		if s.engine == nil || s.gamePID == nil {
			log.Printf("[SERVER] no game actor, closing connection %s", connectionAddr)
			return
		}

		role := game.RoleSpectator
		reply, err := s.engine.Ask(s.gamePID, game.ClaimControlRequest{ClientID: clientID}, s.cfg.AskTimeout)
		if err != nil {
			log.Printf("[SERVER] control claim for %s failed: %v", clientID, err)
			return
		}
		if resp, ok := reply.(game.ClaimControlResponse); ok && resp.Granted {
			role = game.RoleController
			defer s.engine.Send(s.gamePID, game.ReleaseControl{ClientID: clientID}, nil)
		}

		sink := newConnectionSink(ws, ws.Request().URL.Query().Get("format"), s.cfg)
		if err := sink.sendRole(role, clientID); err != nil {
			log.Printf("[SERVER] role assignment to %s failed: %v", clientID, err)
			return
		}

		log.Printf("[SERVER] %s connected from %s as %s (%s)", clientID, connectionAddr, role, sink.format)
		s.engine.Send(s.gamePID, game.Subscribe{Sink: sink}, nil)
		defer s.engine.Send(s.gamePID, game.Unsubscribe{Sink: sink}, nil)

		s.readLoop(ws, clientID)
		log.Printf("[SERVER] %s disconnected", clientID)
	}
}

// readLoop forwards target messages until the connection fails. Malformed JSON is skipped.
func (s *Server) readLoop(ws *websocket.Conn, clientID string) {
	for {
		var msg game.TargetMessage
		err := websocket.JSON.Receive(ws, &msg)
		if err != nil {
			var syntaxErr *json.SyntaxError
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
				log.Printf("[SERVER] ignoring malformed message from %s: %v", clientID, err)
				continue
			}
			if !errors.Is(err, io.EOF) {
				log.Printf("[SERVER] read from %s failed: %v", clientID, err)
			}
			return
		}
		if msg.TargetY == nil {
			continue
		}
		s.engine.Send(s.gamePID, game.SetPaddleTarget{ClientID: clientID, Y: *msg.TargetY}, nil)
	}
}
