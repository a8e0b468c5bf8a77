package server

import (
	"sync"
	"time"

	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/render"
	"github.com/lguibr/duopong/utils"
	"golang.org/x/net/websocket"
)

const (
	formatJSON  = "json"
	formatASCII = "ascii"

	writeTimeout = 2 * time.Second
)

// connectionSink writes frames to one websocket. The broadcaster drops it on the first failed write.
type connectionSink struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	format string
	cfg    utils.Config
}

func newConnectionSink(conn *websocket.Conn, format string, cfg utils.Config) *connectionSink {
	if format != formatASCII {
		format = formatJSON
	}
	return &connectionSink{conn: conn, format: format, cfg: cfg}
}

// SendFrame implements game.FrameSink.
func (c *connectionSink) SendFrame(frame game.Frame) error {
	if c.format == formatASCII {
		return c.send(func() error {
			return websocket.Message.Send(c.conn, render.FrameToASCII(frame, c.cfg))
		})
	}
	msg := game.FrameMessage{MessageType: "frame", Frame: frame}
	return c.send(func() error { return websocket.JSON.Send(c.conn, msg) })
}

func (c *connectionSink) sendRole(role, clientID string) error {
	msg := game.RoleAssignmentMessage{MessageType: "roleAssignment", Role: role, ClientID: clientID}
	return c.send(func() error { return websocket.JSON.Send(c.conn, msg) })
}

func (c *connectionSink) send(write func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	err := write()
	_ = c.conn.SetWriteDeadline(time.Time{})
	return err
}
