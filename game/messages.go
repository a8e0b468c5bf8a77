// File: game/messages.go
package game

// --- Message Header ---
// Used for identifying message types after unmarshalling from JSON
type MessageHeader struct {
	MessageType string `json:"messageType"`
}

// --- WebSocket Messages (Client <-> Server) ---

// FrameMessage wraps a frame for JSON subscribers.
type FrameMessage struct {
	MessageType string `json:"messageType"` // "frame"
	Frame
}

// RoleAssignmentMessage tells a new connection whether it steers the primary paddle.
type RoleAssignmentMessage struct {
	MessageType string `json:"messageType"` // "roleAssignment"
	Role        string `json:"role"`        // "controller" or "spectator"
	ClientID    string `json:"clientId"`
}

// TargetMessage is the only message a client sends: the wanted paddle ordinate.
type TargetMessage struct {
	TargetY *int `json:"targetY"`
}

const (
	RoleController = "controller"
	RoleSpectator  = "spectator"
)

// --- Actor Messages (Internal Communication) ---

// --- GameActor Messages ---

// GameTick signals the GameActor to advance the session by one tick.
type GameTick struct{}

// SetPaddleTarget moves the primary paddle target. Only the controlling client is obeyed.
type SetPaddleTarget struct {
	ClientID string
	Y        int
}

// ClaimControlRequest asks for the primary paddle (used via Ask).
type ClaimControlRequest struct {
	ClientID string
}

// ClaimControlResponse is the reply to ClaimControlRequest.
type ClaimControlResponse struct {
	Granted bool
}

// ReleaseControl gives the primary paddle back. Ignored unless sent by the controller.
type ReleaseControl struct {
	ClientID string
}

// GetFrameRequest asks the GameActor for the latest frame (used via Ask, replies Frame).
type GetFrameRequest struct{}

// GetScoreRequest asks the GameActor for the score (used via Ask, replies Score).
type GetScoreRequest struct{}

// Subscribe registers a sink for every future frame.
type Subscribe struct {
	Sink FrameSink
}

// Unsubscribe removes a sink registered with Subscribe.
type Unsubscribe struct {
	Sink FrameSink
}

// --- BroadcasterActor Messages ---

// AddSink tells the Broadcaster to start sending frames to a sink.
type AddSink struct {
	Sink FrameSink
}

// RemoveSink tells the Broadcaster to stop sending frames to a sink.
type RemoveSink struct {
	Sink FrameSink
}

// BroadcastFrame sends a frame from GameActor to BroadcasterActor.
type BroadcastFrame struct {
	Frame Frame
}

// --- Internal Test Messages ---

// internalSinkCountRequest asks the BroadcasterActor how many sinks it holds (used via Ask).
type internalSinkCountRequest struct{}
