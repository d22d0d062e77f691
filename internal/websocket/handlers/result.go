package handlers

// EmitScope describes where an emission should be delivered.
type EmitScope int

const (
	emitScopeUnknown EmitScope = iota
	emitScopeCaller
	emitScopeUser
	emitScopeEveryone
)

// EmitInstruction describes a single outbound Socket.IO emission produced by
// a handler call.
type EmitInstruction struct {
	scope   EmitScope
	userID  string
	event   string
	payload any
}

func newCallerEmit(event string, payload any) EmitInstruction {
	return EmitInstruction{scope: emitScopeCaller, event: event, payload: payload}
}

func newUserEmit(userID, event string, payload any) EmitInstruction {
	return EmitInstruction{scope: emitScopeUser, userID: userID, event: event, payload: payload}
}

func newBroadcast(event string, payload any) EmitInstruction {
	return EmitInstruction{scope: emitScopeEveryone, event: event, payload: payload}
}

// Scope returns where the emission should be delivered.
func (e EmitInstruction) Scope() EmitScope { return e.scope }

// IsCaller reports whether the emission targets only the originating socket.
func (e EmitInstruction) IsCaller() bool { return e.scope == emitScopeCaller }

// IsUser reports whether the emission targets every session of UserID.
func (e EmitInstruction) IsUser() bool { return e.scope == emitScopeUser }

// IsEveryone reports whether the emission targets every connected session.
func (e EmitInstruction) IsEveryone() bool { return e.scope == emitScopeEveryone }

// UserID returns the target user for user-scoped emissions.
func (e EmitInstruction) UserID() string { return e.userID }

// Event returns the Socket.IO event name.
func (e EmitInstruction) Event() string { return e.event }

// Payload returns the event body.
func (e EmitInstruction) Payload() any { return e.payload }

// EventResult is the output of a handler invocation.
type EventResult struct {
	ack   any
	emits []EmitInstruction
}

// NewEventResult constructs a handler result.
func NewEventResult(ack any, emits []EmitInstruction) EventResult {
	return EventResult{ack: ack, emits: emits}
}

// Ack returns the ACK payload to send to the caller, or nil.
func (r EventResult) Ack() any { return r.ack }

// Emits returns the list of emissions requested by the handler.
func (r EventResult) Emits() []EmitInstruction { return r.emits }

// Empty reports whether the handler produced nothing to send.
func (r EventResult) Empty() bool { return r.ack == nil && len(r.emits) == 0 }
