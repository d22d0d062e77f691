package websocket

import (
	"database/sql"
	"encoding/json"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rmancero11/club-dashboard-realtime/internal/crypto"
	"github.com/rmancero11/club-dashboard-realtime/internal/metrics"
	"github.com/rmancero11/club-dashboard-realtime/internal/models"
	sessionruntime "github.com/rmancero11/club-dashboard-realtime/internal/session/runtime"
	"github.com/rmancero11/club-dashboard-realtime/internal/websocket/handlers"
	pkgtypes "github.com/rmancero11/club-dashboard-realtime/pkg/types"
	"github.com/rmancero11/club-dashboard-realtime/shared/logger"
	socket "github.com/zishang520/socket.io/servers/socket/v3"
	sockettypes "github.com/zishang520/socket.io/v3/pkg/types"
	"golang.org/x/time/rate"
)

// Options tunes the Socket.IO server.
type Options struct {
	// Path is the HTTP path the Socket.IO endpoint is mounted on.
	Path string
	// AllowedOrigins is the CORS allow list; "*" allows any origin.
	AllowedOrigins []string
	// PingInterval is how often the server pings clients.
	PingInterval time.Duration
	// PingTimeout is how long a missing pong is tolerated before the socket is
	// considered dead.
	PingTimeout time.Duration
	// SendRate and SendBurst configure the per-socket send-message limiter.
	SendRate  float64
	SendBurst int
	// LaneQueueSize bounds each per-socket and per-user event queue.
	LaneQueueSize int
	// AllowInsecureAuth accepts {userId} handshakes without a token.
	AllowInsecureAuth bool
}

// SocketIOServer wraps the Socket.IO server for the chat service.
type SocketIOServer struct {
	jwtManager *crypto.JWTManager
	server     *socket.Server
	opts       Options

	registry   *SessionRegistry
	announced  sync.Map // user ID -> struct{} while announced online
	lanes      *sessionruntime.Manager
	deps       handlers.Deps
}

// NewSocketIOServer creates a new Socket.IO v4 server.
func NewSocketIOServer(db *sql.DB, jwtManager *crypto.JWTManager, o Options) *SocketIOServer {
	opts := socket.DefaultServerOptions()

	var origin any = "*"
	if len(o.AllowedOrigins) > 0 && !(len(o.AllowedOrigins) == 1 && o.AllowedOrigins[0] == "*") {
		origin = o.AllowedOrigins
	}
	opts.SetCors(&sockettypes.Cors{
		Origin:      origin,
		Credentials: false,
	})

	// A socket that misses pongs goes through the ordinary disconnect path,
	// which is what flips presence offline after an abrupt client exit.
	opts.SetPingInterval(o.PingInterval)
	opts.SetPingTimeout(o.PingTimeout)
	opts.SetPath(o.Path)

	queries := models.New(db)
	s := &SocketIOServer{
		jwtManager: jwtManager,
		server:     socket.NewServer(nil, opts),
		opts:       o,
		registry:   NewSessionRegistry(),
		lanes:      sessionruntime.NewManager(o.LaneQueueSize),
		deps:       handlers.NewDeps(queries, queries, queries, func() time.Time { return time.Now().UTC() }, pkgtypes.NewID),
	}
	s.lanes.OnDrop = func(string) { metrics.LaneDrops.Inc() }

	s.setupHandlers()

	return s
}

// SocketData is the per-socket state shared by its event handlers.
type SocketData struct {
	UserID  string
	limiter *rate.Limiter
}

// socketConn adapts a Socket.IO socket to the registry's Conn.
type socketConn struct {
	s *socket.Socket
}

func (c socketConn) Emit(event string, args ...any) {
	c.s.Emit(event, args...)
}

func (s *SocketIOServer) setupHandlers() {
	s.server.On("connection", func(clients ...any) {
		client := clients[0].(*socket.Socket)
		s.handleConnection(client)
	})
}

func decodeAny(input any, out any) error {
	raw, err := json.Marshal(input)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func getFirstAnyWithAck(data []any) (any, func(...any)) {
	var ack func(...any)
	if len(data) == 0 {
		return nil, nil
	}
	if cb, ok := data[len(data)-1].(func(...any)); ok {
		ack = cb
		data = data[:len(data)-1]
	} else if cb, ok := data[len(data)-1].(socket.Ack); ok {
		ack = func(args ...any) {
			cb(args, nil)
		}
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return nil, ack
	}
	return data[0], ack
}

// HandleSocketIO creates a Gin handler for Socket.IO.
func (s *SocketIOServer) HandleSocketIO() gin.HandlerFunc {
	httpHandler := s.server.ServeHandler(nil)

	return func(c *gin.Context) {
		logger.Tracef("Socket.IO request: %s %s", c.Request.Method, c.Request.URL.Path)
		httpHandler.ServeHTTP(c.Writer, c.Request)
	}
}

// Close shuts down the Socket.IO server and waits for queued events to
// finish.
func (s *SocketIOServer) Close() error {
	s.server.Close(nil)
	s.lanes.Close()
	return nil
}
