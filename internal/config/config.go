package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds server configuration.
type Config struct {
	// Addr is the listen address for the HTTP(S) server.
	Addr         string
	DatabasePath string
	// JWTSecret verifies the bearer tokens issued by the authentication layer.
	JWTSecret      string
	Debug          bool
	LogLevel       string
	AllowedOrigins []string

	// SocketPath is the HTTP path the Socket.IO endpoint is mounted on.
	SocketPath string
	// PingInterval is how often the transport pings idle sockets.
	PingInterval time.Duration
	// PingTimeout is how long a socket may go without a pong before it is
	// torn down like any other disconnect.
	PingTimeout time.Duration

	// SendRate is the sustained number of send-message events per second a
	// single socket may issue; SendBurst is the bucket size.
	SendRate  float64
	SendBurst int

	// RESTRate and RESTBurst configure the token bucket shared by every
	// request to the /v1 REST group.
	RESTRate  float64
	RESTBurst int

	// LaneQueueSize caps the pending events per connection or per user lane.
	LaneQueueSize int

	// TLS holds HTTPS configuration. If nil, the server runs in plain HTTP mode.
	TLS *TLSConfig
}

// TLSConfig holds file paths for serving HTTPS directly from the server.
type TLSConfig struct {
	// CertFile is a PEM-encoded certificate chain.
	CertFile string
	// KeyFile is a PEM-encoded private key.
	KeyFile string
}

// Overrides optionally overrides values from environment variables.
//
// A nil pointer means "use the environment/default value".
type Overrides struct {
	Addr         *string
	DatabasePath *string
	JWTSecret    *string
	Debug        *bool
	LogLevel     *string
	TLS          *TLSConfig
}

// Load loads server configuration from environment variables and applies any
// explicit overrides.
func Load(overrides Overrides) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", 3005)
	v.SetDefault("DATABASE_PATH", "./chat.db")
	v.SetDefault("DEBUG", false)
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("SOCKET_PATH", "/v1/updates")
	v.SetDefault("PING_INTERVAL", 25*time.Second)
	v.SetDefault("PING_TIMEOUT", 20*time.Second)
	v.SetDefault("SEND_RATE", 5.0)
	v.SetDefault("SEND_BURST", 20)
	v.SetDefault("REST_RATE", 50.0)
	v.SetDefault("REST_BURST", 100)
	v.SetDefault("LANE_QUEUE_SIZE", 256)

	addr := v.GetString("ADDR")
	if addr == "" {
		addr = fmt.Sprintf(":%d", v.GetInt("PORT"))
	}
	if overrides.Addr != nil {
		addr = *overrides.Addr
	}

	dbPath := v.GetString("DATABASE_PATH")
	if overrides.DatabasePath != nil {
		dbPath = *overrides.DatabasePath
	}

	secret := v.GetString("JWT_SECRET")
	if overrides.JWTSecret != nil {
		secret = *overrides.JWTSecret
	}
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	debug := v.GetBool("DEBUG")
	if overrides.Debug != nil {
		debug = *overrides.Debug
	}

	// An explicit level always wins; debug only changes the fallback.
	logLevel := v.GetString("LOG_LEVEL")
	if overrides.LogLevel != nil {
		logLevel = *overrides.LogLevel
	}
	if logLevel == "" {
		logLevel = "info"
		if debug {
			logLevel = "debug"
		}
	}

	pingInterval := v.GetDuration("PING_INTERVAL")
	pingTimeout := v.GetDuration("PING_TIMEOUT")
	if pingInterval <= 0 || pingTimeout <= 0 {
		return nil, fmt.Errorf("PING_INTERVAL and PING_TIMEOUT must be positive")
	}

	sendRate := v.GetFloat64("SEND_RATE")
	sendBurst := v.GetInt("SEND_BURST")
	if sendRate <= 0 || sendBurst <= 0 {
		return nil, fmt.Errorf("SEND_RATE and SEND_BURST must be positive")
	}

	restRate := v.GetFloat64("REST_RATE")
	restBurst := v.GetInt("REST_BURST")
	if restRate <= 0 || restBurst <= 0 {
		return nil, fmt.Errorf("REST_RATE and REST_BURST must be positive")
	}

	laneQueue := v.GetInt("LANE_QUEUE_SIZE")
	if laneQueue <= 0 {
		return nil, fmt.Errorf("LANE_QUEUE_SIZE must be positive")
	}

	socketPath := v.GetString("SOCKET_PATH")
	if !strings.HasPrefix(socketPath, "/") {
		socketPath = "/" + socketPath
	}

	return &Config{
		Addr:           addr,
		DatabasePath:   dbPath,
		JWTSecret:      secret,
		Debug:          debug,
		LogLevel:       logLevel,
		AllowedOrigins: splitCSV(v.GetString("ALLOWED_ORIGINS")),
		SocketPath:     socketPath,
		PingInterval:   pingInterval,
		PingTimeout:    pingTimeout,
		SendRate:       sendRate,
		SendBurst:      sendBurst,
		RESTRate:       restRate,
		RESTBurst:      restBurst,
		LaneQueueSize:  laneQueue,
		TLS:            overrides.TLS,
	}, nil
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
