package main

import (
	"github.com/rmancero11/club-dashboard-realtime/internal/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the server command.
var rootCmd = &cobra.Command{
	Use:          "chat-server",
	Short:        "Runs the realtime presence, chat and blocking server",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(overridesFromFlags(cmd))
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.String("addr", "", "Listen address (overrides ADDR/PORT)")
	flags.String("db", "", "SQLite database path (overrides DATABASE_PATH)")
	flags.String("jwt-secret", "", "HS256 secret for bearer tokens (overrides JWT_SECRET)")
	flags.Bool("debug", false, "Enable debug mode (overrides DEBUG)")
	flags.String("log-level", "", "Log level: trace, debug, info, warn, error (overrides LOG_LEVEL)")
	flags.String("tls-cert", "", "PEM certificate chain; enables HTTPS together with --tls-key")
	flags.String("tls-key", "", "PEM private key; enables HTTPS together with --tls-cert")
}

// overridesFromFlags converts explicitly set flags into config overrides.
// Flags left at their defaults defer to the environment.
func overridesFromFlags(cmd *cobra.Command) config.Overrides {
	flags := cmd.Flags()
	var o config.Overrides

	str := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}

	o.Addr = str("addr")
	o.DatabasePath = str("db")
	o.JWTSecret = str("jwt-secret")
	o.LogLevel = str("log-level")
	if flags.Changed("debug") {
		v, _ := flags.GetBool("debug")
		o.Debug = &v
	}

	cert, _ := flags.GetString("tls-cert")
	key, _ := flags.GetString("tls-key")
	if cert != "" && key != "" {
		o.TLS = &config.TLSConfig{CertFile: cert, KeyFile: key}
	}
	return o
}
