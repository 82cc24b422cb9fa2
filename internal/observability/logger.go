package observability

import (
	"fmt"
	"os"
	"strings"

	"github.com/fulmenhq/gofulmen/foundry"
	"github.com/fulmenhq/gofulmen/logging"
)

// Log profiles accepted by logging.profile.
const (
	ProfileStructured = "structured"
	ProfileSimple     = "simple"
)

var (
	// CLILogger is used for CLI commands (SIMPLE profile)
	CLILogger *logging.Logger

	// ServerLogger is used for the HTTP server
	ServerLogger *logging.Logger
)

// ServerLoggerOptions configures InitServerLogger.
type ServerLoggerOptions struct {
	Service string

	// Level is trace, debug, info, warn or error; anything else means info.
	Level string

	// Profile is "structured" (JSON to stderr, the default) or "simple"
	// (human-readable, for running the server in a terminal).
	Profile string

	// Namespace is attached to every entry when set.
	Namespace string
}

// InitCLILogger initializes the CLI logger with SIMPLE profile
func InitCLILogger(serviceName string, verbose bool) {
	logger, err := logging.NewCLI(serviceName)
	if err != nil {
		fatal(foundry.ExitConfigInvalid, "Failed to initialize CLI logger", err)
	}

	if verbose {
		logger.SetLevel(logging.DEBUG)
	}

	CLILogger = logger
}

// InitServerLogger initializes ServerLogger from opts.
func InitServerLogger(opts ServerLoggerOptions) {
	if strings.EqualFold(strings.TrimSpace(opts.Profile), ProfileSimple) {
		logger, err := logging.NewCLI(opts.Service)
		if err != nil {
			fatal(foundry.ExitConfigInvalid, "Failed to initialize server logger", err)
		}
		if level := parseLogLevel(opts.Level); level == "DEBUG" || level == "TRACE" {
			logger.SetLevel(logging.DEBUG)
		}
		ServerLogger = logger
		return
	}

	logger, err := logging.New(serverLoggerConfig(opts))
	if err != nil {
		fatal(foundry.ExitConfigInvalid, "Failed to initialize server logger", err)
	}
	ServerLogger = logger
}

func serverLoggerConfig(opts ServerLoggerOptions) *logging.LoggerConfig {
	staticFields := make(map[string]any)
	if opts.Namespace != "" {
		staticFields["namespace"] = opts.Namespace
	}

	return &logging.LoggerConfig{
		Profile:      logging.ProfileStructured,
		DefaultLevel: parseLogLevel(opts.Level),
		Service:      opts.Service,
		Environment:  "production",
		StaticFields: staticFields,
		Middleware: []logging.MiddlewareConfig{
			{
				Name:    "correlation",
				Enabled: true,
				Order:   100,
				Config:  make(map[string]any),
			},
		},
		Sinks: []logging.SinkConfig{
			{
				Type:   "console",
				Format: "json",
				Console: &logging.ConsoleSinkConfig{
					Stream:   "stderr",
					Colorize: false,
				},
			},
		},
		EnableCaller:     true,
		EnableStacktrace: true,
	}
}

// Logger returns the server logger when the HTTP server is running, else the
// CLI logger. It returns nil before either is initialized.
func Logger() *logging.Logger {
	if ServerLogger != nil {
		return ServerLogger
	}
	return CLILogger
}

// parseLogLevel converts a config level to a logging severity name.
func parseLogLevel(levelStr string) string {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return "TRACE"
	case "debug":
		return "DEBUG"
	case "warn", "warning":
		return "WARN"
	case "error":
		return "ERROR"
	default:
		return "INFO"
	}
}

// fatal reports a logger setup failure on stderr and exits. No logger exists
// yet at this point.
func fatal(exitCode foundry.ExitCode, msg string, err error) {
	fmt.Fprintf(os.Stderr, "FATAL: %s: %v\n", msg, err)
	code := int(exitCode)
	if info, ok := foundry.GetExitCodeInfo(exitCode); ok {
		code = info.Code
		fmt.Fprintf(os.Stderr, "Exit Code: %d (%s) - %s\n", info.Code, info.Name, info.Description)
	}
	os.Exit(code)
}
