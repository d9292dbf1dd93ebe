package bootsnrun

import (
	"fmt"
	"os"
	"strconv"

	"github.com/raykavin/bootsnrun/pkg/logger"
	logrusbackend "github.com/raykavin/bootsnrun/pkg/logger/logrus"
	"github.com/raykavin/bootsnrun/pkg/logger/zerolog"
)

// DefaultLog is the logger used by studies that do not set their own.
var DefaultLog logger.Logger

const (
	// Default configuration values
	defaultLogBackend    = "zerolog"
	defaultLogLevel      = "info"
	defaultLogTimeFormat = "2006-01-02 15:04:05"
	defaultLogColored    = "true"
	defaultLogJSON       = "false"
)

// Environment variable names
const (
	envLogBackend    = "BOOTSNRUN_LOG_BACKEND"
	envLogLevel      = "BOOTSNRUN_LOG_LEVEL"
	envLogTimeFormat = "BOOTSNRUN_LOG_TIME_FORMAT"
	envLogColor      = "BOOTSNRUN_LOG_COLOR"
	envLogJSON       = "BOOTSNRUN_LOG_JSON"
)

func init() {
	// Initialize the logger with configuration from environment variables
	log, err := initLogger()
	if err != nil {
		panic(err)
	}

	DefaultLog = log
}

// initLogger creates a new logger instance configured from environment variables
func initLogger() (logger.Logger, error) {
	logBackend := getEnvWithDefault(envLogBackend, defaultLogBackend)
	logLevel := getEnvWithDefault(envLogLevel, defaultLogLevel)
	logTimeFormat := getEnvWithDefault(envLogTimeFormat, defaultLogTimeFormat)

	logColored, err := parseBoolEnv(envLogColor, defaultLogColored)
	if err != nil {
		return nil, err
	}

	logJSON, err := parseBoolEnv(envLogJSON, defaultLogJSON)
	if err != nil {
		return nil, err
	}

	switch logBackend {
	case "zerolog":
		log, err := zerolog.New(logLevel, logTimeFormat, logColored, logJSON)
		if err != nil {
			return nil, err
		}
		return zerolog.NewAdapter(log.Logger), nil
	case "logrus":
		return logrusbackend.New(logLevel, logTimeFormat, logColored, logJSON)
	default:
		return nil, fmt.Errorf("unknown log backend: %s", logBackend)
	}
}

// getEnvWithDefault returns the value of the environment variable or the default if not set
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// parseBoolEnv gets a boolean environment variable with a default value
func parseBoolEnv(key, defaultValue string) (bool, error) {
	value := getEnvWithDefault(key, defaultValue)
	return strconv.ParseBool(value)
}
