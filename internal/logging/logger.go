// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// VerboseEnv turns on debug logging for every package when set to "1".
const VerboseEnv = "SRM_VERBOSE"

// NewLogger creates a console logger writing to stderr.
// Stdout is reserved for program output.
func NewLogger(level string) zerolog.Logger {
	return NewLoggerWithWriter(level, os.Stderr)
}

// NewLoggerWithWriter creates a logger writing human-readable lines to w.
func NewLoggerWithWriter(level string, w io.Writer) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel converts a string log level to a zerolog level.
// SRM_VERBOSE=1 forces debug; unrecognized values yield info.
func ParseLevel(s string) zerolog.Level {
	if os.Getenv(VerboseEnv) == "1" {
		return zerolog.DebugLevel
	}
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
