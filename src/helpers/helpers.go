// Package helpers contains few helper functions which are used throughout the
// project.
package helpers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"gopkg.in/natefinch/lumberjack.v2"
)

// UserDir is the name of the musicsearch directory in the user's home directory.
const UserDir = ".musicsearch"

// Log file rotation settings.
const (
	logMaxSizeMB  = 50
	logMaxBackups = 3
	logMaxAgeDays = 28
)

// ProjectUserPath returns the directory in which the user configuration and other
// user files are stored. It is not created.
func ProjectUserPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, UserDir), nil
}

// AbsolutePath returns `path` unchanged when it is absolute. Otherwise it is
// joined to `root`.
func AbsolutePath(path, root string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// LogWriter returns the destination for the logs. It is os.Stderr when `logFile`
// is empty. Otherwise it is a rotating log file. The returned closer must be
// called on shutdown.
func LogWriter(logFile string) (io.Writer, io.Closer) {
	if logFile == "" {
		return os.Stderr, nopCloser{}
	}

	lj := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
		Compress:   true,
	}
	return lj, lj
}

// NewLogger returns a logger which writes to `w` with timestamps. The level is one
// of "debug", "info", "warn" or "error".
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
	})
	return logger, nil
}

// SetUpPidFile writes a file at `pidFile` which contains the process ID of the
// currently running process.
func SetUpPidFile(fsys afero.Fs, pidFile string) error {
	if err := fsys.MkdirAll(filepath.Dir(pidFile), 0755); err != nil {
		return fmt.Errorf("creating PID file directory: %w", err)
	}

	pid := strconv.Itoa(os.Getpid()) + "\n"
	if err := afero.WriteFile(fsys, pidFile, []byte(pid), 0644); err != nil {
		return fmt.Errorf("writing PID file: %w", err)
	}

	return nil
}

// RemovePidFile removes the PID file created with SetUpPidFile.
func RemovePidFile(fsys afero.Fs, pidFile string) error {
	if err := fsys.Remove(pidFile); err != nil {
		return fmt.Errorf("removing PID file: %w", err)
	}
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
