package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Category  string `json:"category"`
	Message   string `json:"message"`
	Session   string `json:"session"`
	File      string `json:"file,omitempty"`
	Line      int    `json:"line,omitempty"`
}

// Options configures where log entries go. Console output is written to
// Console (normally stderr) so it does not mix with command output.
type Options struct {
	Dir      string
	Level    LogLevel
	Console  io.Writer
	NoColor  bool
	FileName string
}

type Logger struct {
	mu           sync.Mutex
	console      io.Writer
	logFile      io.WriteCloser
	level        LogLevel
	colorEnabled bool
	session      string
	exit         func(int)
}

// NewLogger opens logs/hall-booker-<date>.log under opts.Dir and returns a
// logger writing JSON entries to it.
func NewLogger(opts Options) (*Logger, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	name := opts.FileName
	if name == "" {
		name = fmt.Sprintf("hall-booker-%s.log", time.Now().Format("2006-01-02"))
	}
	logFileName := filepath.Join(dir, name)

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	l := newLogger(opts, logFile)
	l.Debug("LOGGER", fmt.Sprintf("Log file: %s", logFileName))
	return l, nil
}

// NewNop discards everything.
func NewNop() *Logger {
	return newLogger(Options{Level: FATAL + 1}, nil)
}

func newLogger(opts Options, file io.WriteCloser) *Logger {
	return &Logger{
		console:      opts.Console,
		logFile:      file,
		level:        opts.Level,
		colorEnabled: !opts.NoColor,
		session:      uuid.NewString(),
		exit:         os.Exit,
	}
}

// ParseLevel maps a level name to a LogLevel, defaulting to INFO.
func ParseLevel(name string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

// Session is the id stamped on every entry of this run.
func (l *Logger) Session() string {
	return l.session
}

func (l *Logger) log(level LogLevel, category, message string) {
	if level < l.level {
		return
	}

	// Get caller information
	_, file, line, ok := runtime.Caller(2)
	if ok {
		file = filepath.Base(file)
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		Level:     l.levelToString(level),
		Category:  strings.ToUpper(category),
		Message:   message,
		Session:   l.session,
		File:      file,
		Line:      line,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.console != nil {
		fmt.Fprint(l.console, l.formatTerminalOutput(entry))
	}
	if l.logFile != nil {
		io.WriteString(l.logFile, l.formatJSONOutput(entry)+"\n")
	}
}

func (l *Logger) formatTerminalOutput(entry LogEntry) string {
	timestamp := entry.Timestamp[11:19] // Extract time part

	var levelColor, categoryColor *color.Color

	switch entry.Level {
	case "DEBUG":
		levelColor = color.New(color.FgCyan)
		categoryColor = color.New(color.FgCyan, color.Bold)
	case "INFO":
		levelColor = color.New(color.FgGreen)
		categoryColor = color.New(color.FgGreen, color.Bold)
	case "WARN":
		levelColor = color.New(color.FgYellow)
		categoryColor = color.New(color.FgYellow, color.Bold)
	case "ERROR":
		levelColor = color.New(color.FgRed)
		categoryColor = color.New(color.FgRed, color.Bold)
	case "FATAL":
		levelColor = color.New(color.FgRed, color.Bold)
		categoryColor = color.New(color.FgRed, color.Bold)
	default:
		levelColor = color.New(color.FgWhite)
		categoryColor = color.New(color.FgWhite, color.Bold)
	}

	if !l.colorEnabled {
		for _, c := range []*color.Color{levelColor, categoryColor} {
			c.DisableColor()
		}
	}

	timeStr := timestamp
	if l.colorEnabled {
		timeStr = color.New(color.FgBlue).Sprintf("%s", timestamp)
	}
	levelStr := levelColor.Sprintf("%-5s", entry.Level)
	categoryStr := categoryColor.Sprintf("[%-10s]", entry.Category)

	if entry.File != "" && entry.Line > 0 {
		fileInfo := fmt.Sprintf(" (%s:%d)", entry.File, entry.Line)
		if l.colorEnabled {
			fileInfo = color.New(color.FgMagenta).Sprint(fileInfo)
		}
		return fmt.Sprintf("%s %s %s %s%s\n", timeStr, levelStr, categoryStr, entry.Message, fileInfo)
	}

	return fmt.Sprintf("%s %s %s %s\n", timeStr, levelStr, categoryStr, entry.Message)
}

func (l *Logger) formatJSONOutput(entry LogEntry) string {
	jsonBytes, _ := json.Marshal(entry)
	return string(jsonBytes)
}

func (l *Logger) levelToString(level LogLevel) string {
	switch level {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "INFO"
	}
}

// Public logging methods
func (l *Logger) Debug(category, message string) {
	l.log(DEBUG, category, message)
}

func (l *Logger) Info(category, message string) {
	l.log(INFO, category, message)
}

func (l *Logger) Warn(category, message string) {
	l.log(WARN, category, message)
}

func (l *Logger) Error(category, message string) {
	l.log(ERROR, category, message)
}

func (l *Logger) Fatal(category, message string) {
	l.log(FATAL, category, message)
	l.Close()
	l.exit(1)
}

// Specialized logging methods for different components
func (l *Logger) LogCommand(command, message string) {
	l.Info("COMMAND", fmt.Sprintf("[%s] %s", command, message))
}

func (l *Logger) LogBooking(action, event, seat, message string) {
	l.Info("BOOKING", fmt.Sprintf("[%s] %s %s - %s", action, event, seat, message))
}

func (l *Logger) LogTicket(code, event, seat string) {
	l.Info("TICKET", fmt.Sprintf("issued %s for %s seat %s", code, event, seat))
}

func (l *Logger) LogFile(operation, path, message string) {
	l.Info("FILE", fmt.Sprintf("[%s] %s - %s", operation, path, message))
}

func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.logFile != nil {
		l.logFile.Close()
		l.logFile = nil
	}
}
