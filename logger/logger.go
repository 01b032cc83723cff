package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var (
	levelNames = map[LogLevel]string{
		DEBUG: "DEBUG",
		INFO:  "INFO",
		WARN:  "WARN",
		ERROR: "ERROR",
		FATAL: "FATAL",
	}

	levelColors = map[LogLevel]string{
		DEBUG: "\033[36m",
		INFO:  "\033[32m",
		WARN:  "\033[33m",
		ERROR: "\033[31m",
		FATAL: "\033[35m",
	}

	resetColor = "\033[0m"
)

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel maps a textual level ("debug", "info", ...) to a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "", "INFO":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	case "FATAL":
		return FATAL, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger writes leveled entries to the console and, optionally, a daily file.
type Logger struct {
	level      LogLevel
	console    io.Writer
	files      []io.Writer
	mu         sync.Mutex
	useColor   bool
	prefix     string
	showCaller bool
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Config describes how the logger should be initialised.
type Config struct {
	Level      LogLevel
	LogDir     string
	MaxSize    int64 // bytes
	MaxAge     int   // days
	UseColor   bool
	ShowCaller bool
	Prefix     string
	// Output replaces stdout as the console writer when set.
	Output io.Writer
}

// Initialize boots the global logger instance if it has not been created yet.
func Initialize(config Config) error {
	var err error
	once.Do(func() {
		defaultLogger, err = New(config)
	})
	return err
}

// New builds a standalone logger from config.
func New(config Config) (*Logger, error) {
	l := &Logger{
		level:      config.Level,
		console:    config.Output,
		useColor:   config.UseColor,
		prefix:     config.Prefix,
		showCaller: config.ShowCaller,
	}
	if l.console == nil {
		l.console = os.Stdout
	}

	if config.LogDir != "" {
		if err := os.MkdirAll(config.LogDir, 0755); err != nil {
			return nil, err
		}
		logFile, err := createLogFile(config.LogDir)
		if err != nil {
			return nil, err
		}
		l.files = append(l.files, logFile)

		go rotateLogFiles(config.LogDir, config.MaxSize, config.MaxAge)
	}

	return l, nil
}

func createLogFile(logDir string) (*os.File, error) {
	timestamp := time.Now().Format("2006-01-02")
	logPath := filepath.Join(logDir, fmt.Sprintf("catalog-%s.log", timestamp))

	return os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// rotateLogFiles prunes files past maxAge days and renames files larger than maxSize.
func rotateLogFiles(logDir string, maxSize int64, maxAge int) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		files, _ := filepath.Glob(filepath.Join(logDir, "catalog-*.log"))
		for _, file := range files {
			info, err := os.Stat(file)
			if err != nil {
				continue
			}

			if maxAge > 0 && time.Since(info.ModTime()) > time.Duration(maxAge)*24*time.Hour {
				os.Remove(file)
				continue
			}

			if maxSize > 0 && info.Size() > maxSize {
				archived := strings.Replace(file, ".log", fmt.Sprintf("-%d.log", time.Now().Unix()), 1)
				os.Rename(file, archived)
			}
		}
	}
}

// Stack depth from output to the code that called a logging function.
const (
	packageCallDepth = 2 // output <- Info <- caller
	entryCallDepth   = 3 // output <- LogEntry.log <- LogEntry.Info <- caller
)

func (l *Logger) output(depth int, level LogLevel, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05.000")
	message := fmt.Sprintf(format, args...)

	caller := ""
	if l.showCaller {
		if _, file, line, ok := runtime.Caller(depth); ok {
			caller = fmt.Sprintf(" [%s:%d]", filepath.Base(file), line)
		}
	}

	plain := fmt.Sprintf("%s%s [%s]%s %s\n", timestamp, caller, level, l.prefix, message)
	if l.useColor {
		fmt.Fprintf(l.console, "%s%s [%s]%s %s%s%s\n",
			timestamp, caller, level, l.prefix, levelColors[level], message, resetColor)
	} else {
		io.WriteString(l.console, plain)
	}
	for _, w := range l.files {
		io.WriteString(w, plain)
	}

	if level == FATAL {
		os.Exit(1)
	}
}

func Debug(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.output(packageCallDepth, DEBUG, format, args...)
	}
}

func Info(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.output(packageCallDepth, INFO, format, args...)
	} else {
		log.Printf("[INFO] "+format, args...)
	}
}

func Warn(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.output(packageCallDepth, WARN, format, args...)
	} else {
		log.Printf("[WARN] "+format, args...)
	}
}

func Error(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.output(packageCallDepth, ERROR, format, args...)
	} else {
		log.Printf("[ERROR] "+format, args...)
	}
}

func Fatal(format string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.output(packageCallDepth, FATAL, format, args...)
	} else {
		log.Fatalf("[FATAL] "+format, args...)
	}
}

// WithFields attaches structured fields to the log entry.
func WithFields(fields map[string]interface{}) *LogEntry {
	return &LogEntry{
		fields: fields,
		logger: defaultLogger,
	}
}

// WithFields attaches structured fields to an entry of this logger.
func (l *Logger) WithFields(fields map[string]interface{}) *LogEntry {
	return &LogEntry{fields: fields, logger: l}
}

// LogEntry is a structured log entry builder.
type LogEntry struct {
	fields map[string]interface{}
	logger *Logger
}

func (e *LogEntry) Debug(format string, args ...interface{}) {
	e.log(DEBUG, format, args...)
}

func (e *LogEntry) Info(format string, args ...interface{}) {
	e.log(INFO, format, args...)
}

func (e *LogEntry) Warn(format string, args ...interface{}) {
	e.log(WARN, format, args...)
}

func (e *LogEntry) Error(format string, args ...interface{}) {
	e.log(ERROR, format, args...)
}

func (e *LogEntry) Fatal(format string, args ...interface{}) {
	e.log(FATAL, format, args...)
}

// Log emits the entry with an explicit level.
func (e *LogEntry) Log(level LogLevel, format string, args ...interface{}) {
	e.log(level, format, args...)
}

func (e *LogEntry) log(level LogLevel, format string, args ...interface{}) {
	if e.logger == nil {
		if level >= WARN {
			log.Printf("[%s] %s%s", level, fmt.Sprintf(format, args...), formatFields(e.fields))
		}
		return
	}
	if level < e.logger.level {
		return
	}

	e.logger.output(entryCallDepth, level, "%s%s", fmt.Sprintf(format, args...), formatFields(e.fields))
}

// formatFields renders fields as " | k=v, k=v" with keys sorted.
func formatFields(fields map[string]interface{}) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	return " | " + strings.Join(parts, ", ")
}

// SetLevel updates the global logging level.
func SetLevel(level LogLevel) {
	if defaultLogger != nil {
		defaultLogger.mu.Lock()
		defaultLogger.level = level
		defaultLogger.mu.Unlock()
	}
}

// GetLevel returns the current global logging level.
func GetLevel() LogLevel {
	if defaultLogger != nil {
		return defaultLogger.level
	}
	return INFO
}
