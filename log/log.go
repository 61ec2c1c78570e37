//  Copyright (c) 2014 Couchbase, Inc.

// Package log is the logging front for colortree packages. Applications
// can integrate it with their own logging by supplying a Logger, else
// a logrus backed logger is used.
package log

import "io"
import "os"
import "strings"

import "github.com/sirupsen/logrus"
import "github.com/bnclabs/colortree/lib"

func init() {
	SetLogger(nil, nil)
}

// Logger interface for colortree logging, applications can
// supply a logger object implementing this interface or
// colortree will fall back to the defaultLogger{}.
type Logger interface {
	SetLogLevel(string)
	Fatalf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
	Warnf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Verbosef(format string, v ...interface{})
	Debugf(format string, v ...interface{})
	Tracef(format string, v ...interface{})
	Printlf(loglevel LogLevel, format string, v ...interface{})
}

// LogLevel defines colortree log level.
type LogLevel int

const (
	logLevelIgnore LogLevel = iota + 1
	logLevelFatal
	logLevelError
	logLevelWarn
	logLevelInfo
	logLevelVerbose
	logLevelDebug
	logLevelTrace
)

var log Logger // object used by colortree components for logging.

// Defaultsettings for the default logger.
//
// "log.level" (string, default: "info")
//		One of "ignore", "fatal", "error", "warn", "info", "verbose",
//		"debug", "trace".
//
// "log.file" (string, default: "")
//		Append log to file, if empty log to os.Stdout.
//
func Defaultsettings() lib.Settings {
	return lib.Settings{
		"log.level": "info",
		"log.file":  "",
	}
}

// SetLogger to integrate colortree logging with application logging.
// importing this package will initialize the logger with info level
// logging to console.
func SetLogger(logger Logger, setts map[string]interface{}) Logger {
	if logger != nil {
		log = logger
		return log
	}

	config := make(lib.Settings).Mixin(Defaultsettings(), setts)
	var output io.Writer = os.Stdout
	if logfile := config.String("log.file"); logfile != "" {
		flags := os.O_RDWR | os.O_APPEND | os.O_CREATE
		fd, err := os.OpenFile(logfile, flags, 0660)
		if err != nil {
			panic(err)
		}
		output = fd
	}
	log = newDefaultLogger(string2logLevel(config.String("log.level")), output)
	return log
}

// defaultLogger with default log-file as os.Stdout and,
// default log-level as logLevelInfo.
type defaultLogger struct {
	level   LogLevel
	output  io.Writer
	backend *logrus.Logger
}

func newDefaultLogger(level LogLevel, output io.Writer) *defaultLogger {
	l := &defaultLogger{level: level, output: output, backend: logrus.New()}
	l.backend.SetOutput(output)
	l.backend.SetLevel(logrus.TraceLevel) // filtering is done by canlog()
	l.backend.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.999Z-07:00",
	})
	return l
}

func (l *defaultLogger) SetLogLevel(level string) {
	l.level = string2logLevel(level)
}

func (l *defaultLogger) Fatalf(format string, v ...interface{}) {
	l.Printlf(logLevelFatal, format, v...)
}

func (l *defaultLogger) Errorf(format string, v ...interface{}) {
	l.Printlf(logLevelError, format, v...)
}

func (l *defaultLogger) Warnf(format string, v ...interface{}) {
	l.Printlf(logLevelWarn, format, v...)
}

func (l *defaultLogger) Infof(format string, v ...interface{}) {
	l.Printlf(logLevelInfo, format, v...)
}

func (l *defaultLogger) Verbosef(format string, v ...interface{}) {
	l.Printlf(logLevelVerbose, format, v...)
}

func (l *defaultLogger) Debugf(format string, v ...interface{}) {
	l.Printlf(logLevelDebug, format, v...)
}

func (l *defaultLogger) Tracef(format string, v ...interface{}) {
	l.Printlf(logLevelTrace, format, v...)
}

// Printlf never exits the process, not even for logLevelFatal.
func (l *defaultLogger) Printlf(level LogLevel, format string, v ...interface{}) {
	if l.canlog(level) {
		l.backend.Logf(level.tologrus(), format, v...)
	}
}

func (l *defaultLogger) canlog(level LogLevel) bool {
	return level <= l.level && l.level != logLevelIgnore
}

func (l LogLevel) tologrus() logrus.Level {
	switch l {
	case logLevelFatal:
		return logrus.FatalLevel
	case logLevelError:
		return logrus.ErrorLevel
	case logLevelWarn:
		return logrus.WarnLevel
	case logLevelInfo:
		return logrus.InfoLevel
	case logLevelVerbose, logLevelDebug:
		return logrus.DebugLevel
	}
	return logrus.TraceLevel
}

func (l LogLevel) String() string {
	switch l {
	case logLevelIgnore:
		return "Ignor"
	case logLevelFatal:
		return "Fatal"
	case logLevelError:
		return "Error"
	case logLevelWarn:
		return "Warng"
	case logLevelInfo:
		return "Infom"
	case logLevelVerbose:
		return "Verbs"
	case logLevelDebug:
		return "Debug"
	case logLevelTrace:
		return "Trace"
	}
	panic("unexpected log level") // should never reach here
}

func string2logLevel(s string) LogLevel {
	switch strings.ToLower(s) {
	case "ignore":
		return logLevelIgnore
	case "fatal":
		return logLevelFatal
	case "error":
		return logLevelError
	case "warn":
		return logLevelWarn
	case "info":
		return logLevelInfo
	case "verbose":
		return logLevelVerbose
	case "debug":
		return logLevelDebug
	case "trace":
		return logLevelTrace
	}
	panic("unexpected log level") // should never reach here
}

// Fatalf log a fatal message, process is not terminated.
func Fatalf(format string, v ...interface{}) {
	log.Printlf(logLevelFatal, format, v...)
}

// Errorf log an error message.
func Errorf(format string, v ...interface{}) {
	log.Printlf(logLevelError, format, v...)
}

// Warnf log a warning message.
func Warnf(format string, v ...interface{}) {
	log.Printlf(logLevelWarn, format, v...)
}

// Infof log an informational message.
func Infof(format string, v ...interface{}) {
	log.Printlf(logLevelInfo, format, v...)
}

// Verbosef log a verbose message.
func Verbosef(format string, v ...interface{}) {
	log.Printlf(logLevelVerbose, format, v...)
}

// Debugf log a debug message.
func Debugf(format string, v ...interface{}) {
	log.Printlf(logLevelDebug, format, v...)
}

// Tracef log a trace message.
func Tracef(format string, v ...interface{}) {
	log.Printlf(logLevelTrace, format, v...)
}
