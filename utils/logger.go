// Copyright 2019-2021 VMware, Inc.
// SPDX-License-Identifier: BSD-2-Clause

package utils

import (
	"io"
	"os"
	"path"

	"github.com/sirupsen/logrus"
)

var Log *ServeLogger

// LogConfig holds the destinations of the three log streams of the server. each destination is either
// one of the reserved words stdout, stderr, null or a path to a file. relative paths are resolved against Root.
// an empty destination means stderr; stdout carries nothing but the startup announcement unless asked to.
type LogConfig struct {
	AccessLog     string           `json:"access_log" mapstructure:"access-log"`
	ErrorLog      string           `json:"error_log" mapstructure:"error-log"`
	OutputLog     string           `json:"output_log" mapstructure:"output-log"`
	FormatOptions *LogFormatOption `json:"format_options" mapstructure:"format-options"`
	Root          string           `json:"root" mapstructure:"root"`
	accessLogFp   io.Writer
	errorLogFp    io.Writer
	outputLogFp   io.Writer
}

// LogFormatOption is merely a wrapper of logrus.TextFormatter because TextFormatter does not allow serializing
// its public members of the struct
type LogFormatOption struct {
	// Set to true to bypass checking for a TTY before outputting colors.
	ForceColors bool `json:"force_colors" mapstructure:"force-colors"`

	// Force disabling colors.
	DisableColors bool `json:"disable_colors" mapstructure:"disable-colors"`

	// Force quoting of all values
	ForceQuote bool `json:"force_quote" mapstructure:"force-quote"`

	// Disable timestamp logging. useful when output is redirected to logging
	// system that already adds timestamps.
	DisableTimestamp bool `json:"disable_timestamp" mapstructure:"disable-timestamp"`

	// Enable logging the full timestamp when a TTY is attached instead of just
	// the time passed since beginning of execution.
	FullTimestamp bool `json:"full_timestamp" mapstructure:"full-timestamp"`

	// TimestampFormat to use for display when a full timestamp is printed
	TimestampFormat string `json:"timestamp_format" mapstructure:"timestamp-format"`

	// PadLevelText Adds padding the level text so that all the levels output at the same length
	PadLevelText bool `json:"pad_level_text" mapstructure:"pad-level-text"`
}

// PrepareLogFiles opens (or creates) every log destination. it has to be called before any of the
// Get*FilePointer methods are used.
func (lc *LogConfig) PrepareLogFiles() error {
	var fp io.Writer
	var err error
	if fp, err = lc.prepareLogFilePointer(lc.AccessLog); err != nil {
		return err
	}
	lc.accessLogFp = fp

	if fp, err = lc.prepareLogFilePointer(lc.ErrorLog); err != nil {
		return err
	}
	lc.errorLogFp = fp

	if fp, err = lc.prepareLogFilePointer(lc.OutputLog); err != nil {
		return err
	}
	lc.outputLogFp = fp

	return nil
}

func (lc *LogConfig) GetAccessLogFilePointer() io.Writer {
	return lc.accessLogFp
}

func (lc *LogConfig) GetErrorLogFilePointer() io.Writer {
	return lc.errorLogFp
}

func (lc *LogConfig) GetPlatformLogFilePointer() io.Writer {
	return lc.outputLogFp
}

func (lc *LogConfig) prepareLogFilePointer(target string) (fp io.Writer, err error) {
	switch target {
	case "stdout":
		fp = os.Stdout
	case "", "stderr":
		fp = os.Stderr
	case "null":
		fp = &noopWriter{}
	default:
		logFilePath := JoinBasePathIfRelativeRegularFilePath(lc.Root, target)
		fp, err = GetNewLogFilePointer(logFilePath)
	}
	return
}

// ServeLogger is a logrus logger that stamps every entry with the goroutine, package and file it came from
type ServeLogger struct {
	*logrus.Logger
}

func (l *ServeLogger) setCommonFields() *logrus.Entry {
	fr := getFrame(2)
	pkgName := path.Base(path.Dir(fr.File))
	fileName := path.Base(fr.File)
	return l.WithFields(logrus.Fields{
		"goroutine": GetGoRoutineID(),
		"package":   pkgName,
		"fileName":  fileName,
	})
}

func (l *ServeLogger) Debug(args ...interface{}) {
	l.setCommonFields().Debug(args...)
}

func (l *ServeLogger) Debugln(args ...interface{}) {
	l.setCommonFields().Debugln(args...)
}

func (l *ServeLogger) Debugf(format string, args ...interface{}) {
	l.setCommonFields().Debugf(format, args...)
}

func (l *ServeLogger) Info(args ...interface{}) {
	l.setCommonFields().Info(args...)
}

func (l *ServeLogger) Infoln(args ...interface{}) {
	l.setCommonFields().Infoln(args...)
}

func (l *ServeLogger) Infof(format string, args ...interface{}) {
	l.setCommonFields().Infof(format, args...)
}

func (l *ServeLogger) Warn(args ...interface{}) {
	l.setCommonFields().Warn(args...)
}

func (l *ServeLogger) Warnf(format string, args ...interface{}) {
	l.setCommonFields().Warnf(format, args...)
}

func (l *ServeLogger) Error(args ...interface{}) {
	l.setCommonFields().Error(args...)
}

func (l *ServeLogger) Errorln(args ...interface{}) {
	l.setCommonFields().Errorln(args...)
}

func (l *ServeLogger) Errorf(format string, args ...interface{}) {
	l.setCommonFields().Errorf(format, args...)
}

// noopWriter discards everything. passing "null" as the access log keeps request logging
// off the IO path entirely.
type noopWriter struct{}

func (noopWriter *noopWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func init() {
	Log = &ServeLogger{logrus.New()}
}

// CreateTextFormatterFromFormatOptions takes *LogFormatOption and returns
// the pointer to a new logrus.TextFormatter instance.
func CreateTextFormatterFromFormatOptions(opts *LogFormatOption) *logrus.TextFormatter {
	if opts == nil {
		opts = &LogFormatOption{}
	}
	return &logrus.TextFormatter{
		ForceColors:      opts.ForceColors,
		DisableColors:    opts.DisableColors,
		ForceQuote:       opts.ForceQuote,
		DisableTimestamp: opts.DisableTimestamp,
		FullTimestamp:    opts.FullTimestamp,
		TimestampFormat:  opts.TimestampFormat,
		PadLevelText:     opts.PadLevelText,
	}
}

// GetNewLogFilePointer returns the pointer to a new os.File instance given the file name
func GetNewLogFilePointer(file string) (*os.File, error) {
	return os.OpenFile(file, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0600)
}
