// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// callDepth is the stack depth from callerString to the
// code calling one of the logger level methods.
const callDepth = 3

var timeNow = time.Now

func (l *Logger) log(logLevel Level, s string, args ...interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if *l.settings.level > logLevel {
		return
	}

	if len(args) > 0 {
		s = fmt.Sprintf(s, args...)
	}

	var caller string
	if l.settings.caller.enabled() {
		caller = callerString(l.settings.caller, callDepth)
	}

	var line string
	switch *l.settings.format {
	case FormatJSON:
		line = l.jsonLine(logLevel, s, caller)
	default:
		line = l.consoleLine(logLevel, s, caller)
	}

	_, _ = l.settings.writer.Write([]byte(line))
}

func (l *Logger) consoleLine(logLevel Level, s, caller string) (line string) {
	line = timeNow().Format(time.RFC3339) + " " + logLevel.ColouredString() + " " + s

	if len(l.settings.context) > 0 {
		keyValues := make([]string, len(l.settings.context))
		for i, kvs := range l.settings.context {
			keyValues[i] = kvs.key + "=" + strings.Join(kvs.values, ",")
		}
		line += "\t" + strings.Join(keyValues, " ")
	}

	if caller != "" {
		line += "\t" + caller
	}

	return line + "\n"
}

func (l *Logger) jsonLine(logLevel Level, s, caller string) (line string) {
	object := map[string]string{
		"time":    timeNow().Format(time.RFC3339),
		"level":   logLevel.String(),
		"message": s,
	}
	for _, kvs := range l.settings.context {
		object[kvs.key] = strings.Join(kvs.values, ",")
	}
	if caller != "" {
		object["caller"] = caller
	}

	b, err := json.Marshal(object)
	if err != nil {
		return fmt.Sprintf(`{"level":"EROR","message":"cannot encode log line: %s"}`+"\n", err)
	}
	return string(b) + "\n"
}

// Trace logs with the trce level.
func (l *Logger) Trace(s string) { l.log(Trace, s) }

// Debug logs with the dbug level.
func (l *Logger) Debug(s string) { l.log(Debug, s) }

// Info logs with the info level.
func (l *Logger) Info(s string) { l.log(Info, s) }

// Warn logs with the warn level.
func (l *Logger) Warn(s string) { l.log(Warn, s) }

// Error logs with the eror level.
func (l *Logger) Error(s string) { l.log(Error, s) }

// Critical logs with the crit level.
func (l *Logger) Critical(s string) { l.log(Critical, s) }

// Tracef formats and logs at the trce level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.log(Trace, format, args...)
}

// Debugf formats and logs at the dbug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.log(Debug, format, args...)
}

// Infof formats and logs at the info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.log(Info, format, args...)
}

// Warnf formats and logs at the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.log(Warn, format, args...)
}

// Errorf formats and logs at the eror level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.log(Error, format, args...)
}

// Criticalf formats and logs at the crit level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.log(Critical, format, args...)
}
