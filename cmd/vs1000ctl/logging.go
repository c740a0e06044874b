package main

import (
	"fmt"

	"github.com/rs/zerolog"
)

// driverLogger adapts a zerolog.Logger to the soundboard.Logger
// interface. Key/value pairs become structured fields; a trailing
// unpaired key is dropped.
type driverLogger struct {
	log zerolog.Logger
}

func newDriverLogger(log zerolog.Logger) *driverLogger {
	return &driverLogger{log: log}
}

func (l *driverLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.emit(l.log.Debug(), msg, keysAndValues)
}

func (l *driverLogger) Info(msg string, keysAndValues ...interface{}) {
	l.emit(l.log.Info(), msg, keysAndValues)
}

func (l *driverLogger) Error(msg string, keysAndValues ...interface{}) {
	l.emit(l.log.Error(), msg, keysAndValues)
}

func (l *driverLogger) emit(ev *zerolog.Event, msg string, kv []interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		ev = ev.Interface(fmt.Sprint(kv[i]), kv[i+1])
	}
	ev.Msg(msg)
}
