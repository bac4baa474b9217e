package main

import (
	"github.com/zoobzio/zlog"
)

// eventLog emits CLI events through zlog. Debug events are dropped unless
// --verbose is set.
type eventLog struct {
	verbose bool
}

func newEventLog(opts *globalOptions) eventLog {
	return eventLog{verbose: opts.verbose}
}

func (l eventLog) debug(msg string, fields ...zlog.Field) {
	if l.verbose {
		zlog.Debug(msg, fields...)
	}
}

func (l eventLog) info(msg string, fields ...zlog.Field) {
	zlog.Info(msg, fields...)
}

func (l eventLog) error(msg string, err error, fields ...zlog.Field) {
	zlog.Error(msg, append(fields, zlog.String("error", err.Error()))...)
}

// indexFields tags an event with the dialect and the index it concerns.
func indexFields(dialect string, def IndexDef) []zlog.Field {
	return []zlog.Field{
		zlog.String("dialect", dialect),
		zlog.String("index", def.Name),
		zlog.String("table", def.Table),
	}
}
