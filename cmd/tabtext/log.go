package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// newLogger logs to stderr, as json to logFile when it is set, and to the
// systemd journal as well when journal is set and a journal is reachable.
func newLogger(level slog.Leveler, journal bool, logFile string) *slog.Logger {
	terminalHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	})
	handlers := []slog.Handler{terminalHandler}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			warn(terminalHandler, "open log file", err)
		} else {
			handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		}
	}
	if !journal {
		if len(handlers) == 1 {
			return slog.New(terminalHandler)
		}
		return slog.New(slogmulti.Fanout(handlers...))
	}
	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: func(key string) string {
			return toJournalKey(key)
		},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err != nil {
		warn(terminalHandler, "new systemd journal handler", err)
	} else {
		handlers = append(handlers, journalHandler)
	}
	return slog.New(slogmulti.Fanout(handlers...))
}

// warn reports a logger setup failure on h, which is not yet wrapped in
// a Logger.
func warn(h slog.Handler, msg string, err error) {
	record := slog.NewRecord(time.Now(), slog.LevelWarn, msg, 0)
	record.Add("error", err)
	_ = h.Handle(context.Background(), record)
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}
