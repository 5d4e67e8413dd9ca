package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/reusee/taibf/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = func() *slog.LevelVar {
	v := new(slog.LevelVar)
	v.Set(slog.LevelWarn)
	return v
}()

func init() {
	for name, l := range map[string]slog.Level{
		"-log-debug": slog.LevelDebug,
		"-log-info":  slog.LevelInfo,
		"-log-warn":  slog.LevelWarn,
		"-log-error": slog.LevelError,
	} {
		cmds.Define(name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+strings.TrimPrefix(name, "-log-")))
	}
}

func SetLevel(l slog.Level) {
	level.Set(l)
}

type Logger = *slog.Logger

func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler

	// terminal, unless stderr already goes to the journal
	var terminalHandler slog.Handler
	if !isSystemdService() {
		terminalHandler = slog.NewTextHandler(
			writer,
			&slog.HandlerOptions{
				Level: level,
			},
		)
		handlers = append(handlers, terminalHandler)
	}

	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
		Level: level,
		ReplaceGroup: func(key string) string {
			return toJournalKey(key)
		},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err != nil {
		if terminalHandler != nil && terminalHandler.Enabled(context.Background(), slog.LevelDebug) {
			record := slog.NewRecord(time.Now(), slog.LevelDebug, "systemd journal unavailable", 0)
			record.Add("error", err)
			_ = terminalHandler.Handle(context.Background(), record)
		}
	} else {
		handlers = append(handlers, journalHandler)
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func toJournalKey(str string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(str))
}

func isSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
