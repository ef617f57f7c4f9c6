package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/reusee/bftape/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

var jsonOutput = cmds.Switch("-log-json", "log records as json")

func init() {
	for name, l := range map[string]slog.Level{
		"-log-debug": slog.LevelDebug,
		"-log-info":  slog.LevelInfo,
		"-log-warn":  slog.LevelWarn,
		"-log-error": slog.LevelError,
	} {
		cmds.Define(name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+strings.ToLower(l.String())))
	}
}

type Logger = *slog.Logger

// Logger writes to Writer, and to the systemd journal when it is reachable.
// Under a systemd service only the journal is used.
func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler

	var terminal slog.Handler
	if !underSystemdService() {
		terminal = newTerminalHandler(writer)
		handlers = append(handlers, terminal)
	}

	journal, err := newJournalHandler()
	switch {
	case err == nil:
		handlers = append(handlers, journal)
	case terminal != nil:
		record := slog.NewRecord(time.Now(), slog.LevelDebug, "systemd journal unavailable", 0)
		record.Add("error", err)
		if terminal.Enabled(context.Background(), record.Level) {
			_ = terminal.Handle(context.Background(), record)
		}
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func newTerminalHandler(writer Writer) slog.Handler {
	options := &slog.HandlerOptions{
		Level: level,
	}
	if *jsonOutput {
		return slog.NewJSONHandler(writer, options)
	}
	return slog.NewTextHandler(writer, options)
}

func newJournalHandler() (slog.Handler, error) {
	return slogjournal.NewHandler(&slogjournal.Options{
		Level: level,
		ReplaceGroup: func(key string) string {
			return toJournalKey(key)
		},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
}

// toJournalKey maps an attribute key to the journal field charset, A-Z 0-9 and _.
func toJournalKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		return '_'
	}, key)
}

func underSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.SplitN(strings.TrimSpace(string(content)), ":", 3)
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
