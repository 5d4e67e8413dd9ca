package logs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestNewSpan(t *testing.T) {
	SetLevel(slog.LevelDebug)
	defer SetLevel(slog.LevelWarn)

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
		logger Logger,
	) {
		ctx := context.Background()
		ctx1, span1 := newSpan(ctx, "outer")
		ctx2, span2 := newSpan(ctx1, "inner")
		logger.InfoContext(ctx2, "inside")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		var got []string
		for _, line := range lines {
			if !strings.Contains(line, "systemd journal") {
				got = append(got, line)
			}
		}
		if len(got) != 3 {
			t.Fatalf("got %q", got)
		}
		if !strings.Contains(got[0], "logs.span="+string(span1)) {
			t.Fatalf("got %v", got[0])
		}
		if !strings.Contains(got[1], "logs.span="+string(span2)) {
			t.Fatalf("got %v", got[1])
		}
		if !strings.Contains(got[1], "parent="+string(span1)) {
			t.Fatalf("got %v", got[1])
		}
		if !strings.Contains(got[2], "logs.span="+string(span2)) {
			t.Fatalf("got %v", got[2])
		}
	})
}

func TestWrapSpan(t *testing.T) {
	base := errors.New("foo")
	if WrapSpan(context.Background(), base) != base {
		t.Fatal()
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	err := WrapSpan(ctx, base)
	if !errors.Is(err, base) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "span abc") {
		t.Fatalf("got %v", err)
	}
	if WrapSpan(ctx, nil) != nil {
		t.Fatal()
	}
}
