package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/nets"
)

var (
	ErrNoInput = errors.New("no program given")
	ErrRead    = errors.New("read program")
)

// MaxURLSize limits programs fetched over HTTP.
const MaxURLSize = 16 << 20

// Source names where a program comes from. The first non-empty field wins, in field order.
type Source struct {
	Code string
	File string
	URL  string
}

type Load func(ctx context.Context, src Source) (bfvm.Program, error)

func (Module) Load(
	client nets.HTTPClient,
	logger logs.Logger,
) Load {
	return func(ctx context.Context, src Source) (bfvm.Program, error) {
		switch {

		case src.Code != "":
			return bfvm.NewProgram(src.Code), nil

		case src.File != "":
			content, err := os.ReadFile(src.File)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrRead, err)
			}
			logger.DebugContext(ctx, "program file", "path", src.File, "size", len(content))
			return bfvm.Program(content), nil

		case src.URL != "":
			content, err := fetch(ctx, client, src.URL)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrRead, src.URL, err)
			}
			logger.DebugContext(ctx, "program url", "url", src.URL, "size", len(content))
			return bfvm.Program(content), nil

		}
		return nil, ErrNoInput
	}
}

func fetch(ctx context.Context, client nets.HTTPClient, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("status %s", resp.Status)
	}
	content, err := io.ReadAll(io.LimitReader(resp.Body, MaxURLSize+1))
	if err != nil {
		return nil, err
	}
	if len(content) > MaxURLSize {
		return nil, fmt.Errorf("larger than %d bytes", MaxURLSize)
	}
	return content, nil
}
