package configs

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

var ErrValueNotFound = errors.New("value not found")

// Loader reads CUE files lazily, validating each against the closed schema.
// Earlier files take precedence in lookups.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

type rootInfo struct {
	value cue.Value
	path  string
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() (ret []rootInfo, err error) {
			ctx := cuecontext.New()

			var schema cue.Value
			if schemaSrc != "" {
				schema = ctx.CompileString("close({" + schemaSrc + "})")
				if err := schema.Err(); err != nil {
					return nil, fmt.Errorf("compile schema: %w", err)
				}
			}

			for _, filePath := range filePaths {
				content, err := os.ReadFile(filePath)
				if err != nil {
					return nil, err
				}

				value := ctx.CompileBytes(
					content,
					cue.Filename(filePath),
				)
				if err := value.Err(); err != nil {
					return nil, err
				}

				if schema.Exists() {
					if err := schema.Unify(value).Validate(); err != nil {
						return nil, fmt.Errorf("%s: %w", filePath, err)
					}
				}

				ret = append(ret, rootInfo{
					value: value,
					path:  filePath,
				})
			}

			return
		}),
	}
}

func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}

		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if value.Exists() && value.Err() == nil {
				if !yield(&value, nil) {
					break
				}
			}
		}
	}
}

func (l Loader) AssignFirst(path string, target any) error {
	for value, err := range l.IterCueValues(path) {
		if err != nil {
			return err
		}
		return value.Decode(target)
	}
	return ErrValueNotFound
}

// Paths returns the files that were loaded.
func (l Loader) Paths() ([]string, error) {
	roots, err := l.getRoots()
	if err != nil {
		return nil, err
	}
	ret := make([]string, 0, len(roots))
	for _, info := range roots {
		ret = append(ret, info.path)
	}
	return ret, nil
}
