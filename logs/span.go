package logs

// Span identifies one program run in the logs.
type Span string

type ctxKey int

const (
	SpanKey ctxKey = iota + 1
)
