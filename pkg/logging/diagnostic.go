package logging

import "log/slog"

// NewDiagnosticLogger builds a structured logger backed by a RotatingFile at
// path, for components that want an optional, size-bounded record of
// internal degradations (a per-sentence fallback, a dropped role) without
// surfacing them as errors. Callers that don't want diagnostics simply never
// construct one; nothing in this package depends on a default instance.
func NewDiagnosticLogger(path string, opts ...Option) (*slog.Logger, *RotatingFile, error) {
	rf, err := NewRotatingFile(path, opts...)
	if err != nil {
		return nil, nil, err
	}
	return slog.New(slog.NewTextHandler(rf, &slog.HandlerOptions{Level: slog.LevelDebug})), rf, nil
}
