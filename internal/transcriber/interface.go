package transcriber

import (
	"context"

	"github.com/haglundm/taltext/internal/progress"
)

// Request describes one transcription run. Immutable once created.
type Request struct {
	AudioPath  string
	OutputBase string
	Model      string
	Language   string
	OutputDir  string
}

// Engine is the opaque speech-recognition backend. Infer blocks until the
// whole file is transcribed and may fail on model load or inference errors.
type Engine interface {
	Infer(ctx context.Context, audioPath, language string) (string, error)
}

// Transcriber runs a blocking transcription with an estimated progress
// signal and persists the resulting text.
type Transcriber interface {
	Transcribe(ctx context.Context, req Request, report progress.Reporter) (string, error)
}
