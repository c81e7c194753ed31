package processor

import "context"

// Processor runs one audio file through the full pipeline:
// hash, convert, transcribe, summarize, persist, archive.
type Processor interface {
	Process(ctx context.Context, audioPath string) error
}
