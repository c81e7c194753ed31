package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/haglundm/taltext/internal/session"
	"github.com/haglundm/taltext/internal/summarizer"
	"github.com/haglundm/taltext/internal/transcriber"
)

// Process runs the full pipeline for one audio file.
func (p *implProcessor) Process(ctx context.Context, audioPath string) error {
	startTime := time.Now()
	baseName := filepath.Base(audioPath)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting audio processing: %s", audioPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Content hash for change detection
	hash, err := session.HashFile(audioPath)
	if err != nil {
		return fmt.Errorf("hash input: %w", err)
	}

	state := p.acquire(baseName, hash)
	if state == nil {
		p.logger.Info(ctx, "Skipping %s: already in flight or content unchanged (hash %s)", baseName, hash)
		return nil
	}
	defer p.release(baseName)

	// Step 2: Convert to mono compressed MP3
	convertedPath, err := p.convertAudio(ctx, audioPath)
	if err != nil {
		return fmt.Errorf("convert audio: %w", err)
	}
	defer p.cleanupTempFile(ctx, convertedPath)
	state.ConvertedPath = convertedPath

	// Step 3: Transcribe with estimated progress
	req := transcriber.Request{
		AudioPath:  convertedPath,
		OutputBase: baseName,
		Model:      p.cfg.Whisper.Model,
		Language:   p.cfg.Whisper.Language,
		OutputDir:  p.cfg.Paths.Output,
	}

	transcript, err := p.transcriber.Transcribe(ctx, req, p.progressReporter(ctx, baseName))
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}
	state.Transcript = transcript

	// Step 4: Summarize (never fails, every path resolves to a string)
	length, err := summarizer.ParseLength(p.cfg.Summary.Length)
	if err != nil {
		p.logger.Warn(ctx, "Invalid summary length in config: %v, using Medium", err)
	}
	state.Summary = p.summarizer.Summarize(ctx, transcript, length, p.cfg.APIKey())

	// Step 5: Persist text and Word documents
	if err := p.persist(ctx, baseName, state); err != nil {
		return fmt.Errorf("persist output: %w", err)
	}

	// Step 6: Archive the original
	if err := p.moveToArchived(ctx, audioPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive original: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed: %s (took %s)", baseName, time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

// acquire returns the session state for an input file with exclusive
// ownership, so at most one orchestration per session is in flight and the
// state's fields need no further locking. Returns nil when the file is
// already being processed, or when its content hash is unchanged since the
// last completed run. A changed hash invalidates the stored state in full.
func (p *implProcessor) acquire(name, hash string) *session.State {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.inflight[name] {
		return nil
	}

	state, ok := p.sessions[name]
	if !ok {
		state = &session.State{Hash: hash}
		p.sessions[name] = state
	} else if !state.Invalidate(hash) && state.Transcript != "" {
		return nil
	}

	p.inflight[name] = true
	return state
}

// release gives up exclusive ownership of an input file's session.
func (p *implProcessor) release(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inflight, name)
}

// progressReporter logs the estimated transcription progress. The terminal
// 1.0 always arrives, on both success and failure.
func (p *implProcessor) progressReporter(ctx context.Context, name string) func(float64) {
	return func(value float64) {
		if value >= 1.0 {
			p.logger.Info(ctx, "[%s] Transcription progress: 100%%", name)
			return
		}
		p.logger.Debug(ctx, "[%s] Transcription progress: %d%%", name, int(value*100))
	}
}

// persist writes {output}/{base}.txt with the transcript and, when a summary
// exists, a SUMMARY: section, plus a matching .docx document.
func (p *implProcessor) persist(ctx context.Context, baseName string, state *session.State) error {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	clean := strings.ToValidUTF8(state.Transcript, "�")

	var b strings.Builder
	b.WriteString(clean)
	if state.Summary != "" {
		b.WriteString("\n\nSUMMARY:\n")
		b.WriteString(state.Summary)
	}

	txtPath := filepath.Join(p.cfg.Paths.Output, baseName+".txt")
	if err := os.WriteFile(txtPath, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write text file: %w", err)
	}

	docxPath := filepath.Join(p.cfg.Paths.Output, baseName+".docx")
	if err := summarizer.WriteDocx(baseName, clean, state.Summary, docxPath); err != nil {
		return fmt.Errorf("write docx file: %w", err)
	}

	p.logger.Info(ctx, "Output written: %s, %s", txtPath, docxPath)
	return nil
}
