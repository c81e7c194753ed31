package processor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/haglundm/taltext/internal/config"
	"github.com/haglundm/taltext/internal/logger"
	"github.com/haglundm/taltext/internal/progress"
	"github.com/haglundm/taltext/internal/summarizer"
	"github.com/haglundm/taltext/internal/transcriber"
)

type fakeExecutor struct {
	output string
	err    error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.output, f.err
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	return f.output, f.err
}

type fakeTranscriber struct {
	text  string
	err   error
	calls int
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, req transcriber.Request, report progress.Reporter) (string, error) {
	f.calls++
	if report != nil {
		report(1.0)
	}
	return f.text, f.err
}

type fakeSummarizer struct {
	result string
}

func (f *fakeSummarizer) Summarize(ctx context.Context, text string, length summarizer.Length, apiKey string) string {
	return f.result
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		Whisper: config.WhisperConfig{
			BinaryPath: "./whisper-cli",
			ModelDir:   "models",
		},
		Paths: config.PathsConfig{
			Input:    filepath.Join(root, "input"),
			Output:   filepath.Join(root, "output"),
			Archived: filepath.Join(root, "archived"),
			Temp:     filepath.Join(root, "temp"),
		},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived, cfg.Paths.Temp} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}
	return cfg
}

func writeInput(t *testing.T, cfg *config.Config, name, content string) string {
	t.Helper()
	path := filepath.Join(cfg.Paths.Input, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProcessSuccess(t *testing.T) {
	cfg := testConfig(t)
	tr := &fakeTranscriber{text: "Det här är transkriptionen."}
	proc := New(cfg, &fakeExecutor{output: "60\n"}, tr, &fakeSummarizer{result: "Sammanfattningen."}, logger.New("error"))

	path := writeInput(t, cfg, "möte.mp3", "fake audio bytes")

	if err := proc.Process(context.Background(), path); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "möte.mp3.txt"))
	if err != nil {
		t.Fatalf("text output not written: %v", err)
	}

	text := string(data)
	if !strings.HasPrefix(text, "Det här är transkriptionen.") {
		t.Errorf("text output = %q, want transcript first", text)
	}
	if !strings.Contains(text, "\n\nSUMMARY:\nSammanfattningen.") {
		t.Errorf("text output = %q, missing SUMMARY section", text)
	}

	if _, err := os.Stat(filepath.Join(cfg.Paths.Output, "möte.mp3.docx")); err != nil {
		t.Errorf("docx output not written: %v", err)
	}

	// Original archived out of the watched directory.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("original file still present in input dir")
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.Archived, "möte.mp3")); err != nil {
		t.Errorf("original not archived: %v", err)
	}
}

func TestProcessNoSummarySection(t *testing.T) {
	cfg := testConfig(t)
	proc := New(cfg, &fakeExecutor{output: "60\n"}, &fakeTranscriber{text: "Text."}, &fakeSummarizer{result: ""}, logger.New("error"))

	path := writeInput(t, cfg, "kort.mp3", "tiny")

	if err := proc.Process(context.Background(), path); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Paths.Output, "kort.mp3.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "SUMMARY:") {
		t.Errorf("empty summary produced a SUMMARY section: %q", data)
	}
}

func TestProcessSkipsUnchangedContent(t *testing.T) {
	cfg := testConfig(t)
	tr := &fakeTranscriber{text: "Transkription."}
	proc := New(cfg, &fakeExecutor{output: "60\n"}, tr, &fakeSummarizer{result: "S."}, logger.New("error"))

	path := writeInput(t, cfg, "a.mp3", "same content")
	if err := proc.Process(context.Background(), path); err != nil {
		t.Fatal(err)
	}

	// The same file dropped again with identical bytes: the content hash is
	// unchanged, so the pipeline must not run again.
	path = writeInput(t, cfg, "a.mp3", "same content")
	if err := proc.Process(context.Background(), path); err != nil {
		t.Fatal(err)
	}

	if tr.calls != 1 {
		t.Errorf("transcriber called %d times, want 1", tr.calls)
	}
}

func TestProcessReprocessesChangedContent(t *testing.T) {
	cfg := testConfig(t)
	tr := &fakeTranscriber{text: "Transkription."}
	proc := New(cfg, &fakeExecutor{output: "60\n"}, tr, &fakeSummarizer{result: "S."}, logger.New("error"))

	path := writeInput(t, cfg, "a.mp3", "first recording")
	if err := proc.Process(context.Background(), path); err != nil {
		t.Fatal(err)
	}

	// Same name, new bytes: the hash change invalidates the stored session
	// and the pipeline runs again.
	path = writeInput(t, cfg, "a.mp3", "second recording")
	if err := proc.Process(context.Background(), path); err != nil {
		t.Fatal(err)
	}

	if tr.calls != 2 {
		t.Errorf("transcriber called %d times, want 2", tr.calls)
	}
}

// blockingTranscriber holds every Transcribe call until released, so tests
// can put two orchestrations in flight at the same time.
type blockingTranscriber struct {
	entered chan struct{}
	release chan struct{}
	mu      sync.Mutex
	calls   int
}

func (b *blockingTranscriber) Transcribe(ctx context.Context, req transcriber.Request, report progress.Reporter) (string, error) {
	b.mu.Lock()
	b.calls++
	b.mu.Unlock()
	b.entered <- struct{}{}
	<-b.release
	return "Transkription.", nil
}

func TestProcessConcurrentIdenticalContent(t *testing.T) {
	cfg := testConfig(t)
	bt := &blockingTranscriber{entered: make(chan struct{}, 2), release: make(chan struct{})}
	proc := New(cfg, &fakeExecutor{output: "60\n"}, bt, &fakeSummarizer{result: "S."}, logger.New("error"))

	// Two files with identical bytes: each gets its own session, so both
	// runs proceed without sharing mutable state.
	paths := []string{
		writeInput(t, cfg, "a.mp3", "identical bytes"),
		writeInput(t, cfg, "b.mp3", "identical bytes"),
	}

	var wg sync.WaitGroup
	errs := make([]error, len(paths))
	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			errs[i] = proc.Process(context.Background(), path)
		}(i, path)
	}

	// Both orchestrations in flight simultaneously.
	<-bt.entered
	<-bt.entered
	close(bt.release)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("Process(%s) error = %v", paths[i], err)
		}
	}
	if bt.calls != 2 {
		t.Errorf("transcriber called %d times, want 2", bt.calls)
	}
	for _, name := range []string{"a.mp3.txt", "b.mp3.txt"} {
		if _, err := os.Stat(filepath.Join(cfg.Paths.Output, name)); err != nil {
			t.Errorf("output %s not written: %v", name, err)
		}
	}
}

func TestProcessSameFileInFlightSkipped(t *testing.T) {
	cfg := testConfig(t)
	bt := &blockingTranscriber{entered: make(chan struct{}, 1), release: make(chan struct{})}
	proc := New(cfg, &fakeExecutor{output: "60\n"}, bt, &fakeSummarizer{result: "S."}, logger.New("error"))

	path := writeInput(t, cfg, "a.mp3", "bytes")

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- proc.Process(context.Background(), path)
	}()
	<-bt.entered

	// A second event for the same file while the first run is still in
	// flight must be skipped, not share the session.
	if err := proc.Process(context.Background(), path); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	close(bt.release)
	if err := <-firstDone; err != nil {
		t.Fatalf("first Process() error = %v", err)
	}

	if bt.calls != 1 {
		t.Errorf("transcriber called %d times, want 1", bt.calls)
	}
}

func TestProcessTranscriptionFailure(t *testing.T) {
	cfg := testConfig(t)
	proc := New(cfg, &fakeExecutor{output: "60\n"}, &fakeTranscriber{err: errors.New("inference failed")}, &fakeSummarizer{}, logger.New("error"))

	path := writeInput(t, cfg, "fel.mp3", "bytes")

	if err := proc.Process(context.Background(), path); err == nil {
		t.Fatal("Process() expected error")
	}

	// No output persisted, original stays for a re-trigger.
	if _, err := os.Stat(filepath.Join(cfg.Paths.Output, "fel.mp3.txt")); !os.IsNotExist(err) {
		t.Error("output written despite transcription failure")
	}
	if _, err := os.Stat(path); err != nil {
		t.Error("failed input was moved out of the input dir")
	}
}

func TestProcessConvertFailure(t *testing.T) {
	cfg := testConfig(t)
	proc := New(cfg, &fakeExecutor{err: errors.New("ffmpeg: no such codec")}, &fakeTranscriber{text: "x"}, &fakeSummarizer{}, logger.New("error"))

	path := writeInput(t, cfg, "trasig.mp3", "bytes")

	if err := proc.Process(context.Background(), path); err == nil {
		t.Fatal("Process() expected error for conversion failure")
	}
}
