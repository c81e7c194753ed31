package processor

import (
	"sync"

	"github.com/haglundm/taltext/internal/config"
	"github.com/haglundm/taltext/internal/logger"
	"github.com/haglundm/taltext/internal/session"
	"github.com/haglundm/taltext/internal/summarizer"
	"github.com/haglundm/taltext/internal/transcriber"
	"github.com/haglundm/taltext/pkg/executor"
)

type implProcessor struct {
	cfg         *config.Config
	executor    executor.Executor
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	logger      logger.Logger

	mu       sync.Mutex
	sessions map[string]*session.State // keyed by input file name
	inflight map[string]bool
}

// New creates a Processor instance.
func New(cfg *config.Config, exec executor.Executor, tr transcriber.Transcriber, sum summarizer.Summarizer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		executor:    exec,
		transcriber: tr,
		summarizer:  sum,
		logger:      log,
		sessions:    make(map[string]*session.State),
		inflight:    make(map[string]bool),
	}
}
