package transcriber

import (
	"github.com/haglundm/taltext/internal/config"
	"github.com/haglundm/taltext/internal/logger"
	"github.com/haglundm/taltext/pkg/executor"
)

type implTranscriber struct {
	cfg      *config.Config
	engine   Engine
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Transcriber around the given engine.
func New(cfg *config.Config, engine Engine, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		engine:   engine,
		executor: exec,
		logger:   log,
	}
}
