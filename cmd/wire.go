package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	reportrender "github.com/fusionkit/fusion-cli/internal/adapters/render/report"
	statusrender "github.com/fusionkit/fusion-cli/internal/adapters/render/status"
	chainstore "github.com/fusionkit/fusion-cli/internal/adapters/repo/chain"
	ephemeralstore "github.com/fusionkit/fusion-cli/internal/adapters/repo/ephemeral"
	jsonstore "github.com/fusionkit/fusion-cli/internal/adapters/repo/jsonfile"
	"github.com/fusionkit/fusion-cli/internal/adapters/repo/patternfile"
	gitclient "github.com/fusionkit/fusion-cli/internal/adapters/vcs/git"
	"github.com/fusionkit/fusion-cli/internal/agents"
	"github.com/fusionkit/fusion-cli/internal/application"
	"github.com/fusionkit/fusion-cli/internal/config"
	"github.com/fusionkit/fusion-cli/internal/logging"
	"github.com/fusionkit/fusion-cli/internal/patterns"
	"github.com/fusionkit/fusion-cli/internal/ports"
	"github.com/fusionkit/fusion-cli/internal/tools"
)

const (
	stateDirName   = ".config/fusion"
	memoryFileName = "memory.json"
)

type app struct {
	cfg            config.Config
	logger         *zap.Logger
	service        *application.Service
	patternService *application.PatternService
	memoryService  *application.MemoryService
	pushService    *application.PushService
	statusRenderer func(application.Status, statusrender.RenderOptions) (string, error)
	renderReport   func(io.Writer, string) error
	now            func() time.Time
}

func wireApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(viper.New(), configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.DebugMode)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	if cfg.Path == "" {
		logger.Info("no .fusion.json found, using defaults")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	memoryStore, err := jsonstore.NewStore(filepath.Join(homeDir, stateDirName, memoryFileName))
	if err != nil {
		return nil, fmt.Errorf("wire memory store: %w", err)
	}
	contextRepo := chainstore.NewStore(memoryStore, ephemeralstore.NewStore())

	patternRepo, err := patternfile.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire pattern repository: %w", err)
	}

	clock := ports.SystemClock{}

	agentRegistry := agents.NewRegistry(logger, cfg.EnabledAgents)
	toolRegistry := tools.NewRegistry(cfg.ToolsEnabled)
	patternRegistry := patterns.NewRegistry(clock, logger)

	custom, err := patternRepo.List(ctx)
	if err != nil {
		logger.Warn("load custom patterns failed, continuing with built-ins",
			zap.Error(err))
	}
	for _, entry := range custom {
		if _, err := agentRegistry.Get(entry.Agent); err != nil {
			logger.Warn("custom pattern targets unknown agent, skipping",
				zap.String("pattern", string(entry.Name)),
				zap.String("agent", string(entry.Agent)))
			continue
		}
		if err := patternRegistry.Register(entry); err != nil {
			logger.Warn("invalid custom pattern, skipping",
				zap.String("pattern", string(entry.Name)),
				zap.Error(err))
		}
	}

	store := application.NewContextStore(ctx, contextRepo, cfg.MemoryEnabled, logger)
	patternRegistry.SeedStats(store.Memory().PatternMemory)

	settings := application.Settings{
		Version:         cfg.Version,
		Entry:           cfg.Entry,
		ConfigPath:      cfg.Path,
		MaxPromptTokens: cfg.MaxPromptTokens,
		ToolsEnabled:    cfg.ToolsEnabled,
		GithubPush:      cfg.GithubPush,
		AsyncMode:       cfg.AsyncMode,
		MemoryEnabled:   cfg.MemoryEnabled,
		PatternFallback: cfg.PatternFallback,
		AutoCommit:      cfg.AutoCommit,
	}

	service := application.NewService(application.ServiceParams{
		Agents:   agentRegistry,
		Tools:    toolRegistry,
		Patterns: patternRegistry,
		Store:    store,
		Clock:    clock,
		Settings: settings,
		Logger:   logger,
	})

	promoter := patterns.NewPromoter(patternRegistry, patternRepo, clock, logger)

	return &app{
		cfg:            cfg,
		logger:         logger,
		service:        service,
		patternService: application.NewPatternService(patternRegistry, promoter, store, logger),
		memoryService:  application.NewMemoryService(store, memoryStore, patternRegistry, logger),
		pushService:    application.NewPushService(gitclient.NewClient(), clock, cfg.AutoCommit, cfg.GithubPush, logger),
		statusRenderer: statusrender.Render,
		renderReport:   reportrender.Markdown,
		now:            time.Now,
	}, nil
}
