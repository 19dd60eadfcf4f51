package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"wipefile_enterprise/internal/config"
	"wipefile_enterprise/internal/logging"
	"wipefile_enterprise/internal/security"
	"wipefile_enterprise/internal/wipe"
)

// App represents the main application structure for Wails binding
type App struct {
	ctx          context.Context
	logger       *logging.EnterpriseLogger
	config       *config.Config
	orchestrator *wipe.Orchestrator

	mu      sync.Mutex
	running bool
}

// NewApp creates a new App instance
func NewApp() *App {
	cfg := config.Default()

	logger, err := logging.NewEnterpriseLogger(cfg, false)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	return &App{
		logger:       logger,
		config:       cfg,
		orchestrator: wipe.NewOrchestrator(nil, cfg.Wipe.MaxSpeedMBps, logger),
	}
}

// NewAppWithDependencies creates a new App instance with provided dependencies
func NewAppWithDependencies(logger *logging.EnterpriseLogger, cfg *config.Config) *App {
	return &App{
		ctx:          context.Background(),
		logger:       logger,
		config:       cfg,
		orchestrator: wipe.NewOrchestrator(nil, cfg.Wipe.MaxSpeedMBps, logger),
	}
}

// Startup is called when the app starts up
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	a.logger.Log("INFO", "Wails application started")
}

// BeforeClose is called when the application is about to quit.
// Returning true will cause the application to continue, false will continue shutdown as normal.
func (a *App) BeforeClose(ctx context.Context) (prevent bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.running {
		a.logger.Log("WARN", "Close requested while wipe is running")
		return true
	}
	return false
}

// Shutdown is called at application termination
func (a *App) Shutdown(ctx context.Context) {
	a.logger.Log("INFO", "Wails application shutdown")
}

// eventSink forwards progress events to the frontend over the Wails event
// bus. The bus marshals callbacks across the worker/window boundary, so the
// window never touches the outcome or file state directly.
type eventSink struct {
	ctx context.Context
}

func (s eventSink) Initialize(totalFiles int) {
	runtime.EventsEmit(s.ctx, "wipe:init", totalFiles)
}

func (s eventSink) Report(ev wipe.ProgressEvent) {
	runtime.EventsEmit(s.ctx, "wipe:progress", ev)
}

func (s eventSink) Complete() {
	runtime.EventsEmit(s.ctx, "wipe:complete")
}

// OutcomeDTO represents a wipe outcome for the frontend
type OutcomeDTO struct {
	Deleted   []string       `json:"deleted"`
	Failed    []wipe.Failure `json:"failed"`
	Succeeded bool           `json:"succeeded"`
}

// WipeTargets wipes the given targets and blocks until the run completes.
// Progress is emitted as wipe:init / wipe:progress / wipe:complete events.
func (a *App) WipeTargets(targets []string, passes int, recursive, force, dryRun bool) (*OutcomeDTO, error) {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return nil, fmt.Errorf("затирание уже выполняется")
	}
	a.running = true
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.running = false
		a.mu.Unlock()
	}()

	allowed, skipped := security.FilterTargets(a.config, targets)
	for _, target := range skipped {
		a.logger.Log("WARN", "Цель пропущена: защищённый путь", "target", target)
	}
	if len(allowed) == 0 {
		return nil, fmt.Errorf("все цели являются защищёнными путями")
	}

	req := wipe.NewWipeRequest(allowed, passes, recursive, force)
	req.DryRun = dryRun

	outcome := a.orchestrator.Run(req, eventSink{ctx: a.ctx})

	return &OutcomeDTO{
		Deleted:   outcome.Deleted,
		Failed:    outcome.Failed,
		Succeeded: outcome.Succeeded(),
	}, nil
}

// GetDefaultPasses returns the configured default pass count for the frontend
func (a *App) GetDefaultPasses() int {
	return a.config.Wipe.Passes
}
