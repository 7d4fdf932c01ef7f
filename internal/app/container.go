package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"jarvis/internal/domain"
	"jarvis/internal/infrastructure/ai"
	"jarvis/internal/infrastructure/config"
	"jarvis/internal/infrastructure/contextsnap"
	"jarvis/internal/infrastructure/hardware"
	"jarvis/internal/infrastructure/intent"
	"jarvis/internal/infrastructure/language"
	"jarvis/internal/infrastructure/learning"
	"jarvis/internal/infrastructure/network"
	"jarvis/internal/infrastructure/security"
	systeminfra "jarvis/internal/infrastructure/system"
	"jarvis/internal/infrastructure/voice"
	"jarvis/internal/pkg/filesystem"
	"jarvis/internal/pkg/logger"
	"jarvis/internal/ports"
	"jarvis/internal/services"
)

// Container wires the assistant pipeline with its infrastructure
// adapters and owns the background monitor lifecycle.
type Container struct {
	Config    domain.Config
	Assistant *services.AssistantService
	Detector  ports.LanguageDetector
	Localizer ports.Localizer
	System    *systeminfra.Controller
	Hardware  *hardware.Controller
	Network   *network.Manager
	Security  *security.Manager
	Recorder  *learning.Recorder
	Voice     ports.VoiceEngine
	Logger    ports.Logger

	store    *learning.InteractionStore
	monitors []ports.Monitor
}

// BuildContainer constructs the dependency graph. The startup integrity
// check runs here; its failure aborts the build.
func BuildContainer(ctx context.Context) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)
	dataDir := filepath.Join(filesystem.JarvisDir(), "data")

	securityManager := security.NewManager(cfg.Security, dataDir,
		time.Duration(cfg.Monitors.SecuritySeconds)*time.Second, log)
	if err := securityManager.VerifyIntegrity(filesystem.JarvisDir(), dataDir); err != nil {
		return nil, err
	}

	detector := language.NewDetector(cfg.DefaultLanguage())
	translations, err := language.LoadTranslations()
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}

	store, err := learning.NewInteractionStore(dataDir, cfg.History.MaxRecords, cfg.History.RetainDays)
	if err != nil {
		return nil, fmt.Errorf("open interaction store: %w", err)
	}
	recorder := learning.NewRecorder(store, dataDir, cfg.Learning, cfg.History.RetainDays, detector, log)

	systemController := systeminfra.NewController(time.Duration(cfg.Monitors.SystemSeconds)*time.Second, log)
	hardwareController := hardware.NewController(time.Duration(cfg.Monitors.HardwareSeconds)*time.Second, log)
	networkManager := network.NewManager(time.Duration(cfg.Monitors.NetworkSeconds)*time.Second, log)

	assembler := contextsnap.NewAssembler(systemController, networkManager, recorder, detector)
	generator := ai.NewGenerator(cfg.AI, translations, log)

	assistant := &services.AssistantService{
		Detector:   detector,
		Localizer:  translations,
		Assembler:  assembler,
		Classifier: intent.NewClassifier(),
		Generator:  generator,
		System:     systemController,
		Hardware:   hardwareController,
		Recorder:   recorder,
		Logger:     log,
	}

	return &Container{
		Config:    cfg,
		Assistant: assistant,
		Detector:  detector,
		Localizer: translations,
		System:    systemController,
		Hardware:  hardwareController,
		Network:   networkManager,
		Security:  securityManager,
		Recorder:  recorder,
		Voice:     voice.NewNoopEngine(),
		Logger:    log,
		store:     store,
		monitors: []ports.Monitor{
			systemController,
			hardwareController,
			networkManager,
			securityManager,
			recorder,
		},
	}, nil
}

// Start launches every background monitor loop.
func (c *Container) Start() {
	for _, m := range c.monitors {
		m.Start()
	}
	c.Logger.Info("background monitors started", map[string]interface{}{"count": len(c.monitors)})
}

// Stop joins the monitor loops with a bounded timeout each and closes
// the durable store. Safe to call once after Start.
func (c *Container) Stop() {
	for _, m := range c.monitors {
		m.Stop(domain.MonitorJoinTimeout)
	}
	if err := c.store.Close(); err != nil {
		c.Logger.Error("closing interaction store", err, nil)
	}
	c.Logger.Info("shutdown complete", nil)
}
