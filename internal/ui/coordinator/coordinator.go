package coordinator

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"hearsay/internal/config"
	"hearsay/internal/device"
	"hearsay/internal/discovery"
	"hearsay/internal/domain"
	"hearsay/internal/eventbus"
	"hearsay/internal/gesture"
	"hearsay/internal/haptic"
	"hearsay/internal/library"
	"hearsay/internal/logging"
	"hearsay/internal/transcribe"
	"hearsay/internal/ui"
)

// forwardedEvents lists the bus events delivered to the UI program. Command
// events consumed by the background services (ScanRequested, JobRequested)
// are not echoed back.
var forwardedEvents = []domain.EventType{
	domain.EventAudioFound,
	domain.EventAudioRemoved,
	domain.EventScanStarted,
	domain.EventScanCompleted,
	domain.EventJobQueued,
	domain.EventJobStarted,
	domain.EventJobProgressed,
	domain.EventJobCompleted,
	domain.EventJobFailed,
	domain.EventTranscriptAdded,
	domain.EventNotificationAdded,
	domain.EventNotificationsSeen,
	domain.EventDrawerOpened,
	domain.EventDrawerClosed,
	domain.EventPageSelected,
	domain.EventSwipeRecognized,
	domain.EventDeviceChanged,
	domain.EventError,
	domain.EventConfigSaved,
}

// Coordinator wires the background services to the UI program and bridges
// bus events into the Bubble Tea message loop.
type Coordinator struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.Service

	probe      *device.Probe
	recognizer *gesture.Recognizer
	haptics    *haptic.Notifier

	discovery  discovery.Service
	library    library.Store
	transcribe transcribe.Service

	model   *ui.Model
	program *tea.Program

	eventChan chan domain.DomainEvent
	unsubs    []func()

	log *logrus.Entry
}

// New builds the full service graph for one program run.
func New(cfg *config.Config, cfgSvc config.Service, bus eventbus.EventBus) (*Coordinator, error) {
	if err := os.MkdirAll(cfg.InboxDir, 0755); err != nil {
		return nil, err
	}

	lib, err := library.NewStore(cfg.OutputDir)
	if err != nil {
		return nil, err
	}

	c := &Coordinator{
		bus:       bus,
		config:    cfg,
		configSvc: cfgSvc,
		library:   lib,
		eventChan: make(chan domain.DomainEvent, 100),
		log:       logging.NewLogger("coordinator"),
	}

	c.probe = device.NewProbe(cfg.UI.Mouse)
	c.recognizer = gesture.NewRecognizer()
	c.haptics = haptic.New(haptic.Config{
		Bell:    cfg.UI.HapticsBell,
		Audible: cfg.UI.HapticsTone,
	})

	c.discovery = discovery.NewService(bus)
	c.transcribe = transcribe.NewService(bus, cfg.Engine, lib)

	c.model = ui.NewModel(bus, cfg, cfgSvc, lib, c.probe, c.recognizer, c.haptics)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	c.program = tea.NewProgram(c.model, opts...)
	c.model.SetProgram(c.program)

	return c, nil
}

// Program exposes the Bubble Tea program, mainly for tests.
func (c *Coordinator) Program() *tea.Program {
	return c.program
}

// Start subscribes the event bridge and kicks off the background services.
func (c *Coordinator) Start(ctx context.Context) error {
	for _, eventType := range forwardedEvents {
		c.unsubs = append(c.unsubs, c.bus.Subscribe(eventType, c.forwardEvent))
	}

	// Forward events to the program; Send blocks until the loop is running,
	// which is why this lives on its own goroutine.
	go func() {
		for event := range c.eventChan {
			c.program.Send(ui.EventMsg{Event: event})
		}
	}()

	return c.discovery.Start(ctx, c.config.InboxDir)
}

// Run blocks in the UI loop, then winds the services down.
func (c *Coordinator) Run() error {
	_, err := c.program.Run()
	c.Shutdown()
	return err
}

// Shutdown stops the background services and closes the event bridge.
func (c *Coordinator) Shutdown() {
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil

	c.discovery.Stop()
	c.transcribe.Stop()
	c.haptics.Close()
	close(c.eventChan)
}

func (c *Coordinator) forwardEvent(event domain.DomainEvent) {
	select {
	case c.eventChan <- event:
	default:
		c.log.Warn("Event channel full, dropping event")
	}
}
