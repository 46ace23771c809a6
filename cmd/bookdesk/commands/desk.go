package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bookdesk/internal/config"
	"bookdesk/internal/domain"
	"bookdesk/internal/eventbus"
	"bookdesk/internal/logic"
	"bookdesk/internal/ui"
)

func runDesk(ctx context.Context, bookingsPath string) error {
	bus := eventbus.New()
	defer bus.Close()

	cfg, closeLog := loadConfig(bus)
	defer func() { closeLog() }()

	if bookingsPath == "" {
		bookingsPath = cfg.BookingsFile
	}
	bookings, err := logic.LoadBookings(bookingsPath, time.Now())
	if err != nil {
		return err
	}
	store := logic.NewMemoryBookingStore(bookings...)

	// Handle interrupt signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	model := ui.NewModel(cfg, store, bus)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	// Forward bus events the UI cares about
	eventChan := make(chan domain.DomainEvent, 100)
	forward := func(e domain.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	unsubscribe := []func(){
		bus.Subscribe(domain.EventError, forward),
		bus.Subscribe(domain.EventBookingsLoaded, forward),
	}
	defer func() {
		for _, u := range unsubscribe {
			u()
		}
	}()

	go func() {
		for {
			select {
			case event := <-eventChan:
				p.Send(ui.EventMsg{Event: event})
			case <-ctx.Done():
				return
			}
		}
	}()

	bus.Publish(domain.BookingsLoadedEvent{Source: bookingsPath, Count: len(bookings)})

	log.Printf("Starting UI with %d booking(s)", len(bookings))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		return fmt.Errorf("error running program: %w", err)
	}
	log.Printf("UI exited normally")
	return nil
}

// loadConfig redirects the log before reading the config so nothing reaches
// the terminal, then follows log_file from the config unless --log was given.
func loadConfig(bus eventbus.EventBus) (*config.Config, func()) {
	initial := firstNonEmpty(logPath, config.DefaultConfig().LogFile)
	closeLog := setupLogging(initial)

	cfg, err := config.NewConfigServiceWithBus(bus).LoadFromPath(configPath)
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	if logPath == "" && cfg.LogFile != "" && cfg.LogFile != initial {
		log.Printf("Switching log to %s", cfg.LogFile)
		closeLog()
		closeLog = setupLogging(cfg.LogFile)
	}
	return cfg, closeLog
}

// setupLogging points the std logger at path and returns a closer
func setupLogging(path string) func() {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() { _ = logFile.Close() }
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
