package cmd

import (
	adapterclock "github.com/guitarlab/fretboard/internal/adapters/clock"
	adapterstorage "github.com/guitarlab/fretboard/internal/adapters/storage"
	"github.com/guitarlab/fretboard/internal/logging"
	"github.com/guitarlab/fretboard/internal/ports"
	"github.com/guitarlab/fretboard/internal/services"
)

// Container holds the dependencies shared by commands.
// The history database is opened on first use so drills with history
// disabled and the settings command never touch it.
type Container struct {
	clock       ports.Clock
	historyPath string

	// Internal - for cleanup only
	practiceRepo ports.PracticeRepository
}

// NewContainer creates a new Container storing history at historyPath
func NewContainer(historyPath string) *Container {
	return &Container{
		clock:       adapterclock.System{},
		historyPath: historyPath,
	}
}

// PracticeRepository opens the history database once and returns it
func (c *Container) PracticeRepository() (ports.PracticeRepository, error) {
	if c.practiceRepo != nil {
		return c.practiceRepo, nil
	}

	repo, err := adapterstorage.NewSQLiteRepository(c.historyPath)
	if err != nil {
		return nil, err
	}
	c.practiceRepo = repo
	return repo, nil
}

// NewDrillService wires a DrillService. history may be nil.
func (c *Container) NewDrillService(
	display ports.Display,
	clicks ports.ClickPlayer,
	history ports.PracticeWriter,
) *services.DrillService {
	return services.NewDrillService(services.NewPromptChooser(nil), display, clicks, c.clock, history)
}

// HistoryService wires a HistoryService on top of the history database
func (c *Container) HistoryService() (*services.HistoryService, error) {
	repo, err := c.PracticeRepository()
	if err != nil {
		return nil, err
	}
	return services.NewHistoryService(repo), nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.practiceRepo == nil {
		return nil
	}
	logging.Logger.Debug("Closing history database")
	return c.practiceRepo.Close()
}
