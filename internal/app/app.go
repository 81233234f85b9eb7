package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/passbook-cli/passbook/internal/config"
	"github.com/passbook-cli/passbook/internal/ledger"
	"github.com/passbook-cli/passbook/internal/service"
	"github.com/passbook-cli/passbook/internal/store"
)

type App struct {
	Service *service.Service
	Store   store.Repository
}

// NewApp initializes the database and core services and returns the App
// entity with its cleanup function.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dbPathRaw := cfg.Database.Path

	if dbPathRaw == "" {
		appDir, _ := getAppDataDir()
		dbPathRaw = filepath.Join(appDir, "passbook.db")
	}

	dbStore, err := store.NewStore(dbPathRaw, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := seedLedgerState(dbStore, cfg); err != nil {
		dbStore.Close()
		return nil, nil, err
	}

	svc := service.NewService(dbStore)

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing DB: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Store:   dbStore,
	}, cleanup, nil
}

// seedLedgerState applies the config defaults to the shared ledger settings,
// but only while the ledger is still untouched. After the first account or
// receipt the persisted state wins.
func seedLedgerState(repo store.Repository, cfg *config.Config) error {
	state, err := repo.GetLedgerState()
	if err != nil {
		return err
	}
	if state.NextSequence > 0 {
		return nil
	}
	accounts, err := repo.GetAllAccounts()
	if err != nil {
		return err
	}
	if len(accounts) > 0 {
		return nil
	}

	state.InterestRate = cfg.Defaults.InterestRate
	if name := cfg.Defaults.TimeZone.Name; name != "" {
		tzCfg := cfg.Defaults.TimeZone
		if _, err := ledger.NewTimeZone(name, tzCfg.Hours, tzCfg.Minutes); err != nil {
			return fmt.Errorf("invalid defaults.timezone in config: %w", err)
		}
		state.TZName = name
		state.TZHours = tzCfg.Hours
		state.TZMinutes = tzCfg.Minutes
	}
	return repo.SaveLedgerState(*state)
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".passbook"), nil
	}

	return filepath.Join(configDir, "passbook"), nil
}
