// Command tubedash reports on a YouTube channel from the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/google/uuid"

	"github.com/custodia-labs/tubedash/internal/adapters/driven/allowlist"
	"github.com/custodia-labs/tubedash/internal/adapters/driven/config/file"
	"github.com/custodia-labs/tubedash/internal/adapters/driven/exchange"
	"github.com/custodia-labs/tubedash/internal/adapters/driven/oauth"
	"github.com/custodia-labs/tubedash/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tubedash/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/tubedash/internal/adapters/driving/cli"
	"github.com/custodia-labs/tubedash/internal/connectors/youtube"
	"github.com/custodia-labs/tubedash/internal/core/domain"
	"github.com/custodia-labs/tubedash/internal/core/ports/driven"
	"github.com/custodia-labs/tubedash/internal/core/services"
	"github.com/custodia-labs/tubedash/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", domain.UserMessage(err))
		logger.Debug("error detail: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	settings := configStore.Settings()

	allowList, err := openAllowList(ctx, settings.AllowListPath)
	if err != nil {
		return err
	}

	var savedStore driven.SavedReportStore
	store, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		logger.Warn("saved reports will not persist: %v", err)
		savedStore = memory.NewSavedReportStore()
	} else {
		defer store.Close()
		savedStore = store
	}

	tokens := memory.NewTokenStore()
	authorizer := oauth.NewAuthorizer(settings.OAuth)
	fetcher := services.NewAuthenticatedFetcher(tokens, authorizer, youtube.NewExecutor())
	catalog := youtube.NewCatalog(fetcher, settings.API)

	session := services.NewSessionService(allowList, authorizer, tokens)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Session:      session,
		Analytics:    catalog,
		Reports:      services.NewReportService(catalog, exchange.NewClient(settings.API.ExchangeRateURL)),
		SavedReports: services.NewSavedReportService(savedStore, session, uuid.NewString),
		Config:       services.NewSettingsService(configStore),
		Settings:     settings,
	})
	return cli.Execute(ctx)
}

// openAllowList loads the allow-list and keeps it in sync with the file.
// It defaults to ~/.tubedash/allowlist.toml.
func openAllowList(ctx context.Context, path string) (*allowlist.File, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		path = filepath.Join(home, ".tubedash", "allowlist.toml")
	}

	list, err := allowlist.NewFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading allow-list: %w", err)
	}
	if err := list.Watch(ctx); err != nil {
		logger.Warn("allow-list changes need a restart: %v", err)
	}
	return list, nil
}
