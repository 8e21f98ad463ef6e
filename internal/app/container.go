package app

import (
	"context"

	"github.com/doeshing/keyclip-go/internal/domain"
	"github.com/doeshing/keyclip-go/internal/infrastructure/config"
	"github.com/doeshing/keyclip-go/internal/infrastructure/store"
	"github.com/doeshing/keyclip-go/internal/pkg/filesystem"
	"github.com/doeshing/keyclip-go/internal/pkg/logger"
	"github.com/doeshing/keyclip-go/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config       domain.Config
	ConfigLoader *config.FileLoader
	Clipboard    ports.Clipboard
	Sleeper      ports.Sleeper
	Logger       ports.Logger
}

// BuildContainer constructs the dependency graph. The entry store is opened
// per command via OpenStore, after flag parsing has settled the database path.
func BuildContainer(ctx context.Context, verbose bool, clipboard ports.Clipboard, sleeper ports.Sleeper) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:       cfg,
		ConfigLoader: cfgLoader,
		Clipboard:    clipboard,
		Sleeper:      sleeper,
		Logger:       logger.NewStd(verbose),
	}, nil
}

// OpenStore opens the credential store, preferring the --database flag value
// over the configured path. Callers own the returned store and must Close it.
func (c *Container) OpenStore(pathOverride string) (ports.EntryStore, error) {
	path := c.Config.Database.Path
	if pathOverride != "" {
		path = filesystem.ExpandHome(pathOverride)
	}
	return store.Open(path)
}
