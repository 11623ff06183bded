package cmd

import (
	"github.com/go-drift/docskit/internal/config"
	"github.com/go-drift/docskit/internal/site"
	"github.com/go-drift/docskit/pkg/datetime"
	"github.com/go-drift/docskit/pkg/storage"
	"github.com/go-drift/docskit/pkg/widgets"
)

// openSite resolves the configuration and opens its storage backend. The
// returned close function must be called when done.
func openSite() (*site.Site, *config.Resolved, func() error, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	backend, closeFn, err := cfg.OpenBackend()
	if err != nil {
		return nil, nil, nil, err
	}
	widgets.InstallErrorWidget(verbose)
	return newSite(cfg, backend), cfg, closeFn, nil
}

func newSite(cfg *config.Resolved, backend storage.Backend) *site.Site {
	return &site.Site{
		Name:    cfg.SiteName,
		Title:   cfg.SiteTitle,
		Backend: backend,
		Editor:  datetime.Editor{},
	}
}
