package internal

import (
	"context"
	"fmt"
	"os"

	"github.com/benbjohnson/clock"

	"github.com/ormanli/interest-te/internal/app/interest"
	"github.com/ormanli/interest-te/internal/infra/logging"
	"github.com/ormanli/interest-te/internal/infra/transport/stdio"
	"github.com/ormanli/interest-te/internal/infra/transport/tcp"
)

// Run starts application with the passed configuration.
func Run(ctx context.Context, cfg interest.Config) error {
	logging.Setup(cfg)

	service := interest.NewValidationService(interest.NewComputeService())

	switch cfg.Transport {
	case "stdio":
		return stdio.NewTransport(cfg, service, clock.New(), os.Stdin, os.Stdout).Start(ctx)
	case "tcp":
		return tcp.NewTransport(cfg, service, clock.New()).Start(ctx)
	default:
		return fmt.Errorf("unknown transport %q", cfg.Transport)
	}
}
