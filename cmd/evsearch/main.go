// Command evsearch searches file names through the Everything service.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/custodia-labs/evsearch/internal/adapters/driving/cli"
	"github.com/custodia-labs/evsearch/internal/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version string

func main() {
	cli.SetVersion(version)
	cli.SetBuilder(func(interactive bool) (*cli.Services, error) {
		a, err := app.New(app.Options{Interactive: interactive})
		if err != nil {
			return nil, err
		}
		return &cli.Services{
			Search:    a.Search,
			Settings:  a.Settings,
			Installer: a.Installer,
			Inspector: a.Native,
			Watch:     a.Watch,
			Close:     a.Close,
		}, nil
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
