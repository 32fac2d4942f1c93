package cmd

import (
	"fmt"

	"github.com/df07/go-ppm-raytracer/web/server"
	"github.com/urfave/cli"
)

// Serve renders over HTTP.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	port := ctx.Int("port")
	if port < 0 || port > 65535 {
		return fmt.Errorf("%w: port %d outside 0-65535", ErrInvalidFlag, port)
	}

	return server.NewServer(port, ctx.String("dir")).Start()
}
