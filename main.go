// Generates the placeholder icon set for the ContextAware extension.
// Usage: go run . (writes public/icons/icon{16,32,48,128}.png)
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/ki3ani/ContextAware/icons"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
		NoColor:    true,
	}).With().Timestamp().Logger()

	if err := icons.Generate(icons.DefaultConfig(), logger); err != nil {
		logger.Fatal().Err(err).Msg("icon generation failed")
	}
}
