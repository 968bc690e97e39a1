package config

import (
	"log/slog"
	"time"
	_ "time/tzdata"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Amarildopa/petshop-romeujulieta-sub005/pkg/usecase"
)

// DefaultTimezone is where the shop observes "today"
const DefaultTimezone = "America/Sao_Paulo"

// Clock holds the time zone used to decide the current calendar date
type Clock struct {
	Timezone string
}

// Flags returns CLI flags for Clock configuration
func (c *Clock) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "timezone",
			Usage:       "IANA time zone of the shop",
			Category:    "Clock",
			Value:       DefaultTimezone,
			Sources:     cli.EnvVars("PETSHOP_TIMEZONE"),
			Destination: &c.Timezone,
		},
	}
}

// Configure returns use case options for the configured zone
func (c *Clock) Configure() (*usecase.BathRecordConfig, error) {
	name := c.Timezone
	if name == "" {
		name = DefaultTimezone
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, goerr.Wrap(err, "unknown time zone", goerr.V("timezone", name))
	}

	return usecase.NewBathRecordConfig(usecase.WithLocation(loc)), nil
}

// LogValue returns structured log value
func (c Clock) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("timezone", c.Timezone),
	)
}
