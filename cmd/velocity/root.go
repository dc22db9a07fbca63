package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/amp-labs/amp-tagged/logger"
	"github.com/amp-labs/amp-tagged/numeric"
	"github.com/amp-labs/amp-tagged/velocity"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	errBadSpeed     = errors.New("speed must look like <value>:<unit>")
	errBadPrecision = errors.New("precision must be between 0 and 15")
	errBadLocale    = errors.New("invalid locale")
)

const maxPrecision = 15

type app struct {
	// log is configured from flags unless a logger was injected.
	log     *slog.Logger
	prompt  func(label string) (float64, error)
	choose  func(label string, choices ...string) (string, error)
	config  *viper.Viper
	printer *message.Printer
}

func newRootCmd(a *app) *cobra.Command {
	a.config = viper.New()
	a.config.SetEnvPrefix("VELOCITY")
	a.config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.config.AutomaticEnv()

	root := &cobra.Command{
		Use:               "velocity",
		Short:             "Convert and add speeds",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String("to", velocity.MPH.String(), "unit to print results in")
	flags.Int("precision", 4, "digits after the decimal point")
	flags.String("locale", "en", "BCP 47 language tag used to format numbers")
	flags.Bool("log-json", false, "log as JSON")
	flags.String("log-level", "warn", "minimum log level (debug, info, warn, error)")
	flags.Bool("quiet", false, "discard all log output")

	if err := a.config.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(a.convertCmd(), a.sumCmd(), a.unitsCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.log == nil {
		level, err := logger.ParseLevel(a.config.GetString("log-level"))
		if err != nil {
			return err
		}

		a.log = logger.ConfigureLoggingWithOptions(logger.Options{
			Subsystem: "velocity",
			JSON:      a.config.GetBool("log-json"),
			MinLevel:  level,
			Output:    cmd.ErrOrStderr(),
		})
	}

	tag, err := language.Parse(a.config.GetString("locale"))
	if err != nil {
		return fmt.Errorf("%w: %w", errBadLocale, err)
	}

	a.printer = message.NewPrinter(tag)

	if a.config.GetBool("quiet") {
		cmd.SetContext(logger.WithMuted(cmd.Context(), true))
	}

	if p := a.config.GetInt("precision"); p < 0 || p > maxPrecision {
		return fmt.Errorf("%w: %d", errBadPrecision, p)
	}

	return nil
}

func (a *app) logger(ctx context.Context, cmd *cobra.Command) *slog.Logger {
	return logger.Get(logger.With(ctx, "command", cmd.Name()), a.log)
}

func (a *app) targetUnit() (velocity.Unit, error) {
	return velocity.ParseUnit(a.config.GetString("to"))
}

// print writes value, already expressed in unit, in the configured locale.
func (a *app) print(out io.Writer, value float64, unit velocity.Unit) error {
	format := fmt.Sprintf("%%.%df %%s\n", a.config.GetInt("precision"))

	_, err := a.printer.Fprintf(out, format, value, unit)

	return err
}

// parseSpeed parses "<value>:<unit>", for example "10:mph".
func parseSpeed(s string) (velocity.Velocity[float64], error) {
	text, unitName, ok := strings.Cut(s, ":")
	if !ok {
		return velocity.Velocity[float64]{}, fmt.Errorf("%w: %q", errBadSpeed, s)
	}

	value, err := numeric.Parse[float64](strings.TrimSpace(text))
	if err != nil {
		return velocity.Velocity[float64]{}, err
	}

	unit, err := velocity.ParseUnit(unitName)
	if err != nil {
		return velocity.Velocity[float64]{}, err
	}

	return velocity.From(value, unit), nil
}
