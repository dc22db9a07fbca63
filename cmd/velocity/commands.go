package main

import (
	"fmt"

	"github.com/amp-labs/amp-tagged/numeric"
	"github.com/amp-labs/amp-tagged/velocity"
	"github.com/spf13/cobra"
)

func (a *app) convertCmd() *cobra.Command {
	var from string

	cmd := &cobra.Command{
		Use:   "convert [value]",
		Short: "Convert a speed from one unit to another",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !cmd.Flags().Changed("from") {
				names := make([]string, 0, len(velocity.Units))
				for _, u := range velocity.Units {
					names = append(names, u.String())
				}

				chosen, err := a.choose("Convert from", names...)
				if err != nil {
					return err
				}

				from = chosen
			}

			fromUnit, err := velocity.ParseUnit(from)
			if err != nil {
				return err
			}

			toUnit, err := a.targetUnit()
			if err != nil {
				return err
			}

			var value float64

			if len(args) == 0 {
				value, err = a.prompt(fmt.Sprintf("Speed in %s", fromUnit))
			} else {
				value, err = numeric.Parse[float64](args[0])
			}

			if err != nil {
				return err
			}

			speed := velocity.From(value, fromUnit)
			result := speed.In(toUnit)

			a.logger(cmd.Context(), cmd).Debug("converted speed",
				"value", value, "from", fromUnit, "to", toUnit, "mph", speed.MPH())

			return a.print(cmd.OutOrStdout(), result, toUnit)
		},
	}

	cmd.Flags().StringVar(&from, "from", velocity.MPH.String(), "unit of the given value (asked for when neither it nor a value is given)")

	return cmd
}

func (a *app) sumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum <value>:<unit>...",
		Short: "Add speeds given in any mix of units",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toUnit, err := a.targetUnit()
			if err != nil {
				return err
			}

			speeds := make([]velocity.Velocity[float64], 0, len(args))

			for _, arg := range args {
				speed, err := parseSpeed(arg)
				if err != nil {
					return err
				}

				speeds = append(speeds, speed)
			}

			total := velocity.Sum(speeds...)

			a.logger(cmd.Context(), cmd).Debug("summed speeds",
				"count", len(speeds), "mph", total.MPH())

			return a.print(cmd.OutOrStdout(), total.In(toUnit), toUnit)
		},
	}
}

func (a *app) unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the accepted units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, u := range velocity.Units {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), u); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
