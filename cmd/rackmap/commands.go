package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/braunma/rackmap/pkg/loader"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <catalog>",
		Short: "Check a catalog for missing fields, dangling references and overlaps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			catalog, result, err := loadOne(cmd.Context(), args[0], logger)
			if err != nil {
				logger.Error("Failed to load catalog", err)
				return err
			}

			if err := loader.Validate(catalog); err != nil {
				logger.Error("Catalog is invalid", err)
				return err
			}

			issues := loader.CheckReferences(catalog)
			for _, issue := range issues {
				logger.Warning("%s", issue)
			}
			for _, o := range result.Overlaps {
				logger.Warning("power backup %s overlaps %s in rack %d", o.PowerBackup, o.Device, o.RackID)
			}

			if len(issues) == 0 && len(result.Overlaps) == 0 {
				logger.Success("Catalog is valid: %d racks, %d devices, %d cables",
					len(catalog.Racks), len(catalog.Devices()), len(catalog.Cables))
			} else {
				logger.Warning("Catalog is valid with %d warning(s)", len(issues)+len(result.Overlaps))
			}
			return nil
		},
	}
}

func newLanesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lanes <catalog> <cable-id>",
		Short: "List the cables sharing a cable's visual lane",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid cable id %q: %w", args[1], err)
			}

			_, result, err := loadOne(cmd.Context(), args[0], logger)
			if err != nil {
				logger.Error("Failed to load catalog", err)
				return err
			}

			lane := result.SameLane(id)
			if len(lane) == 0 {
				return fmt.Errorf("cable %d is not routed", id)
			}

			out := cmd.OutOrStdout()
			for _, c := range lane {
				fmt.Fprintf(out, "%d\t%s\t%s -> %s\t%s\tgroup=%s\toffset=%g\n",
					c.ID, c.Label, c.Origin, c.Destination, c.Color, c.Group, c.LaneOffset)
			}
			return nil
		},
	}
}
