package cmd

import (
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/at"
	"github.com/hsiuhsiu/cfkit-go/pkg/cfkit/mactypes"
)

var unitsManufacturer string

var unitsCmd = &cobra.Command{
	Use:   "units [TYPE]",
	Short: "List audio components of a four char code type (default auou)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		desc := at.ComponentDesc{Type: at.TypeOutput}
		if len(args) == 1 {
			typ, err := mactypes.ParseFourCC(args[0])
			if err != nil {
				return fmt.Errorf("component type %q: %w", args[0], err)
			}
			desc.Type = typ
		}
		if unitsManufacturer != "" {
			m, err := mactypes.ParseFourCC(unitsManufacturer)
			if err != nil {
				return fmt.Errorf("manufacturer %q: %w", unitsManufacturer, err)
			}
			desc.Manufacturer = m
		}

		if err := at.Available(); err != nil {
			if errors.Is(err, at.ErrNotBuilt) {
				log.Warn("AudioToolbox is not part of this build")
				return nil
			}
			return err
		}
		comps := at.Components(desc)
		for _, c := range comps {
			name, err := c.Name()
			if err != nil {
				log.WithError(err).Warn("component without a name")
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		log.WithFields(log.Fields{"type": desc.Type.String(), "count": len(comps)}).Debug("components listed")
		return nil
	},
}

func init() {
	unitsCmd.Flags().StringVarP(&unitsManufacturer, "manufacturer", "m", "", "four char code manufacturer filter, e.g. appl")
}
