package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"atmosprobe/internal/media/atmos"
	"atmosprobe/internal/media/codec"
)

type codecRow struct {
	ID       int32  `json:"id"`
	Name     string `json:"name"`
	Display  string `json:"display"`
	Lossless bool   `json:"lossless"`
	Family   string `json:"family"`
	Atmos    bool   `json:"atmos_capable"`
}

func newCodecsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "codecs",
		Short:       "List the audio codecs atmosprobe recognises",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := codec.All()
			entries := make([]codecRow, 0, len(ids))
			for _, id := range ids {
				entries = append(entries, codecRow{
					ID:       int32(id),
					Name:     id.Name(),
					Display:  id.DisplayName(),
					Lossless: id.Lossless(),
					Family:   atmos.FamilyOf(id).String(),
					Atmos:    atmos.CanCarryAtmos(id),
				})
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					fmt.Sprintf("%d", e.ID),
					fmt.Sprintf("0x%05x", e.ID),
					e.Name,
					e.Display,
					yesNo(e.Lossless),
					yesNo(e.Atmos),
				})
			}
			out := cmd.OutOrStdout()
			headers := []string{"ID", "Hex", "Name", "Display", "Lossless", "Atmos capable"}
			aligns := []columnAlignment{alignRight, alignRight}
			fmt.Fprintln(out, renderTable(headers, rows, aligns, shouldColorize(out)))
			return nil
		},
	}
}
