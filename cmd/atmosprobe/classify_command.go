package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"atmosprobe/internal/media/atmos"
	"atmosprobe/internal/media/codec"
)

type classifyOutput struct {
	CodecName   string `json:"codec_name"`
	ProfileName string `json:"profile_name,omitempty"`
	atmos.Classification
}

func newClassifyCommand(ctx *commandContext) *cobra.Command {
	var codecFlag string
	var profileFlag string

	cmd := &cobra.Command{
		Use:         "classify",
		Short:       "Classify a codec identifier and profile without probing a file",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCodecArg(codecFlag)
			if err != nil {
				return err
			}
			profile := codec.ProfileUnknown
			if strings.TrimSpace(profileFlag) != "" {
				profile = codec.ParseProfile(id, profileFlag)
			}

			result := atmos.Classify(id, profile)
			output := classifyOutput{
				CodecName:      id.Name(),
				ProfileName:    profile.Name(id),
				Classification: result,
			}
			if ctx.jsonOutput() {
				return writeJSON(cmd, output)
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			rows := [][]string{
				{"Codec", fmt.Sprintf("%s (%d)", id.DisplayName(), int32(id))},
				{"Profile", profileDisplay(profile, id)},
				{"Family", result.Family.String()},
				{"Atmos capable", yesNo(result.Capable)},
				{"Atmos", presenceLabel(result.Presence, colorize)},
			}
			fmt.Fprintln(out, renderTable([]string{"Field", "Value"}, rows, nil, colorize))
			return nil
		},
	}

	cmd.Flags().StringVar(&codecFlag, "codec", "", "Codec name (eac3, truehd) or numeric identifier")
	cmd.Flags().StringVar(&profileFlag, "profile", "", "Profile name or number")
	_ = cmd.MarkFlagRequired("codec")
	return cmd
}

// parseCodecArg accepts a registered codec name or a decimal/hex identifier.
func parseCodecArg(value string) (codec.ID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return codec.None, errors.New("codec is required")
	}
	if id, ok := codec.Lookup(value); ok {
		return id, nil
	}
	n, err := strconv.ParseInt(value, 0, 32)
	if err != nil {
		return codec.None, fmt.Errorf("unknown codec %q (run 'atmosprobe codecs' for names)", value)
	}
	return codec.ID(n), nil
}

func profileDisplay(p codec.Profile, id codec.ID) string {
	name := p.Name(id)
	if p == codec.ProfileUnknown || name == strconv.Itoa(int(p)) {
		return name
	}
	return fmt.Sprintf("%s (%d)", name, int(p))
}
