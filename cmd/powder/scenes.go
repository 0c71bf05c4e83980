package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"powder/internal/sims/powder"
)

var sceneDescriptions = map[string]string{
	powder.SceneEmpty:   "all cells empty",
	powder.SceneFloor:   "stone floor along the bottom row",
	powder.SceneBasin:   "floor with stone side walls",
	powder.SceneFunnel:  "stone V narrowing to a gap, over a floor",
	powder.SceneSandbox: "basin holding a sand heap and a water pool",
}

var scenesCmd = &cobra.Command{
	Use:   "scenes",
	Short: "List built-in scenes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		names := powder.SceneNames()
		maxLen := 5 // "Scene" header
		for _, name := range names {
			if len(name) > maxLen {
				maxLen = len(name)
			}
		}
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "Scene", "Description")
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, "-----", "-----------")
		for _, name := range names {
			fmt.Fprintf(out, "  %-*s  %s\n", maxLen, name, sceneDescriptions[name])
		}
	},
}
