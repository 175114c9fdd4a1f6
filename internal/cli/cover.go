// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/basketsplit/setcover"
)

// instance is a generic set cover problem read by the cover command.
type instance struct {
	Universe []string            `json:"universe" yaml:"universe"`
	Sets     map[string][]string `json:"sets" yaml:"sets"`
}

// coverOutput is the --json shape of the cover command.
type coverOutput struct {
	Cover []string `json:"cover"`
	Nodes int      `json:"nodes"`
}

func newCoverCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "cover <instance.json|instance.yaml>",
		Short: "Find a minimum set cover of a generic instance",
		Long: `Cover reads {"universe": [...], "sets": {"name": [...]}} as JSON or YAML and
prints a cover with as few sets as possible. Ties go to the
lexicographically smallest set names.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInstance(args[0])
			if err != nil {
				return err
			}

			solver := setcover.FromMap(in.Universe, in.Sets)
			res := solver.FindBestCover(setcover.Compose(
				setcover.BySize[string](),
				setcover.ByDescriptors[string](),
			))
			g.logger.Debug("cover search finished", "sets", len(in.Sets), "nodes", res.Nodes, "found", res.Found)
			if !res.Found {
				return fmt.Errorf("no cover exists: no set contains %q", solver.Uncoverable())
			}

			out := cmd.OutOrStdout()
			if g.jsonOutput {
				return printJSON(out, coverOutput{Cover: res.Cover, Nodes: res.Nodes})
			}
			for _, name := range res.Cover {
				_, _ = labelColor.Fprintln(out, name)
			}
			printSuccess(out, "%d of %d sets cover %d items", len(res.Cover), len(in.Sets), len(solver.Universe()))

			return nil
		},
	}
}

// readInstance decodes a YAML (.yaml, .yml) or JSON instance file.
func readInstance(path string) (*instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read instance: %w", err)
	}

	var in instance
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &in)
	default:
		err = json.Unmarshal(data, &in)
	}
	if err != nil {
		return nil, fmt.Errorf("decode instance %s: %w", path, err)
	}

	return &in, nil
}
