// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/basketsplit/basket"
	"github.com/katalvlaran/basketsplit/setcover"
)

type splitOptions struct {
	products []string
	timeout  time.Duration
	maxNodes int
}

func newSplitCmd(g *globalOptions) *cobra.Command {
	o := &splitOptions{}
	cmd := &cobra.Command{
		Use:   "split [basket.json]",
		Short: "Split a basket into delivery groups",
		Long: `Split reads a basket, a JSON array of product names, from the given file
("-" for stdin) and/or from repeated --product flags, and prints the delivery
groups that serve it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, g, o, args)
		},
	}

	cmd.Flags().StringArrayVarP(&o.products, "product", "p", nil, "product name (repeatable)")
	cmd.Flags().DurationVar(&o.timeout, "timeout", 0, "abort the search after this duration (0 = no limit)")
	cmd.Flags().IntVar(&o.maxNodes, "max-nodes", 0, "abort the search after this many nodes (0 = no limit)")

	return cmd
}

func runSplit(cmd *cobra.Command, g *globalOptions, o *splitOptions, args []string) error {
	if o.maxNodes < 0 {
		return fmt.Errorf("--max-nodes must not be negative")
	}
	if o.timeout < 0 {
		return fmt.Errorf("--timeout must not be negative")
	}

	// 1. Collect the basket.
	var products []string
	if len(args) == 1 {
		var err error
		if products, err = readBasket(cmd.InOrStdin(), args[0]); err != nil {
			return err
		}
	}
	products = append(products, o.products...)
	if len(args) == 0 && len(o.products) == 0 {
		return fmt.Errorf("no basket given: pass a basket file or --product")
	}

	// 2. Build the splitter.
	path := g.configPath()
	splitter, err := basket.NewSplitter(path,
		basket.WithLogger(g.logger),
		basket.WithSearchOptions(
			setcover.WithMaxNodes(o.maxNodes),
			setcover.WithTimeLimit(o.timeout),
		),
	)
	if err != nil {
		return err
	}
	g.logger.Debug("configuration loaded", "path", path, "groups", len(splitter.Config().Groups))

	// 3. Split and report.
	groups, err := splitter.SplitContext(commandContext(cmd), products)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if g.jsonOutput {
		return printJSON(out, groups)
	}
	printGroups(out, groups)
	printSuccess(out, "%d products in %d delivery groups", len(products), len(groups))

	return nil
}

// readBasket decodes a JSON array of product names from path, or from stdin
// when path is "-".
func readBasket(stdin io.Reader, path string) ([]string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read basket: %w", err)
	}

	var products []string
	if err = json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("basket %s must be a JSON array of product names: %w", path, err)
	}

	return products, nil
}

// commandContext returns cmd's context, or a background one outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
