// SPDX-License-Identifier: MIT

package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/basketsplit/basket"
	"github.com/katalvlaran/basketsplit/internal/httpapi"
	"github.com/katalvlaran/basketsplit/internal/metrics"
	"github.com/katalvlaran/basketsplit/setcover"
)

type serveOptions struct {
	addr     string
	maxNodes int
}

func newServeCmd(g *globalOptions) *cobra.Command {
	o := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve basket splits over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, g, o)
		},
	}

	cmd.Flags().StringVar(&o.addr, "addr", "", "listen address (default $"+EnvAddr+" or "+defaultAddr+")")
	cmd.Flags().IntVar(&o.maxNodes, "max-nodes", 1_000_000, "per-request search node budget (0 = no limit)")

	return cmd
}

func runServe(cmd *cobra.Command, g *globalOptions, o *serveOptions) error {
	addr := o.addr
	if addr == "" {
		addr = os.Getenv(EnvAddr)
	}
	if addr == "" {
		addr = defaultAddr
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	var search []setcover.Option
	if o.maxNodes > 0 {
		search = append(search, setcover.WithMaxNodes(o.maxNodes))
	}
	splitter, err := basket.NewSplitter(g.configPath(),
		basket.WithLogger(g.logger),
		basket.WithRecorder(metrics.NewRecorder(reg)),
		basket.WithSearchOptions(search...),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpapi.New(splitter,
		httpapi.WithLogger(g.logger),
		httpapi.WithGatherer(reg),
	)

	return srv.ListenAndServe(ctx, addr)
}
