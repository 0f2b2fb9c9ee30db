// Package main provides the hioload-arrays exercise CLI.
//
// Usage:
//
//	hioload-arrays [flags] <command>
//
// Commands:
//
//	stress - allocate buffers and typed views, verifying accounting
//	stats  - run a short exercise and dump allocator/pool stats as YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/momentics/hioload-arrays/api"
	"github.com/momentics/hioload-arrays/arrays"
	"github.com/momentics/hioload-arrays/core/view"
)

var (
	flagConfig  string
	flagDebug   bool
	flagBuffers int
	flagSize    int
)

func main() {
	root := &cobra.Command{
		Use:           "hioload-arrays",
		Short:         "Exercise and inspect the hioload-arrays allocator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "development logging")

	stress := &cobra.Command{
		Use:   "stress",
		Short: "Allocate buffers and views, verify accounting returns to zero",
		RunE:  runStress,
	}
	stress.Flags().IntVar(&flagBuffers, "buffers", 1000, "buffers to allocate")
	stress.Flags().IntVar(&flagSize, "size", 64*1024, "bytes per buffer")

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Run a short exercise and dump stats as YAML",
		RunE:  runStats,
	}

	root.AddCommand(stress, stats)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadFacade() (*arrays.Arrays, error) {
	cfg := arrays.DefaultConfig()
	if flagConfig != "" {
		var err error
		if cfg, err = arrays.LoadConfig(flagConfig); err != nil {
			return nil, err
		}
	}
	cfg.Debug = cfg.Debug || flagDebug
	return arrays.New(cfg)
}

func runStress(cmd *cobra.Command, _ []string) error {
	x, err := loadFacade()
	if err != nil {
		return err
	}

	for i := 0; i < flagBuffers; i++ {
		b, err := x.ArrayBuffer(flagSize)
		if err != nil {
			return fmt.Errorf("buffer %d: %w", i, err)
		}
		v, err := x.Float64Array(b)
		if err != nil {
			return fmt.Errorf("view %d: %w", i, err)
		}
		for j := 0; j < v.Len(); j += 512 {
			v.SetIndex(j, float64(j))
		}
		v.Release()
		b.Release()
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"allocated and reclaimed %d buffers of %d bytes, external bytes now %d\n",
		flagBuffers, flagSize, x.ExternalBytes())
	if n := x.ExternalBytes(); n != 0 {
		return fmt.Errorf("accounting leak: %d bytes still attributed", n)
	}
	return nil
}

func runStats(cmd *cobra.Command, _ []string) error {
	x, err := loadFacade()
	if err != nil {
		return err
	}

	// A small mixed workload so the counters have something to say.
	b, err := x.ArrayBuffer(4096)
	if err != nil {
		return err
	}
	for _, ctor := range []func(...any) (api.View, error){
		x.Int8Array, x.Uint16Array, x.Int32Array, x.Float64Array,
	} {
		v, err := ctor(b)
		if err != nil {
			return err
		}
		v.Release()
	}
	if _, err := x.Factory().New(api.Float32, view.Length(1024)); err != nil {
		return err
	}

	out, err := x.Control().YAML()
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
