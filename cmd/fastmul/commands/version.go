// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fastmul/internal/report"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		// No configuration needed.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			h := report.CurrentHost()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fastmul v%s\n", Version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "Host: %s/%s, %d cpus\n", h.OS, h.Arch, h.CPUs)
			if len(h.Features) > 0 {
				fmt.Fprintf(out, "CPU features: %s\n", strings.Join(h.Features, " "))
			}
		},
	}
}
