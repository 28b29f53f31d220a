// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command cpuinfo prints the vector features this process detected, the
// move path the unaligned wrappers settled on, and which wrapper families
// run natively here.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-unaligned/internal/catalog"
	"github.com/ajroetker/go-unaligned/unaligned"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	keyStyle = lipgloss.NewStyle().Width(20)
	yesStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90"))
	noStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

var log = zap.NewNop()

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:           "cpuinfo",
		Short:         "Print detected vector features and the unaligned move path",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("creating logger: %w", err)
			}
			log = l
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printSummary(cmd.OutOrStdout())
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics")
	cmd.AddCommand(newOpsCmd())
	return cmd
}

func kv(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "%s%v\n", keyStyle.Render(key), value)
}

func yesNo(b bool) string {
	if b {
		return yesStyle.Render("yes")
	}
	return noStyle.Render("no")
}

func printSummary(w io.Writer) error {
	fmt.Fprintln(w, titleStyle.Render("go-unaligned cpuinfo"))
	kv(w, "GOOS", runtime.GOOS)
	kv(w, "GOARCH", runtime.GOARCH)
	kv(w, "NumCPU", runtime.NumCPU())
	fmt.Fprintln(w)

	kv(w, "Move path", unaligned.Level())
	kv(w, "UNALIGNED_NO_SIMD", yesNo(unaligned.NoSimdEnv()))
	fmt.Fprintln(w)

	fmt.Fprintln(w, titleStyle.Render("Wrapper families"))
	for _, f := range unaligned.Features {
		ops, err := catalog.Select("", f.String())
		if err != nil {
			return err
		}
		log.Debug("feature", zap.Stringer("feature", f), zap.Bool("detected", unaligned.Has(f)), zap.Int("ops", len(ops)))
		fmt.Fprintf(w, "%s%s %s\n", keyStyle.Render(f.String()), yesNo(unaligned.Has(f)),
			dimStyle.Render(fmt.Sprintf("(%d ops)", len(ops))))
	}

	switch runtime.GOARCH {
	case "amd64":
		fmt.Fprintln(w)
		printAMD64Features(w)
	case "arm64":
		fmt.Fprintln(w)
		printARM64Features(w)
	}
	return nil
}

func printAMD64Features(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("golang.org/x/sys/cpu.X86"))
	kv(w, "HasSSE2", yesNo(cpu.X86.HasSSE2))
	kv(w, "HasSSE41", yesNo(cpu.X86.HasSSE41))
	kv(w, "HasAVX", yesNo(cpu.X86.HasAVX))
	kv(w, "HasAVX2", yesNo(cpu.X86.HasAVX2))
	kv(w, "HasAVX512F", yesNo(cpu.X86.HasAVX512F))
	kv(w, "HasAVX512BW", yesNo(cpu.X86.HasAVX512BW))
	kv(w, "HasAVX512VL", yesNo(cpu.X86.HasAVX512VL))
}

func printARM64Features(w io.Writer) {
	fmt.Fprintln(w, titleStyle.Render("golang.org/x/sys/cpu.ARM64"))
	kv(w, "HasASIMD", yesNo(cpu.ARM64.HasASIMD))
	kv(w, "HasFP", yesNo(cpu.ARM64.HasFP))
	kv(w, "HasASIMDHP", yesNo(cpu.ARM64.HasASIMDHP))
	kv(w, "HasSVE", yesNo(cpu.ARM64.HasSVE))
}
