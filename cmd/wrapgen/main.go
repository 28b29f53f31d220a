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

// Command wrapgen renders the generated wrapper files of the aarch64
// package from the operation catalogue.
//
//	go run ./cmd/wrapgen --out unaligned/aarch64
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		out     string
		arch    string
		only    string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:           "wrapgen",
		Short:         "Render generated unaligned load/store wrappers",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("creating logger: %w", err)
				}
				defer l.Sync() //nolint:errcheck
				SetLogger(l)
			}

			targets, err := selectTargets(arch, only)
			if err != nil {
				return err
			}
			written, err := Generate(cmd.Context(), out, targets)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrapgen: wrote %d files to %s\n", len(written), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", ".", "output directory")
	cmd.Flags().StringVar(&arch, "arch", "aarch64", "wrapper family to render")
	cmd.Flags().StringVar(&only, "targets", "", "comma-separated subset of targets (default all)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log progress")
	return cmd
}

func selectTargets(arch, only string) ([]Target, error) {
	if arch != "aarch64" {
		return nil, fmt.Errorf("wrapgen renders aarch64 only, got %q", arch)
	}
	if only == "" {
		return AllTargets(), nil
	}
	var targets []Target
	for name := range strings.SplitSeq(only, ",") {
		t, err := GetTarget(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}
