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

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajroetker/go-unaligned/internal/catalog"
	"github.com/ajroetker/go-unaligned/unaligned"
)

func newOpsCmd() *cobra.Command {
	var arch, feature string
	cmd := &cobra.Command{
		Use:   "ops",
		Short: "List wrapped operations and whether their feature is present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ops, err := catalog.Select(arch, feature)
			if err != nil {
				return err
			}
			log.Debug("selected ops", zap.String("arch", arch), zap.String("feature", feature), zap.Int("count", len(ops)))
			printOps(cmd.OutOrStdout(), ops)
			return nil
		},
	}
	cmd.Flags().StringVar(&arch, "arch", "", "family: x86, aarch64 or wasm32 (default all)")
	cmd.Flags().StringVar(&feature, "feature", "", "feature name such as avx2 or neon (default all)")
	return cmd
}

const modulePath = "github.com/ajroetker/go-unaligned"

var nameCol = keyStyle.Width(24)

func printOps(w io.Writer, ops []catalog.Op) {
	for _, op := range ops {
		pkg := strings.TrimPrefix(op.Package(), modulePath+"/")
		fmt.Fprintf(w, "%s%s %s %s\n",
			nameCol.Render(op.GoName()),
			yesNo(unaligned.Has(op.Feature)),
			dimStyle.Render(op.Name),
			dimStyle.Render(fmt.Sprintf("[%s %s %s %s]", pkg, op.Direction, op.Kind, op.Class)))
	}
	fmt.Fprintf(w, "%d ops\n", len(ops))
}
