// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"code.hybscloud.com/kombi"
	"code.hybscloud.com/kombi/grammars/intlist"
	"code.hybscloud.com/kombi/leaf"
	"code.hybscloud.com/kombi/trace"
)

func newListCmd(opts *options) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "list [input]",
		Short: "Parse a bracketed integer list and print its sum",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(file, args)
			if err != nil {
				return err
			}
			p := trace.Wrap(trace.Named("intlist", opts.trace), "list", intlist.List())
			whole := kombi.Chain(p, func(xs []int) kombi.Parser[byte, []int] {
				return kombi.Map(leaf.EndOfInput(), func(kombi.Erased) []int { return xs })
			})
			m, err := kombi.Run(whole, data)
			if err != nil {
				return errors.Wrap(err, "parse list")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d items, sum %d\n", len(m.Value), intlist.Sum(m.Value))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read input from file instead of the argument")

	return cmd
}
