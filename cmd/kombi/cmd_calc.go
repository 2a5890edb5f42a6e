// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/kombi"
	"code.hybscloud.com/kombi/grammars/arith"
	"code.hybscloud.com/kombi/trace"
)

func newCalcCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "calc <expr>...",
		Short: "Evaluate integer arithmetic expressions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := arith.Grammar(trace.Named("arith", opts.trace))

			// Parsers hold no run state; all workers share g.
			values := make([]int, len(args))
			errs := make([]error, len(args))
			var eg errgroup.Group
			eg.SetLimit(runtime.GOMAXPROCS(0))
			for i, src := range args {
				eg.Go(func() error {
					values[i], errs[i] = calc(g, src)
					return nil
				})
			}
			// Workers report into errs so every failure is kept; Wait only joins.
			_ = eg.Wait()

			var result *multierror.Error
			for i, src := range args {
				if errs[i] != nil {
					result = multierror.Append(result, errs[i])
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %d\n", src, values[i])
			}
			return result.ErrorOrNil()
		},
	}
}

func calc(g kombi.Parser[byte, *arith.Node], src string) (int, error) {
	n, err := arith.ParseWith(g, src)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %q", src)
	}
	log.Debugf("parsed %q as %s", src, n)
	v, err := arith.Eval(n)
	if err != nil {
		return 0, errors.Wrapf(err, "eval %q", src)
	}
	return v, nil
}
