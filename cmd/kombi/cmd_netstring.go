// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"code.hybscloud.com/kombi"
	"code.hybscloud.com/kombi/grammars/netstring"
	"code.hybscloud.com/kombi/trace"
)

func newNetstringCmd(opts *options) *cobra.Command {
	var file string
	var max int
	var lenient bool

	cmd := &cobra.Command{
		Use:   "netstring [input]",
		Short: "Decode netstrings and print their payloads",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(file, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if lenient {
				p := trace.Wrap(trace.Named("netstring", opts.trace), "lenient", netstring.Lenient(max))
				m, err := kombi.Run(p, data)
				if err != nil {
					return errors.Wrap(err, "decode")
				}
				for _, payload := range m.Value.Payloads {
					fmt.Fprintln(out, payload)
				}
				var skipped *multierror.Error
				for _, e := range m.Value.Skipped {
					skipped = multierror.Append(skipped, e)
				}
				if err := skipped.ErrorOrNil(); err != nil {
					log.Warningf("skipped %d malformed entries: %v", len(m.Value.Skipped), err)
				}
				return nil
			}

			payloads, err := netstring.Decode(data, max)
			if err != nil {
				return errors.Wrap(err, "decode")
			}
			for _, payload := range payloads {
				fmt.Fprintln(out, payload)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read input from file instead of the argument")
	cmd.Flags().IntVar(&max, "max", 0, "reject payloads longer than this many bytes (0 for no limit)")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "skip malformed entries instead of failing")

	return cmd
}

// readInput returns the contents of file, or the single argument.
func readInput(file string, args []string) ([]byte, error) {
	switch {
	case file != "" && len(args) > 0:
		return nil, errors.New("give either --file or an input argument, not both")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", file)
		}
		return data, nil
	case len(args) == 1:
		return []byte(args[0]), nil
	}
	return nil, errors.New("no input")
}
