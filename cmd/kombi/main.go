// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command kombi runs the sample grammars of the kombi parser combinators.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("kombi")

type options struct {
	verbose int
	trace   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "kombi",
		Short:         "Parse input with the sample kombi grammars",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbosity := opts.verbose
			if opts.trace && verbosity < 2 {
				// Parser traces are logged at debug level.
				verbosity = 2
			}
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVar(&opts.trace, "trace", false, "log every grammar rule as it runs")

	rootCmd.AddCommand(newCalcCmd(&opts))
	rootCmd.AddCommand(newNetstringCmd(&opts))
	rootCmd.AddCommand(newListCmd(&opts))

	return rootCmd
}
