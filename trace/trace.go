// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package trace logs the progress of parsers.
//
// A traced parser logs at debug level when it is entered and when it
// returns, with the index, the outcome, and on failure the combinator trail
// of the error. Wrapping does not change what the parser does.
package trace

import (
	"strings"

	"github.com/tliron/commonlog"

	"code.hybscloud.com/kombi"
)

// Parser wraps p so that each invocation is logged to log under name.
func Parser[T, A any](log commonlog.Logger, name string, p kombi.Parser[T, A]) kombi.Parser[T, A] {
	return kombi.New(func(s kombi.State[T, kombi.Erased]) kombi.State[T, A] {
		if s.IsError() {
			return kombi.Recast[A](s)
		}
		if !log.AllowLevel(commonlog.Debug) {
			return p.Transform(s)
		}
		log.Debugf("%s: enter at %d", name, s.Index())
		out := p.Transform(s)
		if out.IsError() {
			err := out.Err()
			log.Debugf("%s: fail at %d: %s [%s]", name, err.Index, err.Message, strings.Join(err.Trail(), " > "))
			return out
		}
		log.Debugf("%s: match %d..%d: %v", name, s.Index(), out.Index(), out.Result())
		return out
	})
}

// Tracer wraps parsers with a shared logger.
type Tracer struct {
	log     commonlog.Logger
	enabled bool
}

// Named returns a Tracer logging to the "kombi.<name>" logger.
// A disabled Tracer returns parsers unwrapped.
func Named(name string, enabled bool) *Tracer {
	return &Tracer{log: commonlog.GetLogger("kombi." + name), enabled: enabled}
}

// Enabled reports whether the tracer wraps parsers.
func (t *Tracer) Enabled() bool { return t != nil && t.enabled }

// Wrap traces p under name when t is enabled. A nil Tracer is disabled.
func Wrap[T, A any](t *Tracer, name string, p kombi.Parser[T, A]) kombi.Parser[T, A] {
	if !t.Enabled() {
		return p
	}
	return Parser(t.log, name, p)
}
