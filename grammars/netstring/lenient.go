// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package netstring

import (
	"code.hybscloud.com/kombi"
	"code.hybscloud.com/kombi/leaf"
)

// Recovered is the result of a lenient decode.
type Recovered struct {
	// Payloads holds the payloads of the well-formed entries, in order.
	Payloads []string

	// Skipped holds the error of every malformed entry that was skipped.
	Skipped []*kombi.Error
}

type lenientPhase int

const (
	phaseStart lenientPhase = iota
	phaseEntry
	phaseResync
)

// Lenient matches netstrings until the end of input, skipping malformed
// entries. After a failure it resumes past the next comma; if there is none
// the rest of the input is dropped. Lenient never fails.
func Lenient(max int) kombi.Parser[byte, Recovered] {
	entry := Netstring(max)
	resync := leaf.Regex(`[^,]*,`)
	return kombi.StateContextual(func() kombi.StateGenerator[byte, Recovered] {
		var out Recovered
		var good kombi.State[byte, kombi.Erased]
		phase := phaseStart
		return kombi.StateGeneratorFunc[byte, Recovered](func(prev kombi.State[byte, kombi.Erased]) kombi.StateStep[byte, Recovered] {
			switch phase {
			case phaseStart:
				good = prev
			case phaseEntry:
				if prev.IsError() {
					out.Skipped = append(out.Skipped, prev.Err())
					phase = phaseResync
					return kombi.StateYieldFrom[Recovered](good, resync)
				}
				out.Payloads = append(out.Payloads, prev.Result().(string))
				good = prev
			case phaseResync:
				if prev.IsError() {
					return kombi.StateDone(kombi.Advance(good, len(good.Input()), out))
				}
				good = prev
			}
			if good.AtEnd() {
				return kombi.StateDone(kombi.ReplaceResult(good, out))
			}
			phase = phaseEntry
			return kombi.StateYieldFrom[Recovered](good, entry)
		})
	})
}
