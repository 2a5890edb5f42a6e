// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package netstring decodes netstrings: a decimal length, a colon, that
// many bytes of payload, and a trailing comma, as in "5:hello,".
package netstring

import (
	"strconv"

	"code.hybscloud.com/kombi"
	"code.hybscloud.com/kombi/leaf"
)

// length matches a netstring length; leading zeros are not allowed.
func length() kombi.Parser[byte, int] {
	return kombi.Map(leaf.Regex(`0|[1-9][0-9]*`), func(s string) int {
		n, err := strconv.Atoi(s)
		if err != nil {
			// Only overflow can fail here; no payload can be that long.
			return -1
		}
		return n
	})
}

// Netstring matches one netstring and returns its payload.
// A max greater than zero rejects payloads longer than max bytes before
// any of them is consumed.
func Netstring(max int) kombi.Parser[byte, string] {
	colon := leaf.Char(':')
	comma := leaf.Char(',')
	return kombi.Contextual(func() kombi.Generator[byte, string] {
		var payload string
		return kombi.Steps(
			func(kombi.Erased) kombi.Step[byte, string] {
				return kombi.Yield[string](length())
			},
			func(prev kombi.Erased) kombi.Step[byte, string] {
				n := prev.(int)
				switch {
				case n < 0:
					return kombi.Yield[string](kombi.Reject[byte, string]("length out of range"))
				case max > 0 && n > max:
					return kombi.Yield[string](kombi.Reject[byte, string](
						"payload of " + strconv.Itoa(n) + " bytes exceeds limit of " + strconv.Itoa(max)))
				}
				return kombi.Yield[string](kombi.Then(colon, leaf.Take(n)))
			},
			func(prev kombi.Erased) kombi.Step[byte, string] {
				payload = prev.(string)
				return kombi.Yield[string](comma)
			},
			func(kombi.Erased) kombi.Step[byte, string] {
				return kombi.Done[byte](payload)
			},
		)
	})
}

// List matches zero or more consecutive netstrings.
func List(max int) kombi.Parser[byte, []string] {
	return kombi.Many(Netstring(max))
}

// Decode decodes data, which must consist only of netstrings.
// A malformed entry is reported with the error of that entry.
func Decode(data []byte, max int) ([]string, error) {
	final := kombi.RunState(List(max), kombi.NewState(data))
	if final.AtEnd() {
		return final.Result(), nil
	}
	// List stopped early: rerun the entry it stopped at for its error.
	bad := kombi.RunState(Netstring(max), final.Erase())
	if bad.IsError() {
		return nil, bad.Err()
	}
	return nil, kombi.NewError("netstring", final.Index(), "trailing data")
}

// Encode renders payloads as consecutive netstrings.
func Encode(payloads ...string) []byte {
	var out []byte
	for _, p := range payloads {
		out = strconv.AppendInt(out, int64(len(p)), 10)
		out = append(out, ':')
		out = append(out, p...)
		out = append(out, ',')
	}
	return out
}
