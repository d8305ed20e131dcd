/*
 * Athena - UCI chess engine in GO
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package uci

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/4iy4/athena/internal/config"
)

// New creates a handler on stdin and stdout.
func New() *Handler {
	return NewWithIO(os.Stdin, os.Stdout)
}

// option is one entry of the UCI option table. The apply func is
// called with the raw value string and validates it itself.
type option struct {
	name     string
	kind     string // "check" or "spin"
	def      string
	min, max int
	apply    func(h *Handler, value string)
}

type optionSet struct {
	h    *Handler
	list []option
}

func newOptions(h *Handler) *optionSet {
	return &optionSet{
		h: h,
		list: []option{
			{
				name: "Hash", kind: "spin",
				def: strconv.Itoa(config.Current.Engine.HashMB), min: 64, max: 32768,
				apply: func(h *Handler, v string) {
					mb, err := strconv.Atoi(v)
					if err != nil || mb < 64 || mb > 32768 {
						h.info("invalid Hash value " + v)
						return
					}
					config.Current.Engine.HashMB = mb
					h.search.ResizeTable(mb)
				},
			},
			{
				name: "Ponder", kind: "check", def: "false",
				apply: func(h *Handler, v string) {
					b, err := strconv.ParseBool(v)
					if err != nil {
						h.info("invalid Ponder value " + v)
						return
					}
					config.Current.Engine.Ponder = b
				},
			},
			{
				name: "UCI_AnalyseMode", kind: "check", def: "false",
				apply: func(h *Handler, v string) {
					b, err := strconv.ParseBool(v)
					if err != nil {
						h.info("invalid UCI_AnalyseMode value " + v)
						return
					}
					config.Current.Engine.AnalyseMode = b
				},
			},
		},
	}
}

// describe returns the option announcements of the uci handshake.
func (o *optionSet) describe() []string {
	var lines []string
	for _, opt := range o.list {
		line := fmt.Sprintf("option name %s type %s default %s", opt.name, opt.kind, opt.def)
		if opt.kind == "spin" {
			line += fmt.Sprintf(" min %d max %d", opt.min, opt.max)
		}
		lines = append(lines, line)
	}
	return lines
}

// set handles the tail of a "setoption name <name> [value <v>]"
// command. Unknown options are reported and ignored.
func (o *optionSet) set(tokens []string) {
	if len(tokens) < 2 || tokens[0] != "name" {
		o.h.info("setoption needs a name")
		return
	}
	var name, value string
	i := 1
	for ; i < len(tokens) && tokens[i] != "value"; i++ {
		if name != "" {
			name += " "
		}
		name += tokens[i]
	}
	if i < len(tokens) && tokens[i] == "value" {
		value = strings.Join(tokens[i+1:], " ")
	}

	for _, opt := range o.list {
		if strings.EqualFold(opt.name, name) {
			opt.apply(o.h, value)
			return
		}
	}
	o.h.info("unknown option " + name)
}
