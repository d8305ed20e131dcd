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

// Package config holds the engine settings: compiled in defaults,
// optionally overridden by a TOML file, finally overridden by command
// line flags and UCI options.
package config

import (
	"github.com/BurntSushi/toml"
)

// Settings is the configuration tree as read from the TOML file.
type Settings struct {
	Log struct {
		Level string
	}
	Engine struct {
		// transposition table size in megabytes
		HashMB int
		// search depth of a go command without one
		Depth int
		// recognized UCI options, persisted only
		Ponder      bool
		AnalyseMode bool
	}
}

// Current holds the active settings.
var Current = defaults()

func defaults() Settings {
	var s Settings
	s.Log.Level = "info"
	s.Engine.HashMB = 64
	s.Engine.Depth = 6
	return s
}

// Load reads the TOML file over the defaults. A missing or unreadable
// file leaves the defaults untouched and is reported to the caller.
func Load(path string) error {
	s := defaults()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return err
	}
	Current = s
	return nil
}
