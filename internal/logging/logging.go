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

// Package logging provides the engine's loggers. Everything goes to
// stderr so the UCI conversation on stdout stays clean.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

var (
	engineLog = logging.MustGetLogger("engine")
	uciLog    = logging.MustGetLogger("uci")
)

var format = logging.MustStringFormatter(
	"%{time:15:04:05.000} %{level:-8s} %{module:-6s} %{shortfunc} | %{message}",
)

func init() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
}

// Engine returns the logger of the core packages.
func Engine() *logging.Logger {
	return engineLog
}

// UCI returns the logger of the UCI layer.
func UCI() *logging.Logger {
	return uciLog
}

// levels maps the configuration's level names.
var levels = map[string]logging.Level{
	"critical": logging.CRITICAL,
	"error":    logging.ERROR,
	"warning":  logging.WARNING,
	"notice":   logging.NOTICE,
	"info":     logging.INFO,
	"debug":    logging.DEBUG,
}

// SetLevel changes the level of all loggers. Unknown names are
// ignored.
func SetLevel(name string) {
	if lvl, ok := levels[name]; ok {
		logging.SetLevel(lvl, "engine")
		logging.SetLevel(lvl, "uci")
	}
}
