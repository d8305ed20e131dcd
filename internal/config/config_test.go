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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	s := defaults()
	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, 64, s.Engine.HashMB)
	assert.Equal(t, 6, s.Engine.Depth)
	assert.False(t, s.Engine.Ponder)
	assert.False(t, s.Engine.AnalyseMode)
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	saved := Current
	defer func() { Current = saved }()

	err := Load("does/not/exist.toml")
	assert.Error(t, err)
	assert.Equal(t, 64, Current.Engine.HashMB)
}

func TestLoadOverridesDefaults(t *testing.T) {
	saved := Current
	defer func() { Current = saved }()

	path := filepath.Join(t.TempDir(), "athena.toml")
	content := "[log]\nlevel = \"debug\"\n\n[engine]\nhashmb = 256\ndepth = 8\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	assert.NoError(t, Load(path))
	assert.Equal(t, "debug", Current.Log.Level)
	assert.Equal(t, 256, Current.Engine.HashMB)
	assert.Equal(t, 8, Current.Engine.Depth)
	// untouched keys keep their defaults
	assert.False(t, Current.Engine.Ponder)
}
