// Copyright (c) 2025 The stakemint developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerminalHandler(t *testing.T) {
	var buf bytes.Buffer
	SetRootHandler(NewTerminalHandler(&buf, LevelDebug, false))
	defer SetRootHandler(DiscardHandler())

	logger := WithContext("pkg", "test")
	logger.Info("claimed", "amount", 42)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[INFO]"), out)
	assert.Contains(t, out, "claimed")
	assert.Contains(t, out, "pkg=test")
	assert.Contains(t, out, "amount=42")

	// below the handler level, nothing is written
	buf.Reset()
	logger.Trace("hidden")
	assert.Empty(t, buf.String())
}

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, LevelError, VerbosityToLevel(0))
	assert.Equal(t, LevelInfo, VerbosityToLevel(2))
	assert.Equal(t, slog.Level(-8), VerbosityToLevel(9))
}
