/*
 * MIT License
 *
 * Copyright (c) 2026 ZenClock Team
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

package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// extractMessage returns the "msg" field of the last serialized log entry
func extractMessage(bs []byte) (string, error) {
	var entry struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(bs, &entry); err != nil {
		return "", err
	}
	return entry.Msg, nil
}

// extractLevel returns the "level" field of the last serialized log entry
func extractLevel(bs []byte) (string, error) {
	var entry struct {
		Level string `json:"level"`
	}
	if err := json.Unmarshal(bs, &entry); err != nil {
		return "", err
	}
	return entry.Level, nil
}

func TestDebug(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(DebugLevel, buffer)
	require.Equal(t, DebugLevel, logger.LogLevel())

	logger.Debug("test debug")

	actual, err := extractMessage(buffer.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "test debug", actual)

	lvl, err := extractLevel(buffer.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "debug", lvl)
}

func TestInfo(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(InfoLevel, buffer)
	require.Equal(t, InfoLevel, logger.LogLevel())

	logger.Infof("test %s", "info")

	actual, err := extractMessage(buffer.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "test info", actual)

	lvl, err := extractLevel(buffer.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "info", lvl)
}

func TestWarn(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(WarningLevel, buffer)
	require.Equal(t, WarningLevel, logger.LogLevel())

	logger.Warn("test warning")

	actual, err := extractMessage(buffer.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "test warning", actual)
}

func TestError(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(ErrorLevel, buffer)
	require.Equal(t, ErrorLevel, logger.LogLevel())

	logger.Error("test error")

	actual, err := extractMessage(buffer.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "test error", actual)

	lvl, err := extractLevel(buffer.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "error", lvl)
}

func TestLevelFiltering(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(InfoLevel, buffer)

	logger.Debug("should not appear")
	assert.Zero(t, buffer.Len(), "debug messages must be filtered out at info level")
}

func TestPanic(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(InfoLevel, buffer)

	assert.Panics(t, func() {
		logger.Panic("test panic")
	})
}

func TestLogOutput(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(InfoLevel, buffer)

	outputs := logger.LogOutput()
	require.Len(t, outputs, 1)
	assert.Equal(t, buffer, outputs[0])
}

func TestStdLogger(t *testing.T) {
	buffer := new(bytes.Buffer)
	logger := NewZap(InfoLevel, buffer)

	std := logger.StdLogger()
	require.NotNil(t, std)

	std.Print("test std logger")
	actual, err := extractMessage(buffer.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "test std logger", actual)
}
