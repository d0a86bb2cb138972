package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cassbridge/cassbridge/pkg/cassbridge/testutil"
	"github.com/cassbridge/cassbridge/pkg/cassbridge/version"
)

func TestLogger_Log(t *testing.T) {
	testLogStatement := "hello info log!"

	f := func() {
		logger := NewLogger(DEBUG)
		logger.Log(testLogStatement)
	}

	output := testutil.StdoutOutputForFunc(f)
	assertMessageInJSONLog(t, output, testLogStatement)
}

func TestLogger_Logf(t *testing.T) {
	testLogStatement := "hello info logf!"

	f := func() {
		logger := NewLogger(DEBUG)
		logger.Logf("%s", testLogStatement)
	}

	output := testutil.StdoutOutputForFunc(f)
	assertMessageInJSONLog(t, output, testLogStatement)
}

func TestLogger_Error(t *testing.T) {
	testLogStatement := "hello error log!"

	f := func() {
		logger := NewLogger(DEBUG)
		logger.Error(testLogStatement)
	}

	output := testutil.StderrOutputForFunc(f)
	assertMessageInJSONLog(t, output, testLogStatement)
}

func TestLogger_Warnf(t *testing.T) {
	f := func() {
		logger := NewLogger(DEBUG)
		logger.Warnf("retrying %d times", 3)
	}

	output := testutil.StdoutOutputForFunc(f)
	assertMessageInJSONLog(t, output, "retrying 3 times")
	assert.Contains(t, output, `"level":"WARN"`)
	assert.Contains(t, output, `"cassbridgeVersion":"`+version.Library+`"`)
}

func TestLogger_LevelFiltering(t *testing.T) {
	testCases := []struct {
		desc   string
		level  Level
		logFn  func(Logger)
		logged bool
	}{
		{"debug below info", INFO, func(l Logger) { l.Debug("x") }, false},
		{"info at info", INFO, func(l Logger) { l.Log("x") }, true},
		{"info below warn", WARN, func(l Logger) { l.Logf("%s", "x") }, false},
		{"warn at warn", WARN, func(l Logger) { l.Warnf("%s", "x") }, true},
		{"info below error", ERROR, func(l Logger) { l.Infof("%s", "x") }, false},
	}

	for i, tc := range testCases {
		output := testutil.StdoutOutputForFunc(func() {
			tc.logFn(NewLogger(tc.level))
		})

		assert.Equal(t, tc.logged, output != "", "TEST[%d], Failed.\n%s", i, tc.desc)
	}
}

func TestLogger_ChangeLevel(t *testing.T) {
	output := testutil.StdoutOutputForFunc(func() {
		l := NewLogger(ERROR)
		l.Log("hidden")
		l.ChangeLevel(DEBUG)
		l.Debug("shown")
	})

	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "shown")
}

func TestLogger_MultipleArgs(t *testing.T) {
	output := testutil.StdoutOutputForFunc(func() {
		NewLogger(INFO).Log("a", 1)
	})

	var l struct {
		Message []any `json:"message"`
	}

	require.NoError(t, json.Unmarshal([]byte(output), &l))
	assert.Equal(t, []any{"a", float64(1)}, l.Message)
}

type prettyMessage struct{}

func (prettyMessage) PrettyPrint(w io.Writer) {
	fmt.Fprintln(w, "pretty message")
}

func TestLogger_PrettyPrint(t *testing.T) {
	b := new(bytes.Buffer)

	l := &logger{out: b, errOut: b, isTerminal: true}
	l.ChangeLevel(DEBUG)

	l.Log(prettyMessage{})
	l.Error("plain message")

	out := b.String()

	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "pretty message\n")
	assert.Contains(t, out, "ERRO")
	assert.Contains(t, out, "plain message\n")
}

func TestLogger_Fatalf(t *testing.T) {
	var code int

	exit = func(c int) { code = c }

	t.Cleanup(func() { exit = os.Exit })

	output := testutil.StderrOutputForFunc(func() {
		NewLogger(INFO).Fatalf("cannot start: %s", "no hosts")
	})

	assertMessageInJSONLog(t, output, "cannot start: no hosts")
	assert.Contains(t, output, `"level":"FATAL"`)
	assert.Equal(t, 1, code)
}

func TestMockLogger(t *testing.T) {
	b := new(bytes.Buffer)
	l := NewMockLogger(WARN, b)

	l.Debugf("%d", 1)
	l.Logf("%d", 2)
	l.Warnf("%d", 3)
	l.Error("four", 4)
	l.Fatalf("%s", "five")

	l.ChangeLevel(DEBUG)
	l.Debug("six")

	assert.Equal(t, "3\n[four 4]\nfive\nsix\n", b.String())
}

func TestLevel_StringAndColor(t *testing.T) {
	tests := []struct {
		level          Level
		expectedString string
		expectedColor  uint
	}{
		{DEBUG, levelDEBUG, 36},
		{INFO, levelINFO, 36},
		{NOTICE, levelNOTICE, 33},
		{WARN, levelWARN, 33},
		{ERROR, levelERROR, 31},
		{FATAL, levelFATAL, 31},
		{Level(99), "", 37},
	}

	for i, tc := range tests {
		assert.Equal(t, tc.expectedString, tc.level.String(), "TEST[%d], Failed.\n", i)
		assert.Equal(t, tc.expectedColor, tc.level.color(), "TEST[%d], Failed.\n", i)
	}
}

func TestGetLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"Notice", NOTICE},
		{" warn ", WARN},
		{"ERROR", ERROR},
		{"fatal", FATAL},
		{"verbose", INFO},
	}

	for i, tc := range tests {
		assert.Equal(t, tc.expected, GetLevelFromString(tc.input), "TEST[%d], Failed.\n", i)
	}
}

func TestLogPanic(t *testing.T) {
	b := new(bytes.Buffer)
	l := NewMockLogger(DEBUG, b)

	LogPanic(nil, l)
	assert.Empty(t, b.String())

	LogPanic("boom", l)
	assert.Contains(t, b.String(), "boom")

	b.Reset()
	LogPanic(errors.New("bad state"), l)
	assert.Contains(t, b.String(), "bad state")

	b.Reset()
	LogPanic(42, l)
	assert.Contains(t, b.String(), "42")
}

func assertMessageInJSONLog(t *testing.T, logLine, expectation string) {
	t.Helper()

	var l logEntry
	_ = json.Unmarshal([]byte(logLine), &l)

	if l.Message != expectation {
		t.Errorf("Log mismatch. Expected: %s Got: %s", expectation, l.Message)
	}
}
