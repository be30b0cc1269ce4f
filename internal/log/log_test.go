// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Logger_log(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		options     []Option
		level       Level
		s           string
		args        []interface{}
		outputRegex string
	}{
		"log at trace": {
			options:     []Option{SetLevel(Trace)},
			level:       Trace,
			s:           "some words",
			outputRegex: timePrefixRegex + levelRegex(Trace) + " some words\n$",
		},
		"do not log at trace": {
			options:     []Option{SetLevel(Debug)},
			level:       Trace,
			s:           "some words",
			outputRegex: "^$",
		},
		"format string": {
			options:     []Option{SetLevel(Info)},
			level:       Warn,
			s:           "pip %d is %s",
			args:        []interface{}{3, "pending"},
			outputRegex: timePrefixRegex + levelRegex(Warn) + " pip 3 is pending\n$",
		},
		"show caller": {
			options: []Option{
				SetLevel(Trace),
				SetCallerFile(true),
				SetCallerLine(true),
			},
			level:       Error,
			s:           "some words",
			outputRegex: timePrefixRegex + levelRegex(Error) + " some words\tlog_test.go:L[0-9]+\n$",
		},
		"context": {
			options: []Option{
				SetLevel(Trace),
				AddContext("key1", "a"),
				AddContext("key1", "b"),
				AddContext("key2", "c"),
			},
			level:       Info,
			s:           "some words",
			outputRegex: timePrefixRegex + levelRegex(Info) + " some words\tkey1=a,b key2=c\n$",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buffer := bytes.NewBuffer(nil)
			options := append(testCase.options, SetWriter(buffer))
			logger := New(options...)

			logWrapper := func() { // wrap for caller depth
				logger.log(testCase.level, testCase.s, testCase.args...)
			}
			logWrapper()

			regex, err := regexp.Compile(testCase.outputRegex)
			require.NoError(t, err)

			line := buffer.String()
			assert.True(t, regex.MatchString(line),
				"line %q does not match regex %q", line, regex.String())
		})
	}
}

func Test_Logger_JSON(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)
	logger := New(SetWriter(buffer), SetFormat(FormatJSON), AddContext("pkg", "pips"))

	logger.Infof("proposal %d created", 1)

	var object map[string]string
	err := json.Unmarshal(buffer.Bytes(), &object)
	require.NoError(t, err)

	assert.Equal(t, "INFO", object["level"])
	assert.Equal(t, "proposal 1 created", object["message"])
	assert.Equal(t, "pips", object["pkg"])
	assert.NotEmpty(t, object["time"])
}

func Test_Logger_LevelsLog(t *testing.T) {
	t.Parallel()

	buffer := bytes.NewBuffer(nil)

	logger := New(SetLevel(Trace), SetWriter(buffer))
	logger.Trace("some trace")
	logger.Debug("some debug")
	logger.Info("some info")
	logger.Warn("some warn")
	logger.Error("some error")
	logger.Critical("some critical")
	logger.Tracef("some %dnd trace", 2)
	logger.Debugf("some %dnd debug", 2)
	logger.Infof("some %dnd info", 2)
	logger.Warnf("some %dnd warn", 2)
	logger.Errorf("some %dnd error", 2)
	logger.Criticalf("some %dnd critical", 2)

	lines := strings.Split(buffer.String(), "\n")

	require.NotEmpty(t, lines)
	assert.Equal(t, "", lines[len(lines)-1])
	lines = lines[:len(lines)-1]

	expectedRegexes := []string{
		timePrefixRegex + levelRegex(Trace) + " some trace$",
		timePrefixRegex + levelRegex(Debug) + " some debug$",
		timePrefixRegex + levelRegex(Info) + " some info$",
		timePrefixRegex + levelRegex(Warn) + " some warn$",
		timePrefixRegex + levelRegex(Error) + " some error$",
		timePrefixRegex + levelRegex(Critical) + " some critical$",
		timePrefixRegex + levelRegex(Trace) + " some 2nd trace$",
		timePrefixRegex + levelRegex(Debug) + " some 2nd debug$",
		timePrefixRegex + levelRegex(Info) + " some 2nd info$",
		timePrefixRegex + levelRegex(Warn) + " some 2nd warn$",
		timePrefixRegex + levelRegex(Error) + " some 2nd error$",
		timePrefixRegex + levelRegex(Critical) + " some 2nd critical$",
	}

	require.Equal(t, len(expectedRegexes), len(lines))

	for i := range lines {
		regex, err := regexp.Compile(expectedRegexes[i])
		require.NoError(t, err)

		assert.True(t, regex.MatchString(lines[i]),
			"line %q does not match regex %q", lines[i], expectedRegexes[i])
	}
}
