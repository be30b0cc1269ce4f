// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type contextKeyValues struct {
	key    string
	values []string
}

type settings struct {
	writer  io.Writer
	level   *Level
	format  *Format
	caller  callerSettings
	context []contextKeyValues
}

func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// mergeWith sets values of the other settings if they are
// set and not already set in the current settings.
// Context key values are prepended with the other context.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}

	if s.level == nil && other.level != nil {
		value := *other.level
		s.level = &value
	}

	if s.format == nil && other.format != nil {
		value := *other.format
		s.format = &value
	}

	s.caller.mergeWith(other.caller)

	merged := make([]contextKeyValues, 0, len(other.context)+len(s.context))
	for _, kv := range other.context {
		values := make([]string, len(kv.values))
		copy(values, kv.values)
		merged = append(merged, contextKeyValues{key: kv.key, values: values})
	}
	for _, kv := range s.context {
		merged = appendContext(merged, kv.key, kv.values...)
	}
	if len(merged) == 0 {
		merged = nil
	}
	s.context = merged
}

// overrideWith sets values of the other settings if they are set,
// overriding the current settings. It is used for patching.
func (s *settings) overrideWith(other settings) {
	if other.writer != nil {
		s.writer = other.writer
	}

	if other.level != nil {
		value := *other.level
		s.level = &value
	}

	if other.format != nil {
		value := *other.format
		s.format = &value
	}

	s.caller.overrideWith(other.caller)

	for _, kv := range other.context {
		s.context = appendContext(s.context, kv.key, kv.values...)
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		value := Info
		s.level = &value
	}

	if s.format == nil {
		value := FormatConsole
		s.format = &value
	}

	s.caller.setDefaults()
}

func appendContext(context []contextKeyValues, key string,
	values ...string) []contextKeyValues {
	for i := range context {
		if context[i].key == key {
			context[i].values = append(context[i].values, values...)
			return context
		}
	}
	newValues := make([]string, len(values))
	copy(newValues, values)
	return append(context, contextKeyValues{key: key, values: newValues})
}

func (s *settings) hasContext(key, value string) bool {
	for _, kv := range s.context {
		if kv.key != key {
			continue
		}
		for _, v := range kv.values {
			if v == value {
				return true
			}
		}
	}
	return false
}
