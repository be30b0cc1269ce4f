// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// Patch patches the existing settings with any option given.
// This is thread safe and propagates to all child loggers.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.patchWithoutLocking(newSettings(options))
}

// PatchLevel patches the level of the logger and its children.
func (l *Logger) PatchLevel(level Level) {
	l.Patch(SetLevel(level))
}

func (l *Logger) patchWithoutLocking(patch settings) {
	l.settings.overrideWith(patch)
	for _, child := range l.childs {
		child.patchWithoutLocking(patch)
	}
}

// PatchWithContext patches the child loggers having the context key
// value pair given, and their own children.
func (l *Logger) PatchWithContext(key, value string, options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.patchMatchingWithoutLocking(key, value, newSettings(options))
}

func (l *Logger) patchMatchingWithoutLocking(key, value string, patch settings) {
	for _, child := range l.childs {
		if child.settings.hasContext(key, value) {
			child.patchWithoutLocking(patch)
			continue
		}
		child.patchMatchingWithoutLocking(key, value, patch)
	}
}
