// Copyright 2026 Wes Koerber.
// SPDX-License-Identifier: BSD-3-Clause

package envvar

import "testing"

func TestGet(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		set          bool
		defaultValue string
		want         string
	}{
		{name: "Unset", defaultValue: "fallback", want: "fallback"},
		{name: "Empty", set: true, defaultValue: "fallback", want: "fallback"},
		{name: "Set", value: "hello", set: true, defaultValue: "fallback", want: "hello"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			const key = "INEZ_TEST_GET"
			if test.set {
				t.Setenv(key, test.value)
			}
			if got := Get(key, test.defaultValue); got != test.want {
				t.Errorf("Get(%q, %q) = %q; want %q", key, test.defaultValue, got, test.want)
			}
		})
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		value string
		set   bool
		want  bool
	}{
		{want: false},
		{value: "", set: true, want: false},
		{value: "1", set: true, want: true},
		{value: "true", set: true, want: true},
		{value: "TRUE", set: true, want: true},
		{value: "0", set: true, want: false},
		{value: "no", set: true, want: false},
		{value: "banana", set: true, want: false},
	}
	for _, test := range tests {
		const key = "INEZ_TEST_BOOL"
		t.Run(test.value, func(t *testing.T) {
			if test.set {
				t.Setenv(key, test.value)
			}
			if got := Bool(key); got != test.want {
				t.Errorf("Bool(%q) with value %q = %t; want %t", key, test.value, got, test.want)
			}
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		value string
		set   bool
		want  int
	}{
		{want: 42},
		{value: "", set: true, want: 42},
		{value: "7", set: true, want: 7},
		{value: "-7", set: true, want: -7},
		{value: "7.5", set: true, want: 42},
		{value: "banana", set: true, want: 42},
	}
	for _, test := range tests {
		const key = "INEZ_TEST_INT"
		t.Run(test.value, func(t *testing.T) {
			if test.set {
				t.Setenv(key, test.value)
			}
			if got := Int(key, 42); got != test.want {
				t.Errorf("Int(%q, 42) with value %q = %d; want %d", key, test.value, got, test.want)
			}
		})
	}
}
