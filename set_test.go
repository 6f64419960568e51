// Copyright 2026 Wes Koerber.
// SPDX-License-Identifier: BSD-3-Clause

package inez

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, contents ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(contents))
	for i, c := range contents {
		p := filepath.Join(dir, "config"+string(rune('0'+i))+".ini")
		if err := os.WriteFile(p, []byte(c), 0o666); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	return paths
}

func TestParseFiles(t *testing.T) {
	t.Run("Precedence", func(t *testing.T) {
		paths := writeFiles(t,
			"[main]\nhello=first\n",
			"[main]\nhello=second\nonly=here\n",
		)
		set, err := ParseFiles(nil, paths...)
		if err != nil {
			t.Fatal("ParseFiles:", err)
		}
		defer set.Close()
		if len(set) != 2 {
			t.Fatalf("len(set) = %d; want 2", len(set))
		}
		if got, err := set.Get("main", "hello"); err != nil || got != "first" {
			t.Errorf(`Get("main", "hello") = %q, %v; want %q, <nil>`, got, err, "first")
		}
		if got, err := set.Get("main", "only"); err != nil || got != "here" {
			t.Errorf(`Get("main", "only") = %q, %v; want %q, <nil>`, got, err, "here")
		}
		if _, err := set.Get("main", "nope"); !errors.Is(err, ErrNotFound) {
			t.Errorf(`Get("main", "nope") = %v; want ErrNotFound`, err)
		}
	})
	t.Run("MissingFile", func(t *testing.T) {
		paths := writeFiles(t, "[main]\nhello=world\n")
		missing := filepath.Join(t.TempDir(), "nope.ini")
		set, err := ParseFiles(nil, missing, paths[0])
		if err != nil {
			t.Fatal("ParseFiles:", err)
		}
		if len(set) != 2 || set[0] != nil {
			t.Fatalf("set = %v; want [nil, doc]", set)
		}
		if got, err := set.Get("main", "hello"); err != nil || got != "world" {
			t.Errorf("Get = %q, %v; want %q, <nil>", got, err, "world")
		}
	})
	t.Run("SyntaxErrorStops", func(t *testing.T) {
		paths := writeFiles(t, "hello=world\n")
		if _, err := ParseFiles(nil, paths...); err == nil {
			t.Error("ParseFiles did not return error")
		}
	})
}

func TestDocumentSetPut(t *testing.T) {
	t.Run("AllocatesFirstDocument", func(t *testing.T) {
		set := make(DocumentSet, 2)
		if err := set.Put("main", "hello", "world"); err != nil {
			t.Fatal("Put:", err)
		}
		if got, err := set.Get("main", "hello"); err != nil || got != "world" {
			t.Errorf("Get = %q, %v; want %q, <nil>", got, err, "world")
		}
	})
	t.Run("DuplicateChecksFirstDocumentOnly", func(t *testing.T) {
		d := new(Document)
		if err := d.Put("main", "hello", "below"); err != nil {
			t.Fatal("Put:", err)
		}
		set := DocumentSet{new(Document), d}
		if err := set.Put("main", "hello", "above"); err != nil {
			t.Fatal("Put:", err)
		}
		if got, err := set.Get("main", "hello"); err != nil || got != "above" {
			t.Errorf("Get = %q, %v; want %q, <nil>", got, err, "above")
		}
	})
	t.Run("PutOrUpdate", func(t *testing.T) {
		set := DocumentSet{new(Document)}
		set.PutOrUpdate("main", "hello", "world")
		set.PutOrUpdate("main", "hello", "world!!!")
		if got, err := set.Get("main", "hello"); err != nil || got != "world!!!" {
			t.Errorf("Get = %q, %v; want %q, <nil>", got, err, "world!!!")
		}
		if set[0].Len() != 1 {
			t.Errorf("Len() = %d; want 1", set[0].Len())
		}
	})
}
