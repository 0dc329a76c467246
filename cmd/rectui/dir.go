// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/h2non/filetype"
	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"rectui.dev/core/draw"
)

// Icon handles understood by the host backend.
const (
	iconFolder draw.Handle = iota + 1
	iconFile
	iconImage
	iconAudio
	iconVideo
	iconBinary
)

// entry is one directory entry shown in the list.
type entry struct {
	Name    string
	IsDir   bool
	Size    int64
	ModTime time.Time

	// Mime is the detected MIME type of a file, if known.
	Mime string
}

// label returns the list label of the entry.
func (e entry) label() string {
	if e.IsDir {
		return e.Name + string(filepath.Separator)
	}
	return e.Name
}

// icon returns the icon of the entry.
func (e entry) icon() draw.Handle {
	if e.IsDir {
		return iconFolder
	}
	typ, _, _ := strings.Cut(e.Mime, "/")
	switch typ {
	case "":
		return iconFile
	case "image":
		return iconImage
	case "audio":
		return iconAudio
	case "video":
		return iconVideo
	}
	return iconBinary
}

// info returns the detail line shown for the selected entry.
func (e entry) info() string {
	if e.IsDir {
		return fmt.Sprintf("%s  directory  %s", e.Name, e.ModTime.Format(time.DateTime))
	}
	s := fmt.Sprintf("%s  %d bytes  %s", e.Name, e.Size, e.ModTime.Format(time.DateTime))
	if e.Mime != "" {
		s += "  " + e.Mime
	}
	return s
}

// loaded is the result of reading a directory in the background.
type loaded struct {
	seq     int
	dir     string
	entries []entry
	err     error
}

// userLanguage returns the language of the user's locale, which
// orders the listing.
func userLanguage() language.Tag {
	loc, err := locale.GetLocale()
	if err != nil || loc == "" {
		slog.Debug("no user locale", "err", err)
		return language.Und
	}
	return language.Make(loc)
}

// readDir reads the entries of dir: directories first, then files,
// each in the collation order of the user's language ignoring case and
// ordering numbers by value. It sniffs the content type of files, so
// it must be called off the UI thread.
func readDir(dir string) ([]entry, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}
	entries := make([]entry, 0, len(des))
	for _, de := range des {
		e := entry{Name: de.Name(), IsDir: de.IsDir()}
		if fi, err := de.Info(); err == nil {
			e.Size = fi.Size()
			e.ModTime = fi.ModTime()
		}
		if de.Type().IsRegular() && e.Size > 0 {
			kind, err := filetype.MatchFile(filepath.Join(dir, e.Name))
			if err == nil && kind != filetype.Unknown {
				e.Mime = kind.MIME.Value
			}
		}
		entries = append(entries, e)
	}
	col := collate.New(userLanguage(), collate.IgnoreCase, collate.Numeric)
	slices.SortFunc(entries, func(a, b entry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return col.CompareString(a.Name, b.Name)
	})
	return entries, nil
}
