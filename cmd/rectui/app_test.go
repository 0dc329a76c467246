// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rectui.dev/core/draw"
	"rectui.dev/core/draw/drawdump"
	"rectui.dev/core/settings"
)

// testDir makes a directory with a subdirectory and two files.
func testDir(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "inner.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "B.txt"), []byte("hi"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o644))
	return dir
}

func runScript(t *testing.T, a *app, script string) {
	steps, err := parseScript(strings.NewReader(script))
	require.NoError(t, err)
	require.NoError(t, a.run(context.Background(), steps))
}

func TestReadDir(t *testing.T) {
	dir := testDir(t)
	entries, err := readDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.label())
	}
	assert.Equal(t, []string{"sub" + string(filepath.Separator), "a.txt", "B.txt"}, names)
	assert.Equal(t, int64(5), entries[1].Size)

	_, err = readDir(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestApp(t *testing.T) {
	dir := testDir(t)
	var out bytes.Buffer
	a := newApp(dir, settings.New(), 400, 300, drawdump.New(&out, drawdump.Text))

	// rows are 18 high: sub/, a.txt, B.txt
	runScript(t, a, "click 20 27\n")
	assert.Equal(t, 2, a.frames)
	assert.Contains(t, out.String(), `"sub/"`)
	assert.Contains(t, out.String(), "a.txt  5 bytes")
	idx, ok := a.list.SelectedIndex()
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	out.Reset()
	runScript(t, a, "dblclick 20 9\nwait\n")
	assert.Equal(t, filepath.Join(dir, "sub"), a.dir)
	assert.Equal(t, 1, a.source.Len())
	assert.Contains(t, out.String(), `"inner.txt"`)
	_, ok = a.list.SelectedIndex()
	assert.False(t, ok, "a new listing clears the selection")
	assert.Equal(t, float32(0), a.list.ScrollY())

	// the Up button is at the top of the right pane
	runScript(t, a, "click 200 10\nwait\n")
	assert.Equal(t, dir, a.dir)
	assert.Equal(t, 3, a.source.Len())
}

func TestAppSupersededLoad(t *testing.T) {
	dir := testDir(t)
	sub := filepath.Join(dir, "sub")
	a := newApp(dir, settings.New(), 400, 300, drawdump.New(&bytes.Buffer{}, drawdump.Text))
	runScript(t, a, "")

	// the later load wins whichever finishes first
	a.ctx = context.Background()
	a.load(sub)
	a.load(dir)
	require.NoError(t, a.wait(context.Background()))
	a.loaders.Wait()
	a.pump()
	assert.Equal(t, dir, a.dir)
	assert.Equal(t, 3, a.source.Len())

	// an earlier result arriving last is dropped
	a.loadSeq += 2
	a.receive(loaded{seq: a.loadSeq, dir: sub, entries: []entry{{Name: "inner.txt"}}})
	a.receive(loaded{seq: a.loadSeq - 1, dir: dir})
	assert.Equal(t, sub, a.dir)
	assert.Equal(t, 1, a.source.Len())
	assert.Equal(t, a.loadSeq, a.loadedSeq)
}

func TestAppCanceled(t *testing.T) {
	dir := testDir(t)
	a := newApp(dir, settings.New(), 400, 300, drawdump.New(&bytes.Buffer{}, drawdump.Text))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, a.run(ctx, nil), context.Canceled)
	assert.Equal(t, 0, a.frames)

	// nothing receives these; they must not block forever
	for range 3 {
		a.load(dir)
	}
	a.loaders.Wait()
}

func TestAppSelect(t *testing.T) {
	dir := testDir(t)
	a := newApp(dir, settings.New(), 400, 300, drawdump.New(&bytes.Buffer{}, drawdump.Text))
	runScript(t, a, "select \"b.TXT\"\n")
	idx, ok := a.list.SelectedIndex()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestEntryIcon(t *testing.T) {
	dir := testDir(t)
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pic.dat"), png, 0o644))
	entries, err := readDir(dir)
	require.NoError(t, err)
	icons := map[string]draw.Handle{}
	for _, e := range entries {
		icons[e.Name] = e.icon()
	}
	assert.Equal(t, iconFolder, icons["sub"])
	assert.Equal(t, iconFile, icons["a.txt"])
	assert.Equal(t, iconImage, icons["pic.dat"])
}

func TestAppNoChangeNoFrame(t *testing.T) {
	dir := testDir(t)
	var out bytes.Buffer
	a := newApp(dir, settings.New(), 400, 300, drawdump.New(&out, drawdump.Text))
	runScript(t, a, "wait\nwait\n")
	assert.Equal(t, 1, a.frames)
	runScript(t, a, "frame\n")
	assert.Equal(t, 3, a.frames, "the initial frame of the second run and the forced one")
}

func TestAppYAML(t *testing.T) {
	dir := testDir(t)
	var out bytes.Buffer
	a := newApp(dir, settings.New(), 400, 300, drawdump.New(&out, drawdump.YAML))
	runScript(t, a, "")
	assert.Contains(t, out.String(), "kind: text")
	assert.Contains(t, out.String(), "text: a.txt")
}

func TestAppSettings(t *testing.T) {
	dir := testDir(t)
	st := settings.New()
	st.ItemHeight = 30
	a := newApp(dir, st, 400, 300, drawdump.New(&bytes.Buffer{}, drawdump.Text))
	assert.Equal(t, float32(30), a.list.ItemHeight)

	ns := settings.New()
	ns.ItemHeight = 20
	a.settingsCh <- settingsUpdate{settings: ns}
	runScript(t, a, "")
	assert.Equal(t, float32(20), a.list.ItemHeight)
}

func TestRunCommand(t *testing.T) {
	dir := testDir(t)
	script := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(script, []byte("wheel 20 20 -1\n"), 0o644))

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{dir, "--script", script, "--width", "200", "--height", "100", "-q"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "-- frame 1 --")

	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{dir, "--units", "px", "--width", "200", "--height", "100", "-q"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), " px=(0,0)-(78,18)")

	for _, args := range [][]string{{"--format", "json"}, {"--units", "inches"}} {
		cmd = newRootCmd()
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{dir}, args...))
		assert.Error(t, cmd.Execute(), args)
	}
}
