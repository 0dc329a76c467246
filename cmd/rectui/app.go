// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"rectui.dev/core/base/errors"
	"rectui.dev/core/draw"
	"rectui.dev/core/draw/drawdump"
	"rectui.dev/core/events"
	"rectui.dev/core/list"
	"rectui.dev/core/math32"
	"rectui.dev/core/region"
	"rectui.dev/core/settings"
)

// previewScene is the scene shown in the preview pane.
const previewScene draw.SceneRef = 1

// toolbarHeight is the height of the Up button.
const toolbarHeight = 28

type settingsUpdate struct {
	settings *settings.Settings
	err      error
}

// app is the host: it owns the region tree, feeds it input from its
// queue and background results, and dumps frames.
type app struct {
	settings *settings.Settings
	dir      string

	root    *region.Root
	split   *region.Splitter
	list    *list.ListRegion[entry]
	source  *list.SliceSource[entry]
	details *region.Panel
	up      *region.Button
	preview *region.SceneView

	queue      events.Queue
	loads      chan loaded
	settingsCh chan settingsUpdate

	// loadSeq is the sequence number of the latest load; results of
	// earlier loads are dropped. loadedSeq is the sequence number of
	// the last result received.
	loadSeq   int
	loadedSeq int

	// ctx is the context of the current run; loads that cannot
	// deliver their result give up when it is done.
	ctx     context.Context
	loaders sync.WaitGroup

	out         *drawdump.Processor
	frames      int
	invalidates int
}

func newApp(dir string, st *settings.Settings, w, h float32, out *drawdump.Processor) *app {
	a := &app{
		settings:   st,
		dir:        dir,
		loads:      make(chan loaded, 1),
		settingsCh: make(chan settingsUpdate, 1),
		out:        out,
		ctx:        context.Background(),
	}
	a.queue.Init()
	a.source = list.NewSliceSource[entry]().SetNewItem(a.newItem)

	a.root = region.NewRoot(w, h)
	a.root.OnInvalidate = func() { a.invalidates++ }
	a.split = region.NewSplitter(region.Horizontal, a.root)
	a.split.SetSplit(0.4)

	a.list = list.NewListRegion[entry](a.source, a.split)
	a.list.OnSelectionChanged(func() {
		a.details.Invalidate()
	})
	a.list.OnItemDoubleClicked(func(index int, e entry) {
		if e.IsDir {
			a.load(filepath.Join(a.dir, e.Name))
		}
	})

	right := region.NewSplitter(region.Vertical, a.split)
	top := region.NewPanel(right).SetLayouter(func(pn *region.Panel) {
		r := pn.Rect()
		a.up.SetRect(math32.NewRect(r.X, r.Y, r.W, toolbarHeight))
		a.details.SetRect(math32.NewRect(r.X, r.Y+toolbarHeight, r.W, r.H-toolbarHeight))
	})
	a.up = region.NewButton("Up", top)
	a.up.OnClick(func(e events.Event) {
		a.load(filepath.Dir(a.dir))
	})
	a.details = region.NewPanel(top).SetDrawer(a.drawDetails)
	a.preview = region.NewSceneView(previewScene, right)

	a.applySettings()
	return a
}

// newItem makes the list items.
func (a *app) newItem() list.Item[entry] {
	return list.NewIconTextItem(entry.label, entry.icon)
}

// drawDetails draws the path and the selected entry.
func (a *app) drawDetails(p draw.Processor, rect math32.Rect, isActive, isHover bool) {
	pad := a.settings.TextPadding
	font := a.settings.Font.Style()
	color := a.details.Style.TextColor(false)
	line := math32.NewRect(rect.X, rect.Y, rect.W, a.list.ItemHeight)
	draw.Emit(p, a.details.ID(), draw.TextCommands(line, pad, color, font, a.dir))
	sel := a.list.Selected()
	if sel == nil {
		return
	}
	if e, ok := sel.AsItem().Content(); ok {
		line.Y += line.H
		draw.Emit(p, a.details.ID(), draw.TextCommands(line, pad, color, font, e.info()))
	}
}

// selectName selects the entry whose name is the most similar to
// name and scrolls it into view.
func (a *app) selectName(name string) {
	metric := metrics.NewLevenshtein()
	metric.CaseSensitive = false
	best, score := -1, 0.0
	for i, e := range a.source.Items() {
		if sim := strutil.Similarity(name, e.Name, metric); sim > score {
			best, score = i, sim
		}
	}
	if best < 0 {
		slog.Warn("no entry like", "name", name)
		return
	}
	slog.Info("selecting", "name", a.source.At(best).Name, "similarity", score)
	a.list.Select(best).ScrollToIndex(best)
}

// applySettings applies the current settings to the tree.
func (a *app) applySettings() {
	a.settings.Apply()
	a.settings.ApplyRoot(a.root)
	settings.ApplyList(a.settings, a.list)
	a.root.Invalidate()
}

// load reads the given directory in the background. The result is
// handed to the UI thread through the loads channel.
func (a *app) load(dir string) {
	a.loadSeq++
	seq, ctx := a.loadSeq, a.ctx
	slog.Info("loading", "dir", dir, "seq", seq)
	a.loaders.Go(func() {
		entries, err := readDir(dir)
		select {
		case a.loads <- loaded{seq: seq, dir: dir, entries: entries, err: err}:
		case <-ctx.Done():
		}
	})
}

// receive publishes a finished load. A failed load keeps the current
// listing, and a load that was superseded by a later one is dropped.
func (a *app) receive(l loaded) {
	if l.seq != a.loadSeq {
		slog.Debug("dropping superseded load", "dir", l.dir, "seq", l.seq, "latest", a.loadSeq)
		return
	}
	a.loadedSeq = l.seq
	if errors.Log(l.err) != nil {
		return
	}
	a.dir = l.dir
	a.source.Set(l.entries)
	a.details.Invalidate()
}

// wait waits for the result of the latest load.
func (a *app) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for a.loadedSeq != a.loadSeq {
		select {
		case l := <-a.loads:
			a.receive(l)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// pump handles everything that is ready without blocking: finished
// loads, settings reloads and queued input.
func (a *app) pump() {
	for {
		select {
		case l := <-a.loads:
			a.receive(l)
			continue
		case su := <-a.settingsCh:
			if errors.Log(su.err) == nil {
				a.settings = su.settings
				a.applySettings()
			}
			continue
		default:
		}
		break
	}
	for _, ev := range a.queue.Drain() {
		a.root.Dispatch(ev)
	}
}

// frame dumps a frame if the tree changed since the last one.
func (a *app) frame() error {
	if !a.root.IsDirty() {
		return nil
	}
	a.out.BeginFrame()
	a.root.Redraw(a.out)
	a.out.EndFrame()
	a.frames++
	slog.Debug("frame", "number", a.frames, "commands", a.out.Count(), "requests", a.invalidates)
	return a.out.Err
}

// run loads the directory, draws the first frame and then plays the
// script, drawing a frame after each step that changed something.
// Loads still running when it returns give up their results.
func (a *app) run(ctx context.Context, steps []step) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.ctx = ctx
	a.load(a.dir)
	if err := a.wait(ctx); err != nil {
		return err
	}
	a.pump()
	if err := a.frame(); err != nil {
		return err
	}
	for _, st := range steps {
		switch st.op {
		case "wait":
			if err := a.wait(ctx); err != nil {
				return err
			}
		case "frame":
			a.root.Invalidate()
		case "select":
			a.selectName(st.arg)
		default:
			for _, ev := range st.events {
				a.queue.Send(ev)
			}
		}
		a.pump()
		if err := a.frame(); err != nil {
			return err
		}
		slog.Debug("step", "line", st.line, "op", st.op)
	}
	return nil
}
