package main

import (
	"math/rand"
	"time"

	"shape-sandbox/internal/debug"
	"shape-sandbox/internal/defs"
	"shape-sandbox/internal/engineconfig"
	"shape-sandbox/internal/graphics"
	"shape-sandbox/internal/logger"
	"shape-sandbox/internal/scene"
	"shape-sandbox/internal/shapes"
	"shape-sandbox/internal/ui"
)

func main() {
	log := logger.New()
	prefs, _ := engineconfig.Load()
	d, err := defs.Load(defs.Path)
	if err != nil {
		log.Log("defs: " + err.Error() + " (using defaults)")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := scene.NewSession(d, log, rng)
	view := scene.NewView(session)
	view.SetGridVisible(prefs.GridVisible)
	panel := ui.NewSpawnPanel(shapes.Kinds, session.Spawn)

	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowMemAlloc(prefs.ShowMemAlloc)

	update := func() {
		view.Update()
		panel.Update()
	}
	draw := func() {
		view.Draw()
		panel.Draw()
		dbg.Draw()
	}
	graphics.Run(update, draw)
}
