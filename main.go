package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/lanerunner/common"
	"github.com/milk9111/lanerunner/config"
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/prefabs"
	"github.com/milk9111/lanerunner/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	debug := flag.Bool("debug", cfg.Debug, "enable debug overlay and event logging")
	seed := flag.Int64("seed", cfg.Seed, "spawn placement seed (0 seeds from the clock)")
	prefabsDir := flag.String("prefabs", cfg.PrefabsDir, "directory whose prefabs override the embedded ones")
	watch := flag.Bool("watch", cfg.Watch, "reload tuning and scripts from -prefabs on change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	src := prefabs.NewSource(*prefabsDir)
	tuning, err := prefabs.LoadTuning(src, prefabs.TuningFile)
	if err != nil {
		log.Printf("prefabs: %v; using defaults", err)
	}

	opts := []session.Option{session.WithTuning(tuning), session.WithSource(src)}
	if *seed != 0 {
		opts = append(opts, session.WithSeed(*seed))
	}
	if *debug {
		opts = append(opts, session.WithListener(func(evt ecs.Event) {
			log.Printf("event: %s score=%d speed=%.2f z=%.2f", evt.Kind, evt.Score, evt.Speed, evt.Z)
		}))
	}
	s, err := session.New(opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()

	var watcher *prefabs.Watcher
	if *watch && *prefabsDir != "" {
		watcher, err = prefabs.NewWatcher(src)
		if err != nil {
			log.Printf("prefabs: watch %s: %v", *prefabsDir, err)
		} else {
			defer watcher.Close()
		}
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("lanerunner")

	if err := ebiten.RunGame(NewGame(s, src, watcher, *debug)); err != nil {
		log.Fatal(err)
	}
}
