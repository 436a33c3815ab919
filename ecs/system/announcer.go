package system

import (
	"fmt"
	"log"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/lanerunner/ecs"
	"github.com/milk9111/lanerunner/ecs/entity"
	"github.com/milk9111/lanerunner/prefabs"
)

// The script defines announce(event, score, speed); this line is appended
// so each Run evaluates it against the globals set beforehand.
const announceDispatch = `
__result := announce(__event, __score, __speed)
`

// AnnouncerSystem turns the frame's gameplay events into banner text
// through a tengo script. Without a script it does nothing.
type AnnouncerSystem struct {
	frames   int
	compiled *tengo.Compiled
}

func NewAnnouncerSystem(src prefabs.Source, t prefabs.Tuning) (*AnnouncerSystem, error) {
	s := &AnnouncerSystem{frames: t.Announcer.BannerFrames}
	if strings.TrimSpace(t.Announcer.Script) == "" {
		return s, nil
	}
	body, err := src.LoadScript(t.Announcer.Script)
	if err != nil {
		return s, fmt.Errorf("announcer: load %s: %w", t.Announcer.Script, err)
	}
	compiled, err := compileAnnouncer(body)
	if err != nil {
		return s, fmt.Errorf("announcer: compile %s: %w", t.Announcer.Script, err)
	}
	s.compiled = compiled
	return s, nil
}

func compileAnnouncer(body []byte) (*tengo.Compiled, error) {
	src := string(body) + "\n" + announceDispatch
	script := tengo.NewScript([]byte(src))
	_ = script.Add("__event", "")
	_ = script.Add("__score", 0)
	_ = script.Add("__speed", 0.0)
	script.SetImports(stdlib.GetModuleMap("fmt", "text", "math"))
	return script.Compile()
}

// Enabled reports whether a script is loaded.
func (s *AnnouncerSystem) Enabled() bool {
	return s != nil && s.compiled != nil
}

// Announce runs the script for one event and returns its text.
func (s *AnnouncerSystem) Announce(evt ecs.Event) (string, error) {
	if !s.Enabled() {
		return "", nil
	}
	if err := s.compiled.Set("__event", string(evt.Kind)); err != nil {
		return "", err
	}
	if err := s.compiled.Set("__score", evt.Score); err != nil {
		return "", err
	}
	if err := s.compiled.Set("__speed", evt.Speed); err != nil {
		return "", err
	}
	if err := s.compiled.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(s.compiled.Get("__result").String()), nil
}

func (s *AnnouncerSystem) Update(w *ecs.World) {
	if w == nil || !s.Enabled() {
		return
	}

	for _, evt := range w.Events().Pending() {
		if evt.Kind == ecs.EventSpawned {
			continue
		}
		text, err := s.Announce(evt)
		if err != nil {
			log.Printf("announcer: %s: %v", evt.Kind, err)
			continue
		}
		if text == "" {
			continue
		}
		entity.NewBanner(w, string(evt.Kind), text, s.frames)
	}
}
