package animate

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/tweens/ecs"
	"github.com/milk9111/tweens/ecs/component"
)

const stopResult = "__stop"

// scriptGlobals are the values a stop_when expression can read, with the
// zero values used to declare them.
var scriptGlobals = map[string]any{
	"seconds":  0.0,
	"frames":   0,
	"x":        0.0,
	"y":        0.0,
	"z":        0.0,
	"scale_x":  0.0,
	"scale_y":  0.0,
	"rotation": 0.0,
	"alpha":    0.0,
	"volume":   0.0,
	"alive":    false,
}

// compileStopWhen compiles expr once. The returned predicate refreshes the
// globals from the entity, runs the script and reports the truthiness of the
// expression. A script that fails at run time is logged and does not stop
// the phase.
func compileStopWhen(a *Animation, expr string) (func() bool, error) {
	script := tengo.NewScript([]byte(stopResult + " := (" + expr + ")"))
	for name, zero := range scriptGlobals {
		if err := script.Add(name, zero); err != nil {
			return nil, fmt.Errorf("stop_when: declare %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("stop_when %q: %w", expr, err)
	}

	return func() bool {
		for name, value := range a.scriptEnv() {
			if !compiled.IsDefined(name) {
				continue
			}
			if err := compiled.Set(name, value); err != nil {
				log.Printf("animate: stop_when %q: set %s: %v", expr, name, err)
				return false
			}
		}
		if err := compiled.Run(); err != nil {
			log.Printf("animate: stop_when %q: %v", expr, err)
			return false
		}
		return compiled.Get(stopResult).Bool()
	}, nil
}

func (a *Animation) scriptEnv() map[string]any {
	env := map[string]any{
		"seconds": a.track.Seconds,
		"frames":  a.track.Frames,
		"alive":   ecs.IsAlive(a.w, a.e),
	}
	if t, ok := ecs.Get(a.w, a.e, component.TransformComponent.Kind()); ok {
		env["x"] = t.Position.X
		env["y"] = t.Position.Y
		env["z"] = t.Position.Z
		env["scale_x"] = t.Scale.X
		env["scale_y"] = t.Scale.Y
		env["rotation"] = t.Rotation.Euler().Z
	}
	if b, err := a.Alpha(); err == nil {
		env["alpha"] = b.Value()
	}
	if au, ok := ecs.Get(a.w, a.e, component.AudioComponent.Kind()); ok {
		env["volume"] = au.Volume
	}
	return env
}
