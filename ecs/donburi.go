package ecs

import (
	"github.com/phanxgames/tinsel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ModeChangeEventType is the Donburi event type for controller toggles.
// Subscribe to this in your ECS systems to react to morph and spin changes.
var ModeChangeEventType = events.NewEventType[tinsel.ModeChange]()

type donburiListener struct {
	world donburi.World
}

// NewDonburiListener creates a ModeListener backed by a Donburi world.
// Changes are queued on ModeChangeEventType and delivered by
// ProcessEvents, so subscribers run on the ECS update, not on the goroutine
// that flipped the toggle.
func NewDonburiListener(world donburi.World) tinsel.ModeListener {
	return &donburiListener{world: world}
}

func (l *donburiListener) EmitModeChange(change tinsel.ModeChange) {
	ModeChangeEventType.Publish(l.world, change)
}
