// Package ecs provides ECS adapters for tinsel.
//
// The primary adapter is [NewDonburiListener], which bridges controller
// toggles (morph mode and rotation) into a [Donburi] world as typed events.
// Subscribe to [ModeChangeEventType] in your ECS systems to receive them.
//
// Usage:
//
//	listener := ecs.NewDonburiListener(world)
//	engine.Controller().SetListener(listener)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
