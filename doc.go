// Package tinsel is a particle morphing engine that moves thousands of
// independently animated elements between a scattered cloud and a
// cone-shaped tree.
//
// Every particle carries two fixed targets (scatter and tree) and a live
// position that eases toward whichever target the [Controller] selects.
// The engine is headless: it produces per-frame positions, colors and
// instance matrices, and a host renders them. The ebitenview subpackage is
// one such host.
//
// # Quick start
//
//	cfg := tinsel.DefaultConfig()
//	engine, err := tinsel.NewEngine(cfg, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	proj := tinsel.NewProjection(engine)
//
//	// every frame:
//	engine.Update(dt)
//	proj.Sync()
//	upload(proj.Points, proj.Batches)
//
// Toggle the shape or the spin from input handlers:
//
//	engine.Controller().ToggleMode()
//	engine.Controller().SetRotating(false)
//
// # Particles
//
// Needles are the dense point cloud; their tree targets fill the cone
// volume. Decorations are fewer, larger instanced ornaments on the cone
// surface, split evenly across four [Shape] batches, each with its own spin.
//
// # Smoothing
//
// Each frame a particle closes 1 - DecayBase^(dt*rate) of the remaining
// distance to its target, so convergence speed is independent of frame
// rate. See [SmoothingFactor].
//
// # Buffers
//
// [Projection] keeps one contiguous buffer per attribute: a [PointCloud] for
// needles and one [InstanceBatch] per decoration shape. Sync rewrites them in
// place and flags them dirty once per frame so hosts can upload in bulk.
//
// # ECS integration
//
// Set a [ModeListener] on the controller to observe toggles. The ecs
// subpackage provides one backed by a [Donburi] world.
//
// [Donburi]: https://github.com/yohamta/donburi
package tinsel
