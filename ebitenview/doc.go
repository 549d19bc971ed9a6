// Package ebitenview hosts a tinsel engine in an ebiten window.
//
// [Run] opens the window and drives the engine at the ebiten tick rate. Each
// tick steps the optional script, reads input, advances the engine, and syncs
// the projection buffers. Each frame draws needles as additive soft dots and
// decorations as depth-sorted shape sprites through a perspective [Camera].
//
// Controls: Space toggles the morph mode, 1 and 2 select scattered and tree,
// R toggles rotation, D toggles debug stats, F12 saves a screenshot. Drag to
// orbit and use the wheel to zoom.
//
//	engine, err := tinsel.NewEngine(tinsel.DefaultConfig(), nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := ebitenview.Run(engine, ebitenview.RunConfig{Title: "tinsel", ShowHUD: true}); err != nil {
//		log.Fatal(err)
//	}
package ebitenview
