// Package scenegraph is a minimal 2D scene graph and fixed-cadence game loop
// for mobile games on [Ebitengine].
//
// A [Scene] owns a flat live set of [Node] values and runs its frame loop on a
// dedicated goroutine. Each frame it calls the [Behavior] update hook, applies
// queued tree changes, hands the latest touch sample to the [TouchHandler]
// hooks, and renders the live set into a frame buffer locked from a
// [Surface].
//
// # Quick start
//
//	surface := scenegraph.NewEbitenSurface()
//	scene := scenegraph.NewScene(myGame)
//	if err := scene.Init(scenegraph.Size{W: 320, H: 480}, surface,
//		scenegraph.FixedMetrics{Width: 640, Height: 960}); err != nil {
//		log.Fatal(err)
//	}
//	surface.SetInputSink(scene)
//	scene.Start()
//	defer scene.Stop()
//	ebiten.RunGame(surface)
//
// # Tree changes
//
// [Scene.AddChild] and [Scene.RemoveChild] only queue work. Queued removals
// are applied at the start of the next frame, then queued additions, so the
// live set never changes while it is being rendered. Adding a node also adds
// its immediate children; deeper descendants are not queued.
//
// # Render order
//
// Live nodes are grouped by [Node.ZOrder] and painted in ascending z order.
// Nodes sharing a z value paint in the order they joined the live set. Only
// nodes with a [Drawable] produce pixels.
//
// # Touch input
//
// [Scene.Touch] may be called from any goroutine. The scene keeps only the
// most recent sample; a burst of moves between two frames is delivered as
// the last move.
//
// [Ebitengine]: https://ebitengine.org
package scenegraph
