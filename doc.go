// Package kinetic is a retained-mode scroll and pointer motion layer for
// [Ebitengine].
//
// A page is a tree of rectangular [Element] values rooted at [Scene.Root].
// The [Viewport] scrolls over the page; effects observe elements against the
// viewport and the pointer and animate their presentation every frame.
//
// # Quick start
//
//	scene := kinetic.NewScene(1024, 768)
//	card := kinetic.NewBox("card", 300, 200, kinetic.Color{R: 0.2, G: 0.3, B: 0.5, A: 1})
//	card.SetPosition(100, 900)
//	scene.Root().AddChild(card)
//	scene.FitContent()
//
//	kinetic.NewReveal(scene, card, kinetic.DefaultRevealConfig())
//	kinetic.NewTiltCard(scene, card, kinetic.DefaultTiltConfig())
//
//	kinetic.Run(scene, kinetic.RunConfig{Title: "Demo", Width: 1024, Height: 768})
//
// For a custom loop, call [Scene.Update] and [Scene.Draw] from your own
// [ebiten.Game]. Tests and headless tools call [Scene.Step] with an explicit
// time delta and drive input with the Inject methods.
//
// # Layout and presentation
//
// An element's layout box (X, Y, Width, Height, relative to its parent) is
// what observers measure and what pointer hit testing uses. Presentation
// fields (OffsetX/OffsetY, Rotation, Scale, RotateX/RotateY, Alpha) change
// only how it is drawn, so an element sliding in from below does not change
// its own visibility.
//
// # Primitives
//
//   - [InViewTracker]: revealed/hidden signal from the visible fraction of an
//     element, with once semantics.
//   - [ScrollProgress]: scroll position mapped onto [0, 1] between two
//     [ScrollOffset] anchors.
//   - [TiltTracker] and [ComputeTilt]: pointer position to rotation and glare.
//   - [MarqueeDriver]: a wrapping accumulator sped up by scroll velocity.
//   - [Mapping], [Spring] and [TweenGroup]: value mapping, smoothing and
//     timed transitions.
//
// Each primitive takes an observation source interface ([IntersectionSource],
// [ScrollSource], [PointerSource]). The Scene provides live ones; tests can
// pass simulated ones.
//
// # Components
//
// [Reveal], [Parallax], [TiltCard], [Marquee], [Floating] and [HoverCard]
// compose the primitives. Every component releases its observers and frame
// tasks when its element is disposed or Stop is called. A nil element makes
// a component inert.
//
// # Scheduling
//
// Each step runs, in order: the scenario script, input, the viewport scroll
// animation, observers, then frame tasks. All of it happens on the goroutine
// that calls Update or Step.
//
// [Ebitengine]: https://ebitengine.org
package kinetic
