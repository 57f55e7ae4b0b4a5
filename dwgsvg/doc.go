// Package dwgsvg renders a read-only dwgmodel.Model into an SVG 1.1
// document: entity dispatch, OCS/WCS/viewport coordinate transforms,
// block-reference instancing via <defs>/<use>, two-pass extents
// computation, and the per-entity translation rules for the supported
// 2D entity subset.
//
// A render call is synchronous and single-threaded. Per-call state
// (viewport bounds, options, the id counter, and an optional logger)
// lives in a renderContext value created fresh by Render/RenderBytes
// and threaded, with the writer, explicitly through every emitter;
// no package-level mutable state exists, so concurrent calls never
// interfere with each other.
package dwgsvg
