// Package tokenlayer composites layered token and portrait art.
//
// # Overview
//
// A token is a stack of layers. Each Layer is backed by a decoded image or a
// flat color and carries its own transform (position, scale, rotation,
// horizontal mirror), alpha, composite operation and transparent colors.
// Layers can provide masks: the silhouette of a mask-providing layer
// restricts what is visible of the layers below it, or of an explicitly
// chosen set of layers.
//
// # Quick Start
//
//	view := tokenlayer.NewView(400, 400)
//
//	frame, _ := tokenlayer.FromImage(frameImg, 400, 400, tokenlayer.Transparent, false)
//	frame.SetProvidesMask(true)
//	portrait, _ := tokenlayer.FromImage(portraitImg, 400, 400, tokenlayer.Transparent, false)
//
//	view.Add(portrait)
//	view.Add(frame)
//	view.Redraw()
//	_ = view.Composite().SavePNG("token.png")
//
// # Masks
//
// A layer's baseline mask is traced from the alpha channel of its source
// with a marching-squares walk (see ExtractContourMask), or produced by a
// RayMasker when Config.UseRayCastMask is set. The mask is reprojected with
// the same affine as the layer's pixels, so the rendered mask stays
// registered with what is displayed. Hand-painted masks installed with
// ApplyCustomMask take precedence until Reset or ResetMasks.
//
// # Drawing
//
// Context offers the small canvas-like drawing API the engine is built on:
// a transformation matrix with Save/Restore, a global alpha and the canvas
// composite operations (CompositeOp). Like a canvas, operations such as
// source-in affect the whole target, not only the drawn area.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Rotations are clockwise on screen
//
// # Logging
//
// The package is silent by default. Use SetLogger to receive debug records
// about mask creation and redraws.
package tokenlayer
