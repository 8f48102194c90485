// Package assets loads the resources a render needs from disk: piece sprites
// and the border font.
//
// # Sprites
//
// Each piece mnemonic maps to one image file in a tileset folder. Because
// some file systems ignore case, letters get a prefix: "u" for uppercase and
// "l" for lowercase, followed by the lowercase letter. White king 'K' is
// "uk", black king 'k' is "lk". Other symbols use their lowercase form as-is.
// A ".png" extension is tried when the bare name does not exist.
//
// Sprites must be equal-size squares; their side length becomes the tile
// size of the diagram.
//
// # Fonts
//
// [LoadFont] parses a TrueType font once; [Font.Face] creates faces at any
// pixel size for measuring and drawing labels.
package assets
