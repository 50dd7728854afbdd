package model

// Centralized glyphs for the viewer
// Using simple single-width characters for consistent terminal rendering
const (
	IconPrevious     = "←"
	IconNext         = "→"
	IconSearch       = "⌕"
	IconImageMissing = "✗" // Thin X (image file not found)
	IconImage        = "▣"
	IconPortions     = "×" // Multiplier sign
)
