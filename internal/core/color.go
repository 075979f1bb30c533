package core

// Color is a semantic foreground colour for a screen cell.
// The platform layer decides the concrete terminal colour.
type Color uint8

// Palette used by the neon theme.
const (
	ColorDefault Color = iota
	ColorCyan          // Player, ground line, trail
	ColorMagenta       // Blocks
	ColorRed           // Spikes
	ColorWhite         // Obstacle highlights, overlay text
	ColorGray          // Help text
	ColorGreen         // Audio indicator
	ColorGrid          // Background grid
)
