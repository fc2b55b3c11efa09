package core

// Color is a foreground colour for a screen cell. Platforms map it to ANSI
// 256-colour codes (terminal) or RGBA (window).
type Color uint8

// Colours used by the stage.
const (
	ColorDefault Color = iota
	ColorInk           // player and HUD text
	ColorGround
	ColorCactus
	ColorCloud
	ColorHurt
	ColorAccent // highlighted menu buttons, congratulations banner
	ColorMuted
)
