package runner

// Entity is the capability the runner needs from anything the presentation
// layer puts on screen. Positions are top-left corners in world units.
type Entity interface {
	SetVisible(visible bool)
	SetEnabled(enabled bool)
	Position() (x, y float64)
	SetPosition(x, y float64)
	Size() (w, h float64)
	Destroy()
}

// Body is the player entity: an Entity with a vertical physics body.
type Body interface {
	Entity
	Grounded() bool
	SetVelocityY(vy float64)
	SetGravity(g float64)
	SetPose(p Pose)
}

// Stage is the presentation layer driven by the Controller. Collisions come
// back through Controller.OnCollision, wired by whoever builds both.
type Stage interface {
	Player() Body
	// SpawnObstacle creates an obstacle of the given variant whose
	// bottom-left corner is at (x, y).
	SpawnObstacle(variant int, x, y float64) Entity
	SetSceneryVisible(visible bool)
	ScrollGround(dx float64)
	SetBackground(color string)
	ShowPanel(p Panel, visible bool)
	PauseClock()
	ResumeClock()
	PauseAnimations()
	ResumeAnimations()
	PlaySound(c Cue)
}

// Panel is a UI overlay the stage can show or hide.
type Panel int

const (
	PanelMainMenu Panel = iota
	PanelSettings
	PanelPause
	PanelGameOver
	PanelHUD
	PanelCongrats
)

// Panels lists every panel, in draw order.
var Panels = []Panel{PanelHUD, PanelCongrats, PanelMainMenu, PanelSettings, PanelPause, PanelGameOver}

func (p Panel) String() string {
	switch p {
	case PanelMainMenu:
		return "main-menu"
	case PanelSettings:
		return "settings"
	case PanelPause:
		return "pause"
	case PanelGameOver:
		return "game-over"
	case PanelHUD:
		return "hud"
	case PanelCongrats:
		return "congrats"
	default:
		return "unknown"
	}
}

// Pose selects the player's sprite.
type Pose int

const (
	PoseIdle Pose = iota
	PoseRunning
	PoseAirborne
	PoseHurt
)

// Cue is a sound effect request.
type Cue int

const (
	CueJump Cue = iota
	CueHit
)

func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueHit:
		return "hit"
	default:
		return "unknown"
	}
}
