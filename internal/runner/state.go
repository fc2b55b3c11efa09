package runner

// Phase is the current named state of the run state machine.
type Phase int

const (
	PhaseMainMenu Phase = iota
	PhaseSettings
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "main-menu"
	case PhaseSettings:
		return "settings"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// RunState is the controller's mutable bookkeeping. Everything except
// HighScore is reset by StartGame.
type RunState struct {
	Phase        Phase
	Score        int
	HighScore    int  // best score this session, never decreases
	NewHighScore bool // set by the game over that beat HighScore
	PauseScore   int  // score captured when the run was paused

	FrameCounter int     // frames since the last score tick
	Frames       int     // frames simulated this run
	Elapsed      float64 // ms simulated this run
	SpawnTimer   float64 // ms accumulated towards the next spawn

	BackgroundIndex   int
	LastBgChangeScore int

	Speed     float64 // current scroll speed, pixels per frame
	Interval  int     // current spawn interval, ms
	Obstacles int     // live obstacles, filled in by Controller.State
}

// RunResult describes a finished run.
type RunResult struct {
	Score        int
	HighScore    int
	NewHighScore bool
	Frames       int
	Elapsed      float64 // ms
	Settings     Settings
}
