package scene

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

const frameMs = 1000.0 / 60.0

type recorder struct {
	cues []runner.Cue
}

func (r *recorder) Play(c runner.Cue) { r.cues = append(r.cues, c) }

func newTestStage(t *testing.T) *Stage {
	t.Helper()
	st := NewStage(config.DefaultRunnerConfig(), nil)
	st.player.SetEnabled(true)
	st.player.SetGravity(1000)
	return st
}

func settle(st *Stage) {
	for i := 0; i < 200 && !st.player.Grounded(); i++ {
		st.Step(frameMs)
	}
}

func TestPlayerFallsToGround(t *testing.T) {
	st := newTestStage(t)
	require.False(t, st.player.Grounded())

	settle(st)

	assert.True(t, st.player.Grounded())
	assert.Equal(t, 300.0, st.player.Box().Bottom())
	assert.Zero(t, st.player.vy)
}

func TestJumpLeavesGroundAndLands(t *testing.T) {
	st := newTestStage(t)
	settle(st)

	st.player.SetVelocityY(-1600)
	st.Step(frameMs)
	assert.False(t, st.player.Grounded())
	assert.Less(t, st.player.Box().Bottom(), 300.0)

	for i := 0; i < 600 && !st.player.Grounded(); i++ {
		st.Step(frameMs)
		assert.GreaterOrEqual(t, st.player.Box().Y, 0.0, "player stays below the top of the world")
	}
	assert.True(t, st.player.Grounded())
}

func TestDisabledPlayerDoesNotMove(t *testing.T) {
	st := newTestStage(t)
	st.player.SetEnabled(false)
	_, y := st.player.Position()

	st.Step(500)

	_, got := st.player.Position()
	assert.Equal(t, y, got)
}

func TestPausedClockFreezesEverything(t *testing.T) {
	st := newTestStage(t)
	_, y := st.player.Position()

	st.PauseClock()
	st.Step(500)
	_, got := st.player.Position()
	assert.Equal(t, y, got)
	assert.Equal(t, 0, st.AnimFrame())

	st.ResumeClock()
	st.Step(frameMs)
	_, got = st.player.Position()
	assert.Greater(t, got, y)
}

func TestAnimationFrames(t *testing.T) {
	st := newTestStage(t)

	assert.Equal(t, 0, st.AnimFrame())
	st.Step(100)
	assert.Equal(t, 1, st.AnimFrame())
	st.Step(100)
	assert.Equal(t, 0, st.AnimFrame())

	st.PauseAnimations()
	st.Step(100)
	assert.Equal(t, 0, st.AnimFrame())
	st.ResumeAnimations()
	st.Step(100)
	assert.Equal(t, 1, st.AnimFrame())
}

func TestCollisionUsesInsetHitbox(t *testing.T) {
	st := newTestStage(t)
	settle(st)
	hits := 0
	st.OnCollide(func() { hits++ })

	// Player spans x 200..244; the hitbox is inset by 4
	st.SpawnObstacle(1, 241, 300)
	st.Step(frameMs)
	assert.Zero(t, hits)

	st.SpawnObstacle(1, 230, 300)
	st.Step(frameMs)
	assert.Equal(t, 1, hits)
}

func TestCollisionIgnoresDestroyedObstacles(t *testing.T) {
	st := newTestStage(t)
	settle(st)
	hits := 0
	st.OnCollide(func() { hits++ })

	o := st.SpawnObstacle(2, 210, 300)
	o.Destroy()
	st.Step(frameMs)

	assert.Zero(t, hits)
	assert.Empty(t, st.Obstacles())
}

func TestSpawnObstacleBottomAligned(t *testing.T) {
	st := newTestStage(t)

	e := st.SpawnObstacle(5, 750, 300)

	x, y := e.Position()
	w, h := e.Size()
	assert.Equal(t, 750.0, x)
	assert.Equal(t, 204.0, y)
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 96.0, h)
	assert.Equal(t, 5, e.(*Sprite).Variant())
}

func TestScrollGroundWrapsClouds(t *testing.T) {
	st := newTestStage(t)
	start := st.clouds[0].x

	st.ScrollGround(8)
	assert.Equal(t, 8.0, st.groundX)
	assert.Equal(t, start-2, st.clouds[0].x)

	for i := 0; i < 1000; i++ {
		st.ScrollGround(20)
	}
	assert.Less(t, st.groundX, 800.0)
	for _, c := range st.clouds {
		assert.GreaterOrEqual(t, c.x+c.w, 0.0)
	}
}

func TestPlaySoundWithoutSounder(t *testing.T) {
	st := newTestStage(t)
	assert.NotPanics(t, func() { st.PlaySound(runner.CueJump) })

	rec := &recorder{}
	st.sounder = rec
	st.PlaySound(runner.CueHit)
	assert.Equal(t, []runner.Cue{runner.CueHit}, rec.cues)
}

func TestRenderScalesWorld(t *testing.T) {
	st := newTestStage(t)
	settle(st)
	st.SetSceneryVisible(true)
	st.player.SetVisible(true)
	st.SpawnObstacle(1, 400, 300)
	st.SetBackground("#AEE7FF")
	st.player.SetPose(runner.PoseRunning)
	st.animTime = 0

	// 80x32 cells at 800x320 world units is 10 units per cell
	dst := core.NewScreen(80, 32)
	st.Render(dst)

	assert.Equal(t, "#AEE7FF", dst.Background())
	assert.Equal(t, GroundMark, dst.Get(0, 30))
	assert.Equal(t, GroundRune, dst.Get(1, 30))

	cell := dst.GetCell(41, 25)
	assert.Equal(t, CactusRune, cell.Rune)
	assert.Equal(t, core.ColorCactus, cell.Color)
	assert.Equal(t, ' ', dst.Get(41, 22), "obstacle is 7 cells tall")

	assert.Equal(t, BodyRune, dst.Get(21, 25))
	assert.Equal(t, HeadRune, dst.Get(23, 20))
	assert.Equal(t, Leg1Rune, dst.Get(20, 29))
}

func TestRenderHidesInvisibleThings(t *testing.T) {
	st := newTestStage(t)
	st.SpawnObstacle(1, 400, 300).Destroy()

	dst := core.NewScreen(80, 32)
	st.Render(dst)

	assert.Empty(t, strings.TrimSpace(dst.String()))
}

func TestRenderHurtPose(t *testing.T) {
	st := newTestStage(t)
	settle(st)
	st.player.SetVisible(true)
	st.player.SetPose(runner.PoseHurt)

	dst := core.NewScreen(80, 32)
	st.Render(dst)

	assert.Equal(t, core.ColorHurt, dst.GetCell(21, 25).Color)
	assert.Equal(t, HurtRune, dst.Get(20, 29))
}

func TestSetPositionClearsGrounded(t *testing.T) {
	st := newTestStage(t)
	settle(st)
	require.True(t, st.player.Grounded())

	st.player.SetPosition(200, 108)
	assert.False(t, st.player.Grounded())

	settle(st)
	assert.True(t, st.player.Grounded())
	assert.Equal(t, 300.0, st.player.Box().Bottom())
}
