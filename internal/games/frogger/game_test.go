package frogger

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.ResetWithConfig(config.DefaultFroggerConfig())
	if g.fault != nil {
		t.Fatalf("ResetWithConfig() failed: %v", g.fault)
	}
	return g
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t)
	g2 := newTestGame(t)

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		switch i % 37 {
		case 5:
			input.Set(core.ActionUp)
		case 11:
			input.Set(core.ActionLeft)
		case 23:
			input.Set(core.ActionUp)
			input.Set(core.ActionRight)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots differ: %+v vs %+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestResetIgnoresRuntimeConfig(t *testing.T) {
	small, large := New(), New()
	small.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30})
	large.Reset(core.RuntimeConfig{ScreenW: 200, ScreenH: 60, TickRate: 120})

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		small.Step(input)
		large.Step(input)
	}

	if !reflect.DeepEqual(small.World(), large.World()) {
		t.Error("the world should not depend on the terminal or tick rate")
	}
}

func TestStepAppliesHops(t *testing.T) {
	g := newTestGame(t)

	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	g.Step(input)

	snap := g.Snapshot()
	if snap.PlayerY != 13*testGrid {
		t.Errorf("after one hop y = %v, expected %v", snap.PlayerY, 13*testGrid)
	}
	if snap.Tick != 1 || snap.LastOutcome != OutcomeGrounded {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestStepAppliesRepeatedHops(t *testing.T) {
	g := newTestGame(t)

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	input.Set(core.ActionLeft)
	g.Step(input)

	if got := g.World().Player().X; got != 4*testGrid {
		t.Errorf("after two hops x = %v, expected %v", got, 4*testGrid)
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newTestGame(t)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	res := g.Step(pause)
	if !res.State.Paused {
		t.Fatal("game should be paused")
	}

	before := g.World().Rows()[1].Obstacles[0].X
	move := core.NewInputFrame()
	move.Set(core.ActionUp)
	for i := 0; i < 10; i++ {
		g.Step(move)
	}
	if got := g.World().Rows()[1].Obstacles[0].X; got != before {
		t.Errorf("obstacle moved while paused: %v -> %v", before, got)
	}
	if g.Snapshot().State != StatePaused || g.Snapshot().Tick != 0 {
		t.Errorf("snapshot = %+v, expected paused at tick 0", g.Snapshot())
	}

	res = g.Step(pause)
	if res.State.Paused {
		t.Error("game should resume")
	}
	if g.Snapshot().Tick != 1 {
		t.Errorf("tick = %d, expected 1 after resume", g.Snapshot().Tick)
	}
}

func TestScoringRespawns(t *testing.T) {
	g := newTestGame(t)
	g.world.player = Player{X: 0, Y: testGrid}

	res := g.Step(core.NewInputFrame())
	if res.State.Score != 100 {
		t.Errorf("score = %d, expected 100", res.State.Score)
	}

	snap := g.Snapshot()
	if snap.Crossings != 1 || snap.LastOutcome != OutcomeScored {
		t.Errorf("snapshot = %+v", snap)
	}
	if snap.PlayerX != 6*testGrid || snap.PlayerY != 13*testGrid {
		t.Errorf("player at (%v, %v), expected respawn", snap.PlayerX, snap.PlayerY)
	}
}

func TestDeathsCounted(t *testing.T) {
	g := newTestGame(t)
	g.world.player = Player{X: 160, Y: g.world.rows[3].Y}

	g.Step(core.NewInputFrame())
	if snap := g.Snapshot(); snap.Deaths != 1 || snap.LastOutcome != OutcomeDrowned {
		t.Errorf("snapshot = %+v, expected one drowning", snap)
	}
	if g.State().Score != 0 {
		t.Error("dying should not change the score")
	}
}

func TestBoardFullEndsGame(t *testing.T) {
	g := newTestGame(t)

	var res core.StepResult
	for _, slot := range g.world.GoalSlots() {
		g.world.player = Player{X: float64(slot-1) * testGrid, Y: testGrid}
		res = g.Step(core.NewInputFrame())
	}

	if !res.State.GameOver {
		t.Fatal("game should be over with every slot filled")
	}
	if res.State.Score != 500 {
		t.Errorf("score = %d, expected 500", res.State.Score)
	}

	tick := g.Snapshot().Tick
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != tick {
		t.Error("world advanced after game over")
	}
}

func TestFaultStopsGame(t *testing.T) {
	g := newTestGame(t)
	g.world.rows = g.world.rows[:5]

	res := g.Step(core.NewInputFrame())
	if !errors.Is(res.Err, ErrPlayerOutOfBounds) {
		t.Fatalf("Step() error = %v, expected ErrPlayerOutOfBounds", res.Err)
	}

	res = g.Step(core.NewInputFrame())
	if res.Err == nil {
		t.Error("fault should be reported on every step")
	}
	if g.Snapshot().State != StateFault {
		t.Errorf("state = %v, expected fault", g.Snapshot().State)
	}
}

func TestInvalidConfigIsFault(t *testing.T) {
	cfg := config.DefaultFroggerConfig()
	cfg.Lanes = cfg.Lanes[:3]

	g := New()
	g.ResetWithConfig(cfg)

	res := g.Step(core.NewInputFrame())
	if res.Err == nil {
		t.Error("expected an error for a config with too few lanes")
	}
}

func TestStepBeforeReset(t *testing.T) {
	g := New()
	res := g.Step(core.NewInputFrame())
	if res.Err != nil || res.State.Score != 0 {
		t.Errorf("Step() before Reset = %+v", res)
	}
}

func TestRenderDrawsField(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing score: %q", screen.Row(0))
	}

	// field starts at column 14; player circle covers columns 38-40 of row 14
	for x := 38; x <= 40; x++ {
		if got := screen.Get(x, 14); got != CircleGlyph {
			t.Errorf("cell (%d, 14) = %q, expected player glyph", x, got)
		}
	}
	if got := screen.Get(14, 2); got != RectGlyph {
		t.Errorf("cell (14, 2) = %q, expected the first log", got)
	}
}

func TestHUDShowsBest(t *testing.T) {
	g := newTestGame(t)
	g.SetBest(300)
	g.ResetWithConfig(config.DefaultFroggerConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Best: 300") {
		t.Errorf("HUD should keep the stored best across Reset: %q", screen.Row(0))
	}

	g.score = 700
	g.Render(screen)
	if !strings.Contains(screen.Row(0), "Best: 700") {
		t.Errorf("a higher current score should show as best: %q", screen.Row(0))
	}
}

func TestRenderSmallTerminal(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(40, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "TERMINAL TOO SMALL") {
		t.Error("expected a too-small message")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t)
	g.gameOver = true

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "BOARD CLEARED") {
		t.Error("expected the game over message")
	}
}

func TestRegistered(t *testing.T) {
	if _, err := registry.Lookup("frogger"); err != nil {
		t.Fatalf("frogger should register itself: %v", err)
	}
	game, err := registry.Create("frogger")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if game.ID() != "frogger" || game.Title() != "Frogger" {
		t.Errorf("unexpected game identity %q / %q", game.ID(), game.Title())
	}
}
