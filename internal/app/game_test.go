package app

import (
	"errors"
	"path/filepath"
	"strconv"
	"testing"

	"math-defense/internal/component"
	"math-defense/internal/defs"
	"math-defense/internal/event"
	"math-defense/internal/input"
	"math-defense/internal/system"
	"math-defense/internal/utils"
	"math-defense/pkg/logger"

	logtest "github.com/sirupsen/logrus/hooks/test"
)

type failingStore struct{ calls int }

func (s *failingStore) Save(defs.Catalog) error {
	s.calls++
	return errors.New("disk full")
}

func newTestGame(t *testing.T, catalog defs.Catalog, store CatalogSaver) (*Game, *event.Recorder) {
	t.Helper()
	events := event.NewDispatcher()
	rec := &event.Recorder{}
	events.Subscribe(rec, event.AllTypes...)
	return NewGame(catalog, store, utils.NewPRNGService(42), events), rec
}

func typeAnswer(g *Game, answer int) {
	for _, ch := range strconv.Itoa(answer) {
		g.TypeChar(ch)
	}
	g.HandleKey(input.KeyEnter)
}

func killAll(g *Game) {
	for i := range g.Aliens {
		g.Aliens[i].State = component.AlienDead
	}
}

func TestStraightShotClearsWave(t *testing.T) {
	g, rec := newTestGame(t, defs.DefaultCatalog(), nil)
	g.SetDifficulty(0)
	g.StartLevel(0)

	if len(g.Aliens) != 5 {
		t.Fatalf("Expected 5 aliens, got %d", len(g.Aliens))
	}

	for kill := 0; kill < 5; kill++ {
		aliens := g.Aliens
		target := g.Target
		if target == system.NoTarget {
			t.Fatalf("No target before kill %d", kill)
		}
		typeAnswer(g, aliens[target].Answer)
		if aliens[target].State != component.AlienExploding {
			t.Fatalf("Kill %d: target state %v, want Exploding", kill, aliens[target].State)
		}
		if g.Turret.State != component.TurretFiring {
			t.Fatalf("Kill %d: turret not firing", kill)
		}

		for frame := 0; frame < 100 && aliens[target].State != component.AlienDead; frame++ {
			if outcome := g.UpdateRound(16); outcome != RoundContinues {
				t.Fatalf("Unexpected outcome %v during kill %d", outcome, kill)
			}
		}
		if aliens[target].State != component.AlienDead {
			t.Fatalf("Kill %d: alien never died", kill)
		}
	}

	if g.Wave != 1 {
		t.Fatalf("Wave = %d, want 1", g.Wave)
	}
	texts := g.Messages.Texts()
	if len(texts) < 2 || texts[len(texts)-2] != "Wave Eliminated!" || texts[len(texts)-1] != "Wave 2" {
		t.Errorf("Unexpected banners: %v", texts)
	}
	if rec.Count(event.AlienHit) != 5 || rec.Count(event.AnswerRejected) != 0 {
		t.Errorf("Hits = %d, rejections = %d", rec.Count(event.AlienHit), rec.Count(event.AnswerRejected))
	}
	if g.Turret.State != component.TurretResting {
		t.Error("Turret should rest after the last explosion")
	}
}

func TestWrongAnswer(t *testing.T) {
	g, rec := newTestGame(t, defs.DefaultCatalog(), nil)
	g.StartLevel(0)
	target := g.Target

	typeAnswer(g, 999)

	if rec.Count(event.AnswerRejected) != 1 {
		t.Errorf("Expected one rejection, got %d", rec.Count(event.AnswerRejected))
	}
	if g.Turret.Input != "" {
		t.Errorf("Buffer not cleared: %q", g.Turret.Input)
	}
	if g.Target != target {
		t.Errorf("Target changed from %d to %d", target, g.Target)
	}
	for i, a := range g.Aliens {
		if a.State != component.AlienAlive {
			t.Errorf("Alien %d changed state to %v", i, a.State)
		}
	}
}

func TestEmptyBufferKeys(t *testing.T) {
	g, rec := newTestGame(t, defs.DefaultCatalog(), nil)
	g.StartLevel(0)

	g.HandleKey(input.KeyBackspace)
	g.HandleKey(input.KeyEnter)

	if rec.Count(event.AnswerRejected) != 1 {
		t.Errorf("Enter on empty buffer should be rejected, got %d rejections", rec.Count(event.AnswerRejected))
	}
	if g.Turret.State != component.TurretResting {
		t.Error("Turret fired on empty buffer")
	}
}

func TestLifeLoss(t *testing.T) {
	g, rec := newTestGame(t, defs.DefaultCatalog(), nil)
	g.StartLevel(0)
	g.Aliens[0].Y = 0.91

	if outcome := g.UpdateRound(16); outcome != RoundTurretHit {
		t.Fatalf("Outcome = %v, want RoundTurretHit", outcome)
	}

	outcome := RoundContinues
	elapsed := 0.0
	for outcome == RoundContinues && elapsed < 2000 {
		outcome = g.UpdateDying(16)
		elapsed += 16
	}
	if outcome != RoundRespawned {
		t.Fatalf("Outcome after %vms = %v, want RoundRespawned", elapsed, outcome)
	}
	if elapsed > 1500+16 {
		t.Errorf("Dying took %vms", elapsed)
	}
	if g.Lives != 1 || g.Wave != 0 || len(g.Aliens) != 5 {
		t.Errorf("Lives=%d Wave=%d Aliens=%d", g.Lives, g.Wave, len(g.Aliens))
	}
	if rec.Count(event.ExplosionIgnited) != 20 {
		t.Errorf("Ignited %d turret explosions, want 20", rec.Count(event.ExplosionIgnited))
	}
	texts := g.Messages.Texts()
	if texts[len(texts)-2] != "1 Gun Left" || texts[len(texts)-1] != "Restarting Wave 1" {
		t.Errorf("Unexpected banners: %v", texts)
	}
}

func TestLastLifeBanners(t *testing.T) {
	tests := []struct {
		name    string
		lives   int
		outcome Outcome
		banner  string
	}{
		{"FinalGun", 1, RoundRespawned, "Final Gun! Good Luck!"},
		{"OutOfLives", 0, RoundLost, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, defs.DefaultCatalog(), nil)
			g.StartLevel(0)
			g.Lives = tt.lives

			outcome := RoundContinues
			for i := 0; i < 200 && outcome == RoundContinues; i++ {
				outcome = g.UpdateDying(16)
			}
			if outcome != tt.outcome {
				t.Fatalf("Outcome = %v, want %v", outcome, tt.outcome)
			}
			if g.Lives < 0 {
				t.Errorf("Lives went negative: %d", g.Lives)
			}
			if tt.banner == "" {
				return
			}
			texts := g.Messages.Texts()
			if texts[len(texts)-2] != tt.banner {
				t.Errorf("Unexpected banners: %v", texts)
			}
		})
	}
}

func TestUnlockPersistsAcrossReload(t *testing.T) {
	store := defs.NewFileStore(filepath.Join(t.TempDir(), "levels.json"))
	g, rec := newTestGame(t, store.LoadOrCreate(), store)
	g.SetDifficulty(1)
	g.StartLevel(0)

	outcome := RoundContinues
	for i := 0; i < 10 && outcome == RoundContinues; i++ {
		killAll(g)
		outcome = g.UpdateRound(16)
	}
	if outcome != RoundLevelComplete {
		t.Fatalf("Outcome = %v, want RoundLevelComplete", outcome)
	}
	if g.Level != 1 || g.Wave != 0 {
		t.Errorf("Level=%d Wave=%d after clearing level 0", g.Level, g.Wave)
	}
	if !g.Catalog[1].Unlocked[1] {
		t.Fatal("Level 1 not unlocked at difficulty 1")
	}
	if rec.Count(event.LevelCleared) != 1 || rec.Count(event.LevelUnlocked) != 1 {
		t.Errorf("Events: %+v", rec.Events)
	}

	reloaded, err := store.Load()
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if !reloaded[1].Unlocked[1] {
		t.Error("Unlock not persisted")
	}
	if reloaded[1].Unlocked[2] {
		t.Error("Unlock leaked to another difficulty")
	}
}

func TestUnlockSurvivesSaveFailure(t *testing.T) {
	store := &failingStore{}
	g, _ := newTestGame(t, defs.DefaultCatalog(), store)
	g.StartLevel(0)
	g.Wave = len(g.Catalog[0].Waves) - 1
	killAll(g)

	if outcome := g.UpdateRound(16); outcome != RoundLevelComplete {
		t.Fatalf("Outcome = %v, want RoundLevelComplete", outcome)
	}
	if store.calls != 1 || !g.Catalog[1].Unlocked[0] {
		t.Errorf("Save calls = %d, unlocked = %v", store.calls, g.Catalog[1].Unlocked)
	}
}

func TestFinalLevelWins(t *testing.T) {
	g, rec := newTestGame(t, defs.DefaultCatalog(), nil)
	last := len(g.Catalog) - 1
	g.StartLevel(last)
	g.Wave = len(g.Catalog[last].Waves) - 1
	killAll(g)

	if outcome := g.UpdateRound(16); outcome != RoundWon {
		t.Fatalf("Outcome = %v, want RoundWon", outcome)
	}
	if rec.Count(event.GameWon) != 1 {
		t.Error("GameWon not dispatched")
	}
}

func TestZeroShipWaveAdvancesImmediately(t *testing.T) {
	catalog := defs.Catalog{{
		Title:          "Empty",
		BackgroundFile: "earth",
		Unlocked:       defs.UnlockFlags{true, true, true, true},
		Waves: []defs.Wave{
			{Groups: []defs.WaveGroup{{Operation: defs.Add, Speed: 1, MinNumber: 0, MaxNumber: 5, NumShips: 0}}},
			{Groups: []defs.WaveGroup{{Operation: defs.Add, Speed: 1, MinNumber: 0, MaxNumber: 5, NumShips: 2}}},
		},
	}}
	g, _ := newTestGame(t, catalog, nil)
	g.StartLevel(0)
	if len(g.Aliens) != 0 || g.Target != system.NoTarget {
		t.Fatalf("Expected empty wave, got %d aliens target %d", len(g.Aliens), g.Target)
	}

	if outcome := g.UpdateRound(16); outcome != RoundContinues {
		t.Fatalf("Outcome = %v", outcome)
	}
	if g.Wave != 1 || len(g.Aliens) != 2 {
		t.Errorf("Wave=%d Aliens=%d, want wave 1 with 2 aliens", g.Wave, len(g.Aliens))
	}
}

func TestDeadAlienBelowLineDoesNotBreach(t *testing.T) {
	g, _ := newTestGame(t, defs.DefaultCatalog(), nil)
	g.StartLevel(0)
	g.Aliens[0].Y = 0.95
	g.Aliens[0].State = component.AlienDead

	if outcome := g.UpdateRound(16); outcome != RoundContinues {
		t.Errorf("Outcome = %v, want RoundContinues", outcome)
	}
	if g.Target == 0 {
		t.Error("Dead alien elected as target")
	}
}

func TestWarpTransition(t *testing.T) {
	g, rec := newTestGame(t, defs.DefaultCatalog(), nil)
	g.StartLevel(0)
	g.Level = 1
	g.StartWarp()
	if rec.Count(event.WarpStarted) != 1 {
		t.Error("WarpStarted not dispatched")
	}

	elapsed := 0.0
	for elapsed < 2984 {
		elapsed += 16
		if g.UpdateTransition(elapsed, 16) {
			t.Fatalf("Transition finished early at %vms", elapsed)
		}
	}
	if g.Turret.Y >= 0.9 {
		t.Errorf("Turret did not rise: %v", g.Turret.Y)
	}
	if !g.UpdateTransition(elapsed+16, 16) {
		t.Fatal("Transition did not finish at 3000ms")
	}
	if g.Background.Key != g.Catalog[1].BackgroundFile || g.Turret.Y != 0.9 {
		t.Errorf("Background=%q TurretY=%v", g.Background.Key, g.Turret.Y)
	}
	texts := g.Messages.Texts()
	if texts[len(texts)-1] != "Wave 1" {
		t.Errorf("Unexpected banners: %v", texts)
	}
}

func TestWaveClearingKillBeatsSameFrameBreach(t *testing.T) {
	catalog := defs.Catalog{{
		Title:          "Single",
		BackgroundFile: "earth",
		Unlocked:       defs.UnlockFlags{true, true, true, true},
		Waves: []defs.Wave{
			{Groups: []defs.WaveGroup{{Operation: defs.Add, Speed: 1, MinNumber: 0, MaxNumber: 5, NumShips: 1}}},
			{Groups: []defs.WaveGroup{{Operation: defs.Add, Speed: 1, MinNumber: 0, MaxNumber: 5, NumShips: 1}}},
		},
	}}
	tests := []struct {
		name      string
		elapsed   float64
		outcome   Outcome
		wantWave  int
		wantState component.AlienState
	}{
		{"ExplosionEndsThisFrame", 499, RoundContinues, 1, component.AlienDead},
		{"ExplosionStillBurning", 0, RoundTurretHit, 0, component.AlienExploding},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, _ := newTestGame(t, catalog, nil)
			g.StartLevel(0)
			if len(g.Aliens) != 1 {
				t.Fatalf("Expected one alien, got %d", len(g.Aliens))
			}
			alien := &g.Aliens[0]
			alien.Y = 0.8999
			alien.Hit()
			alien.Explosion.Elapsed = tt.elapsed

			outcome := g.UpdateRound(16)
			if outcome != tt.outcome || g.Wave != tt.wantWave {
				t.Errorf("Outcome = %v wave = %d, want %v wave = %d", outcome, g.Wave, tt.outcome, tt.wantWave)
			}
			if tt.wantWave == 0 && alien.State != tt.wantState {
				t.Errorf("Alien state = %v, want %v", alien.State, tt.wantState)
			}
		})
	}
}

func TestCorrectAnswerOnExplodingTargetFiresAgain(t *testing.T) {
	g, rec := newTestGame(t, defs.DefaultCatalog(), nil)
	g.StartLevel(0)
	target := g.Target
	answer := g.Aliens[target].Answer

	typeAnswer(g, answer)
	g.UpdateRound(16)
	elapsed := g.Aliens[target].Explosion.Elapsed

	typeAnswer(g, answer)
	if rec.Count(event.AlienHit) != 2 || rec.Count(event.AnswerRejected) != 0 {
		t.Errorf("Hits = %d, rejections = %d", rec.Count(event.AlienHit), rec.Count(event.AnswerRejected))
	}
	if g.Turret.State != component.TurretFiring || g.Target != target {
		t.Errorf("Turret state = %v target = %d", g.Turret.State, g.Target)
	}
	if a := g.Aliens[target]; a.State != component.AlienExploding || a.Explosion.Elapsed != elapsed {
		t.Errorf("Explosion restarted: state = %v elapsed = %v, want %v", a.State, a.Explosion.Elapsed, elapsed)
	}
}

func TestLevelLogFieldsAvoidReservedKeys(t *testing.T) {
	hook := logtest.NewLocal(logger.Log)
	defer hook.Reset()

	g, _ := newTestGame(t, defs.DefaultCatalog(), nil)
	g.StartLevel(0)
	g.Lives = 0
	for i := 0; i < 200; i++ {
		if g.UpdateDying(16) == RoundLost {
			break
		}
	}

	found := 0
	for _, entry := range hook.AllEntries() {
		if entry.Message != "Level started" && entry.Message != "Out of lives" {
			continue
		}
		found++
		if _, ok := entry.Data["level"]; ok {
			t.Errorf("%q uses the reserved \"level\" field", entry.Message)
		}
		if entry.Data["level_title"] != g.Catalog[0].Title {
			t.Errorf("%q level_title = %v", entry.Message, entry.Data["level_title"])
		}
	}
	if found != 2 {
		t.Errorf("Expected two level log entries, got %d", found)
	}
}
