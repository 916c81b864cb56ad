// Package crashit is a small shoot-the-asteroids game that exercises the
// scenegraph package: deferred tree changes from Update, z-ordered drawing,
// touch hooks and node-bound tweens.
package crashit

import (
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/scenegraph"
)

// Render layers.
const (
	zStars    = 0
	zAsteroid = 1
	zBullet   = 2
	zShuttle  = 3
	zHUD      = 10
)

const (
	shuttleWidth  = 24
	shuttleHeight = 32
	flameHeight   = 8
	bulletWidth   = 3
	bulletHeight  = 8
	minAsteroid   = 14
	maxAsteroid   = 30
	hudFontSize   = 14
)

var (
	colorHull     = scenegraph.Color{R: 0.75, G: 0.8, B: 0.9, A: 1}
	colorFlame    = scenegraph.Color{R: 1, G: 0.55, B: 0.1, A: 1}
	colorBullet   = scenegraph.Color{R: 1, G: 0.95, B: 0.4, A: 1}
	colorAsteroid = scenegraph.Color{R: 0.55, G: 0.45, B: 0.4, A: 1}
	colorStar     = scenegraph.Color{R: 0.7, G: 0.7, B: 0.8, A: 1}
)

// ScoreKeeper stores the best score across runs.
type ScoreKeeper interface {
	Best() int
	SaveBest(score int) (bool, error)
}

// body is a moving rectangle in the scene: a bullet or an asteroid.
type body struct {
	node  *scenegraph.Node
	shape *scenegraph.RectShape
	fall  *scenegraph.TweenGroup // asteroids only
	dead  bool
}

// Game is the scene behavior. All methods run on the scene loop goroutine.
type Game struct {
	cfg    Config
	rng    *rand.Rand
	scores ScoreKeeper

	size scenegraph.Size

	shuttle *scenegraph.Node
	hull    *scenegraph.RectShape
	flame   *scenegraph.RectShape
	glide   *scenegraph.TweenGroup
	gliding bool

	hud *scenegraph.TextLabel

	bullets   []*body
	asteroids []*body
	dead      []*scenegraph.Node

	defense int
	score   int
	rounds  int
	shots   int

	lastTick  time.Time
	lastShot  time.Time
	lastSpawn time.Time
}

// NewGame creates the behavior. A nil rng seeds one from the clock; a nil
// scores keeps the best score for this run only.
func NewGame(cfg Config, scores ScoreKeeper, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	return &Game{
		cfg:     cfg,
		rng:     rng,
		scores:  scores,
		defense: cfg.Player.Defense,
	}
}

// Score returns the current round's score.
func (g *Game) Score() int { return g.score }

// Defense returns the shuttle's remaining hull points.
func (g *Game) Defense() int { return g.defense }

// Shots returns how many trigger pulls actually fired.
func (g *Game) Shots() int { return g.shots }

// Rounds returns how many rounds have ended.
func (g *Game) Rounds() int { return g.rounds }

// Best returns the best score known to the score keeper, or the current score
// when there is no keeper.
func (g *Game) Best() int {
	if g.scores == nil {
		return g.score
	}
	return max(g.scores.Best(), g.score)
}

// Ready builds the static part of the scene.
func (g *Game) Ready(s *scenegraph.Scene) {
	g.size = s.Size()

	stars := scenegraph.NewNode("stars")
	stars.ZOrder = zStars
	for i := 0; i < g.cfg.Stars; i++ {
		d := 1 + g.rng.Float64()
		star, _ := scenegraph.NewRect(fmt.Sprintf("star-%d", i), scenegraph.Rect{
			X:      g.rng.Float64() * g.size.W,
			Y:      g.rng.Float64() * g.size.H,
			Width:  d,
			Height: d,
		}, colorStar)
		star.ZOrder = zStars
		stars.AddChild(star)
	}
	s.AddChild(stars)

	g.shuttle, g.hull = scenegraph.NewRect("shuttle", scenegraph.Rect{
		X:      (g.size.W - shuttleWidth) / 2,
		Y:      g.size.H - shuttleHeight - flameHeight - 16,
		Width:  shuttleWidth,
		Height: shuttleHeight,
	}, colorHull)
	g.shuttle.ZOrder = zShuttle
	var exhaust *scenegraph.Node
	exhaust, g.flame = scenegraph.NewRect("exhaust", scenegraph.Rect{Height: flameHeight}, colorFlame)
	exhaust.ZOrder = zShuttle
	g.shuttle.AddChild(exhaust)
	g.placeFlame()
	s.AddChild(g.shuttle)

	font, err := scenegraph.LoadFont(goregular.TTF, hudFontSize)
	if err != nil {
		log.Printf("[crashit] Warning: %v (using the debug font)", err)
	}
	var hud *scenegraph.Node
	hud, g.hud = scenegraph.NewTextLabel("hud", font, scenegraph.Vec2{X: 48, Y: 4}, "")
	hud.ZOrder = zHUD
	s.AddChild(hud)
	g.updateHUD()
}

// Update advances one frame of gameplay.
func (g *Game) Update(s *scenegraph.Scene, now time.Time) {
	if g.lastTick.IsZero() {
		g.lastTick, g.lastShot, g.lastSpawn = now, now, now
	}
	dt := now.Sub(g.lastTick).Seconds()
	g.lastTick = now

	g.steer(dt)
	g.shoot(s, now)
	g.spawn(s, now)
	g.advance(dt)
	g.collide()
	g.sweep(s)
	if g.defense <= 0 {
		g.endRound(s)
	}
	g.updateHUD()
}

// TouchDown starts gliding the shuttle toward the touch.
func (g *Game) TouchDown(pos scenegraph.Vec2) {
	g.gliding = true
	g.glideTo(pos.X)
}

// TouchMove retargets the glide while the finger is down.
func (g *Game) TouchMove(pos scenegraph.Vec2) {
	if g.gliding {
		g.glideTo(pos.X)
	}
}

// TouchUp stops the shuttle where it is.
func (g *Game) TouchUp(scenegraph.Vec2) {
	g.gliding = false
	g.glide = nil
}

func (g *Game) glideTo(x float64) {
	if g.hull == nil {
		return
	}
	tx := min(max(x-shuttleWidth/2, 0), g.size.W-shuttleWidth)
	g.glide = scenegraph.TweenRectPosition(g.shuttle, &g.hull.Bounds,
		tx, g.hull.Bounds.Y, float32(g.cfg.Glide.Seconds()), ease.OutQuad)
}

func (g *Game) steer(dt float64) {
	if g.glide == nil {
		return
	}
	g.glide.Update(float32(dt))
	if g.glide.Done {
		g.glide = nil
	}
	g.placeFlame()
}

func (g *Game) placeFlame() {
	b := g.hull.Bounds
	g.flame.Bounds = scenegraph.Rect{
		X:      b.X + b.Width/4,
		Y:      b.Y + b.Height,
		Width:  b.Width / 2,
		Height: flameHeight,
	}
}

// shoot pulls the trigger once per shoot interval; each pull fires with the
// configured chance.
func (g *Game) shoot(s *scenegraph.Scene, now time.Time) {
	if now.Sub(g.lastShot) < g.cfg.Player.ShootInterval {
		return
	}
	g.lastShot = now
	if g.rng.IntN(100) >= g.cfg.Player.FireChance {
		return
	}
	g.shots++
	hb := g.hull.Bounds
	node, shape := scenegraph.NewRect("bullet", scenegraph.Rect{
		X:      hb.X + (hb.Width-bulletWidth)/2,
		Y:      hb.Y - bulletHeight,
		Width:  bulletWidth,
		Height: bulletHeight,
	}, colorBullet)
	node.ZOrder = zBullet
	s.AddChild(node)
	g.bullets = append(g.bullets, &body{node: node, shape: shape})
}

func (g *Game) spawn(s *scenegraph.Scene, now time.Time) {
	if now.Sub(g.lastSpawn) < g.cfg.AsteroidEvery {
		return
	}
	g.lastSpawn = now
	d := minAsteroid + g.rng.Float64()*(maxAsteroid-minAsteroid)
	x := g.rng.Float64() * (g.size.W - d)
	node, shape := scenegraph.NewRect("asteroid", scenegraph.Rect{X: x, Y: -d, Width: d, Height: d}, colorAsteroid)
	node.ZOrder = zAsteroid
	s.AddChild(node)
	fall := scenegraph.TweenRectPosition(node, &shape.Bounds, x, g.size.H,
		float32(g.cfg.AsteroidFall.Seconds()), ease.InQuad)
	g.asteroids = append(g.asteroids, &body{node: node, shape: shape, fall: fall})
}

func (g *Game) advance(dt float64) {
	for _, b := range g.bullets {
		b.shape.Bounds.Y -= g.cfg.BulletSpeed * dt
		if b.shape.Bounds.Y+b.shape.Bounds.Height < 0 {
			b.dead = true
		}
	}
	for _, a := range g.asteroids {
		a.fall.Update(float32(dt))
		if a.fall.Done {
			a.dead = true
		}
	}
}

func (g *Game) collide() {
	for _, a := range g.asteroids {
		if a.dead {
			continue
		}
		if a.shape.Bounds.Intersects(g.hull.Bounds) {
			a.dead = true
			g.defense -= g.cfg.Player.Attack
			continue
		}
		for _, b := range g.bullets {
			if !b.dead && b.shape.Bounds.Intersects(a.shape.Bounds) {
				a.dead, b.dead = true, true
				g.score++
				break
			}
		}
	}
}

// sweep removes dead bodies from the scene in one batch.
func (g *Game) sweep(s *scenegraph.Scene) {
	g.dead = g.dead[:0]
	g.bullets = g.compact(g.bullets)
	g.asteroids = g.compact(g.asteroids)
	if len(g.dead) > 0 {
		s.RemoveChildren(g.dead)
	}
}

func (g *Game) compact(bodies []*body) []*body {
	n := 0
	for _, b := range bodies {
		if b.dead {
			g.dead = append(g.dead, b.node)
			continue
		}
		bodies[n] = b
		n++
	}
	clear(bodies[n:])
	return bodies[:n]
}

// endRound records the score and clears the field for a fresh round.
func (g *Game) endRound(s *scenegraph.Scene) {
	if g.scores != nil {
		if improved, err := g.scores.SaveBest(g.score); err != nil {
			log.Printf("[crashit] Warning: saving best score: %v", err)
		} else if improved {
			log.Printf("[crashit] New best score: %d", g.score)
		}
	}
	for _, b := range g.bullets {
		b.dead = true
	}
	for _, a := range g.asteroids {
		a.dead = true
	}
	g.sweep(s)
	g.rounds++
	g.score = 0
	g.defense = g.cfg.Player.Defense
}

// SaveScore persists the current score if it beats the best. Call it only
// while the scene loop is stopped.
func (g *Game) SaveScore() error {
	if g.scores == nil {
		return nil
	}
	_, err := g.scores.SaveBest(g.score)
	return err
}

func (g *Game) updateHUD() {
	g.hud.Text = fmt.Sprintf("Score %d  Best %d  Hull %d", g.score, g.Best(), max(g.defense, 0))
}
