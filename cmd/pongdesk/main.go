// Command pongdesk runs a solopong session in a local window. The mouse
// drives the left paddle.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lguibr/solopong/game"
	"github.com/lguibr/solopong/internal/log"
	"github.com/lguibr/solopong/utils"
)

// Same palette and shapes as the browser page.
var (
	backgroundColor = color.NRGBA{0, 0, 0, 255}
	playerColor     = color.NRGBA{0, 255, 0, 255}
	opponentColor   = color.NRGBA{255, 0, 0, 255}
	ballColor       = color.NRGBA{255, 255, 255, 255}
	netColor        = color.NRGBA{136, 136, 136, 255}
)

const (
	paddleRadius = 8
	netDash      = 10
	netGap       = 15
)

// drawPaddle fills p with its corners rounded by paddleRadius, shrunk to
// fit narrow paddles.
func drawPaddle(screen *ebiten.Image, p game.Rect, clr color.Color) {
	x, y, w, h := float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height)
	r := float32(math.Min(paddleRadius, math.Min(p.Width, p.Height)/2))
	if w > 2*r {
		vector.DrawFilledRect(screen, x+r, y, w-2*r, h, clr, true)
	}
	if h > 2*r {
		vector.DrawFilledRect(screen, x, y+r, w, h-2*r, clr, true)
	}
	for _, c := range [][2]float32{
		{x + r, y + r}, {x + w - r, y + r},
		{x + r, y + h - r}, {x + w - r, y + h - r},
	} {
		vector.DrawFilledCircle(screen, c[0], c[1], r, clr, true)
	}
}

type deskGame struct {
	sim        *game.Simulation
	input      *game.InputAdapter
	scoreboard game.Scoreboard
	last       game.Snapshot
	logger     *log.Logger
}

func (g *deskGame) Update() error {
	_, cursorY := ebiten.CursorPosition()
	g.input.OnPointerMove(float64(cursorY))

	dt := time.Second / time.Duration(ebiten.TPS())
	g.last = g.sim.Advance(dt, g.input.Target())
	if g.scoreboard.Record(g.last.Events) {
		score := g.scoreboard.Score()
		g.logger.Debugf("Score %d - %d", score.Player, score.Opponent)
	}
	return nil
}

func (g *deskGame) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	snap := g.last

	cx := float32(snap.Field.CenterX())
	for y := float32(0); y < float32(snap.Field.Height); y += netDash + netGap {
		vector.StrokeLine(screen, cx, y, cx, y+netDash, 1, netColor, false)
	}

	drawPaddle(screen, snap.Player, playerColor)
	drawPaddle(screen, snap.Opponent, opponentColor)
	b := snap.Ball
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Size), float32(b.Size), ballColor, false)

	score := g.scoreboard.Score()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%d  -  %d   rally %d", score.Player, score.Opponent, snap.Rally))
}

func (g *deskGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	field := g.sim.World().Field
	return int(field.Width), int(field.Height)
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger := log.New(os.Stderr, log.LevelFromString(*logLevel))

	cfg := utils.DefaultConfig()
	if *configPath != "" {
		loaded, err := utils.LoadConfig(*configPath)
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	sim, err := game.NewSimulation(cfg, nil)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
	g := &deskGame{
		sim:    sim,
		input:  game.NewInputAdapter(cfg),
		last:   sim.Snapshot(),
		logger: logger,
	}

	if cfg.TickPeriod > 0 {
		ebiten.SetTPS(int(time.Second / cfg.TickPeriod))
	}
	ebiten.SetWindowSize(int(cfg.Width), int(cfg.Height))
	ebiten.SetWindowTitle("solopong")
	if err := ebiten.RunGame(g); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
