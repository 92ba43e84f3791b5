package visualization

import (
	"fmt"
	"image/color"
	"log"

	"lake-sim/internal/common"
	"lake-sim/internal/simulation"
	"lake-sim/internal/viewport"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	padding      = 10.0 // free space around the lake
	statusHeight = 20   // status bar below the lake
	glyphWidth   = 6    // debug font
	glyphHeight  = 16
)

var (
	movingBoatColor   = color.RGBA{56, 56, 56, 255}
	sunkBoatColor     = color.RGBA{24, 94, 163, 255}
	stuckBoatColor    = color.RGBA{197, 37, 41, 255}
	selectedBoatColor = color.RGBA{35, 172, 11, 255}
	lakeColor         = color.RGBA{196, 224, 234, 255}
	lineColor         = color.RGBA{180, 215, 225, 255}
	shoreColor        = color.RGBA{120, 160, 175, 255}
)

// Renderer implements ebiten.Game: it steps the simulation once per tick while boats
// move and lets the user steer boats with the mouse.
type Renderer struct {
	sim       *simulation.Simulation
	projector viewport.Projector
	picker    *viewport.Picker

	screenWidth  int
	screenHeight int
}

// NewRenderer creates a renderer showing the lake of sim at one pixel per unit.
func NewRenderer(sim *simulation.Simulation) (*Renderer, error) {
	lake := sim.GetLake()
	w := int(lake.GetWidth() + 2*padding)
	h := int(lake.GetHeight() + 2*padding)

	projector, err := viewport.NewAffineProjector(lake.GetWidth(), lake.GetHeight(), float64(w), float64(h), padding)
	if err != nil {
		return nil, err
	}
	return &Renderer{
		sim:          sim,
		projector:    projector,
		picker:       viewport.NewPicker(lake),
		screenWidth:  w,
		screenHeight: h + statusHeight,
	}, nil
}

// WindowSize returns the size the window should be opened with.
func (r *Renderer) WindowSize() (int, int) {
	return r.screenWidth, r.screenHeight
}

// Update is called every tick.
func (r *Renderer) Update() error {
	r.handleMouse()
	if !r.sim.GetLake().HasMovement() {
		return nil
	}
	return r.sim.Step()
}

func (r *Renderer) handleMouse() {
	pressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	released := inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	if !pressed && !released {
		return
	}
	x, y := ebiten.CursorPosition()
	p := r.projector.ToLake(float64(x), float64(y))

	if pressed {
		r.picker.Press(p)
	}
	if released {
		if _, err := r.picker.Release(p); err != nil {
			log.Printf("steer: %v", err)
		}
	}
}

func (r *Renderer) boatColor(b *simulation.Boat) color.Color {
	switch b.GetState() {
	case simulation.Sunk:
		return sunkBoatColor
	case simulation.Stuck:
		return stuckBoatColor
	default:
		if b == r.picker.Selected() {
			return selectedBoatColor
		}
		return movingBoatColor
	}
}

// Draw is called every frame to render the lake.
func (r *Renderer) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	lake := r.sim.GetLake()

	left, top := r.projector.ToScreen(common.NewPoint(-lake.GetWidth()/2, lake.GetHeight()/2))
	right, bottom := r.projector.ToScreen(common.NewPoint(lake.GetWidth()/2, -lake.GetHeight()/2))
	vector.DrawFilledRect(screen, float32(left), float32(top), float32(right-left), float32(bottom-top), lakeColor, false)
	vector.StrokeRect(screen, float32(left), float32(top), float32(right-left), float32(bottom-top), 1, shoreColor, false)

	// axes through the lake center
	cx, cy := r.projector.ToScreen(common.Origin())
	vector.StrokeLine(screen, float32(cx), float32(top), float32(cx), float32(bottom), 1, lineColor, false)
	vector.StrokeLine(screen, float32(left), float32(cy), float32(right), float32(cy), 1, lineColor, false)

	scale := r.projector.Scale()
	for _, b := range lake.GetBoats() {
		pos, err := b.GetPosition()
		if err != nil {
			continue
		}
		x, y := r.projector.ToScreen(pos)
		radius := b.GetRadius() * scale

		label := b.GetName()
		if b.IsMoving() {
			label += " @ " + common.Format(b.GetSpeed(), 1) + " px/s"
		}
		ebitenutil.DebugPrintAt(screen, label, int(x)-len(label)*glyphWidth/2, int(y-radius)-5-glyphHeight)

		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), r.boatColor(b), true)
	}

	ebitenutil.DebugPrintAt(screen, r.sim.Status(), 4, r.screenHeight-statusHeight+2)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f, TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 4, 0)
}

// Layout keeps the window at the lake size regardless of the outside size.
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.screenWidth, r.screenHeight
}

