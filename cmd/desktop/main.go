package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"wiresim/pkg/circuit"
	"wiresim/pkg/grid"
	"wiresim/pkg/netlist"
	"wiresim/pkg/utils"
)

const (
	tableCols  = 6
	cellWidth  = 120
	cellHeight = 18
	tableRows  = 24

	screenWidth  = tableCols * cellWidth
	screenHeight = tableRows*cellHeight + 20 // wire table + status line

	// Gate evaluations per frame, slow enough to watch the signals
	// propagate through the circuit.
	stepsPerFrame = 2
)

var (
	resolvedColor = color.RGBA{0xE0, 0xE0, 0xE0, 0xFF}
	pendingColor  = color.RGBA{0x60, 0x60, 0x60, 0xFF}
	stuckColor    = color.RGBA{0xE0, 0x40, 0x40, 0xFF}
)

type Game struct {
	design   *circuit.Design
	resolver *circuit.Resolver
	wires    []circuit.Wire // every driven wire, in display order
	paused   bool
	scroll   int // rows scrolled off the top of the table
	err      error
}

func NewGame(design *circuit.Design) *Game {
	return &Game{
		design:   design,
		resolver: circuit.NewResolver(design),
		wires:    drivenWires(design),
	}
}

// drivenWires lists every wire the circuit gives a value to, sorted by
// name for a stable table layout.
func drivenWires(d *circuit.Design) []circuit.Wire {
	wires := make([]circuit.Wire, 0, len(d.Assignments)+len(d.Gates))
	for _, a := range d.Assignments {
		wires = append(wires, a.Wire)
	}
	for _, g := range d.Gates {
		wires = append(wires, g.Out)
	}
	sort.Slice(wires, func(i, j int) bool { return wires[i] < wires[j] })
	return wires
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.resolver = circuit.NewResolver(g.design)
		g.err = nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		maxScroll := (len(g.wires)+tableCols-1)/tableCols - tableRows
		if g.scroll < maxScroll {
			g.scroll++
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		if g.scroll > 0 {
			g.scroll--
		}
	}

	if g.paused || g.err != nil {
		return nil
	}
	for i := 0; i < stepsPerFrame; i++ {
		_, ok, err := g.resolver.Step()
		if err != nil {
			g.err = err
			break
		}
		if !ok {
			break
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	visible := g.wires
	skip := g.scroll * tableCols
	if skip < len(visible) {
		visible = visible[skip:]
	} else {
		visible = nil
	}
	if len(visible) > tableRows*tableCols {
		visible = visible[:tableRows*tableCols]
	}

	face := basicfont.Face7x13
	for i, w := range visible {
		px, py := grid.CellOrigin(i, tableCols, cellWidth, cellHeight)
		if v, ok := g.resolver.Value(w); ok {
			text.Draw(screen, fmt.Sprintf("%s = %d", w, v), face, px+4, py+13, resolvedColor)
		} else {
			text.Draw(screen, fmt.Sprintf("%s = ?", w), face, px+4, py+13, pendingColor)
		}
	}

	status := fmt.Sprintf("%d/%d gates pending", g.resolver.PendingCount(), len(g.design.Gates))
	switch {
	case g.err != nil:
		text.Draw(screen, "UNSATISFIABLE", face, 4, screenHeight-6, stuckColor)
	case g.paused:
		status += "  [paused]"
	case g.resolver.PendingCount() == 0:
		status += "  [done]"
	}
	ebitenutil.DebugPrintAt(screen, status, 120, screenHeight-18)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: desktop <circuit file>")
	}

	fullPath, err := utils.ResolveInputPath(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to locate circuit file: %v", err)
	}
	sourceBytes, err := os.ReadFile(fullPath)
	if err != nil {
		log.Fatalf("Failed to read circuit file: %v", err)
	}

	design, err := netlist.Parse(string(sourceBytes))
	if err != nil {
		log.Fatalf("Parsing failed: %v", err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Wiresim Desktop")

	if err := ebiten.RunGame(NewGame(design)); err != nil {
		log.Fatal(err)
	}
}
