// Package terminal runs a render.Game inside a text terminal using tcell.
// Each cell stands for a CellWidth x CellHeight block of logical pixels.
package terminal

import (
	"errors"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/ark/internal/render"
)

const (
	CellWidth  = 8
	CellHeight = 16

	// Terminals only report key presses. A key counts as held until this
	// long after its last press or auto-repeat.
	keyHold = 200 * time.Millisecond
)

// Surface draws onto a tcell screen
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps a screen as a render.Surface
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Size returns the screen size in logical pixels
func (s *Surface) Size() (width, height int) {
	cols, rows := s.screen.Size()
	return cols * CellWidth, rows * CellHeight
}

// Fill paints every cell's background
func (s *Surface) Fill(clr color.Color) {
	s.screen.Fill(' ', tcell.StyleDefault.Background(tcell.FromImageColor(clr)))
}

// FillRect paints the cells whose centers lie inside the rectangle. A
// rectangle too small to cover any center still paints the cell under its
// own center.
func (s *Surface) FillRect(x, y, width, height float32, clr color.Color) {
	style := tcell.StyleDefault.Background(tcell.FromImageColor(clr))
	c0, r0, c1, r1, ok := s.cellSpan(x, y, width, height)
	if !ok {
		s.paint(x+width/2, y+height/2, style)
		return
	}
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			s.screen.SetContent(c, r, ' ', nil, style)
		}
	}
}

// StrokeRect paints the border cells of the rectangle
func (s *Surface) StrokeRect(x, y, width, height, strokeWidth float32, clr color.Color) {
	style := tcell.StyleDefault.Background(tcell.FromImageColor(clr))
	c0, r0, c1, r1, ok := s.cellSpan(x, y, width, height)
	if !ok {
		s.paint(x+width/2, y+height/2, style)
		return
	}
	for c := c0; c <= c1; c++ {
		s.screen.SetContent(c, r0, ' ', nil, style)
		s.screen.SetContent(c, r1, ' ', nil, style)
	}
	for r := r0; r <= r1; r++ {
		s.screen.SetContent(c0, r, ' ', nil, style)
		s.screen.SetContent(c1, r, ' ', nil, style)
	}
}

// FillCircle paints the cells of the circle's bounding square
func (s *Surface) FillCircle(x, y, radius float32, clr color.Color) {
	s.FillRect(x-radius, y-radius, radius*2, radius*2, clr)
}

// DrawText writes text into the cells it starts on, keeping each cell's
// background
func (s *Surface) DrawText(text string, x, y int, clr color.Color) {
	fg := tcell.FromImageColor(clr)
	col, row := x/CellWidth, y/CellHeight
	cols, rows := s.screen.Size()
	if row < 0 || row >= rows {
		return
	}
	for _, ch := range text {
		if col >= cols {
			return
		}
		if col >= 0 {
			_, _, style, _ := s.screen.GetContent(col, row)
			s.screen.SetContent(col, row, ch, nil, style.Foreground(fg))
		}
		col++
	}
}

// cellSpan returns the inclusive cell range whose centers are covered,
// clipped to the screen
func (s *Surface) cellSpan(x, y, width, height float32) (c0, r0, c1, r1 int, ok bool) {
	cols, rows := s.screen.Size()
	c0 = int(math.Ceil(float64(x)/CellWidth - 0.5))
	r0 = int(math.Ceil(float64(y)/CellHeight - 0.5))
	c1 = int(math.Floor(float64(x+width)/CellWidth-0.5))
	r1 = int(math.Floor(float64(y+height)/CellHeight-0.5))
	if c1 < c0 || r1 < r0 {
		return 0, 0, 0, 0, false
	}
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, cols-1), min(r1, rows-1)
	return c0, r0, c1, r1, c0 <= c1 && r0 <= r1
}

func (s *Surface) paint(x, y float32, style tcell.Style) {
	col := int(math.Floor(float64(x) / CellWidth))
	row := int(math.Floor(float64(y) / CellHeight))
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	s.screen.SetContent(col, row, ' ', nil, style)
}

// InputManager turns tcell key events into held and just-pressed keys
type InputManager struct {
	now   time.Time
	until map[render.Key]time.Time
	just  map[render.Key]bool
	quit  bool
}

// NewInputManager creates an input manager with no keys held
func NewInputManager() *InputManager {
	return &InputManager{
		until: make(map[render.Key]time.Time),
		just:  make(map[render.Key]bool),
	}
}

// BeginFrame starts a new tick: just-pressed keys from the last tick expire
func (m *InputManager) BeginFrame(now time.Time) {
	m.now = now
	clear(m.just)
}

// Handle records a tcell event. It returns false for events the input
// manager does not care about.
func (m *InputManager) Handle(ev tcell.Event) bool {
	kev, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	if kev.Key() == tcell.KeyCtrlC {
		m.quit = true
		m.press(render.KeyEscape)
		return true
	}
	key, ok := tcellToKey(kev)
	if !ok {
		return false
	}
	m.press(key)
	return true
}

func (m *InputManager) press(key render.Key) {
	if !m.now.Before(m.until[key]) {
		m.just[key] = true
	}
	m.until[key] = m.now.Add(keyHold)
}

// IsKeyPressed reports whether the key was pressed recently enough to
// count as held
func (m *InputManager) IsKeyPressed(key render.Key) bool {
	return m.now.Before(m.until[key])
}

// IsKeyJustPressed reports whether the key went down this tick
func (m *InputManager) IsKeyJustPressed(key render.Key) bool {
	return m.just[key]
}

func tcellToKey(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyTab:
		return render.KeyTab, true
	case tcell.KeyEscape:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return render.KeyW, true
		case 'a', 'A':
			return render.KeyA, true
		case 's', 'S':
			return render.KeyS, true
		case 'd', 'D':
			return render.KeyD, true
		case 'e', 'E':
			return render.KeyE, true
		case ' ':
			return render.KeySpace, true
		}
	}
	return 0, false
}

// Engine drives a render.Game on a terminal screen
type Engine struct {
	screen tcell.Screen
	input  *InputManager
	title  string
	events chan tcell.Event
}

// NewEngine opens the terminal
func NewEngine() (*Engine, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return NewEngineWithScreen(screen), nil
}

// NewEngineWithScreen drives an already initialized screen
func NewEngineWithScreen(screen tcell.Screen) *Engine {
	return &Engine{
		screen: screen,
		input:  NewInputManager(),
		events: make(chan tcell.Event, 100),
	}
}

// Input returns the engine's input manager
func (e *Engine) Input() render.InputManager {
	return e.input
}

// Close restores the terminal without running a game
func (e *Engine) Close() {
	e.screen.Fini()
}

// SetWindowSize is a no-op; the terminal decides its own size
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle sets the title drawn on the bottom row
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// SetWindowResizable is a no-op; terminals are always resizable
func (e *Engine) SetWindowResizable(resizable bool) {}

// RunGame runs the game until it returns an error, render.ErrQuit ends it
// cleanly. The screen is finalized on return.
func (e *Engine) RunGame(game render.Game) error {
	defer e.screen.Fini()

	done := make(chan struct{})
	defer close(done)
	go e.pollEvents(done)

	ticker := time.NewTicker(time.Second / render.TicksPerSecond)
	defer ticker.Stop()

	for now := range ticker.C {
		if err := e.tick(game, now); err != nil {
			if errors.Is(err, render.ErrQuit) {
				return nil
			}
			return err
		}
	}
	return nil
}

// pollEvents forwards screen events to the tick loop until the screen is
// finalized or done is closed
func (e *Engine) pollEvents(done <-chan struct{}) {
	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case e.events <- ev:
		case <-done:
			return
		}
	}
}

// tick feeds queued events, updates the game once and redraws
func (e *Engine) tick(game render.Game, now time.Time) error {
	e.input.BeginFrame(now)
drain:
	for {
		select {
		case ev := <-e.events:
			if _, ok := ev.(*tcell.EventResize); ok {
				e.screen.Sync()
				continue
			}
			e.input.Handle(ev)
		default:
			break drain
		}
	}
	if e.input.quit {
		return render.ErrQuit
	}

	if err := game.Update(); err != nil {
		return err
	}

	surface := NewSurface(e.screen)
	game.Layout(surface.Size())
	e.screen.Clear()
	game.Draw(surface)
	if e.title != "" {
		_, rows := e.screen.Size()
		surface.DrawText(e.title, 0, (rows-1)*CellHeight, color.White)
	}
	e.screen.Show()
	return nil
}
