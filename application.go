package gridview

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v3"
	"go.uber.org/zap"
)

const (
	updateQueueSize = 100
	// Resize events closer together than this are coalesced into one frame.
	resizePause = 50 * time.Millisecond
	// Delay of the follow-up frame for a root that is still dirty after a draw.
	frameInterval = 16 * time.Millisecond
)

type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// Application owns the terminal screen and runs the event loop for one root
// primitive. Key and paste events go to the root while it holds focus, mouse
// events go to the root or to the primitive capturing the mouse. A frame is
// drawn whenever the root reports itself dirty after an event.
//
//	if err := gridview.NewApplication().SetRoot(page).Run(); err != nil {
//		return err
//	}
type Application struct {
	mu sync.RWMutex

	screen tcell.Screen
	root   Primitive
	focus  Primitive

	events  chan tcell.Event
	updates chan queuedUpdate

	mouse   mouseTracker
	capture Primitive

	// Clear the whole screen before the next frame.
	forceRedraw bool
	frameTimer  *time.Timer
	frames      uint64

	logger *zap.Logger
}

// NewApplication returns an application without a screen. Run creates one
// unless SetScreen was called.
func NewApplication() *Application {
	return &Application{
		updates: make(chan queuedUpdate, updateQueueSize),
		logger:  zap.NewNop(),
	}
}

// SetLogger sets the logger for event loop diagnostics. nil silences it.
func (a *Application) SetLogger(logger *zap.Logger) *Application {
	if logger == nil {
		logger = zap.NewNop()
	}
	a.mu.Lock()
	a.logger = logger
	a.mu.Unlock()
	return a
}

// SetScreen installs screen. It has no effect once a screen is set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.forceRedraw = true
	}
	return a
}

// SetRoot replaces the root primitive and gives it focus.
func (a *Application) SetRoot(root Primitive) *Application {
	a.mu.Lock()
	a.root = root
	if a.screen != nil {
		a.forceRedraw = true
	}
	a.mu.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus blurs the focused primitive and focuses p. Containers receive a
// delegate to hand focus on to one of their children.
func (a *Application) SetFocus(p Primitive) *Application {
	a.mu.Lock()
	previous := a.focus
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.mu.Unlock()

	if previous != nil {
		previous.Blur()
	}
	if p != nil {
		p.Focus(func(next Primitive) {
			a.SetFocus(next)
		})
	}
	return a
}

// GetFocus returns the focused primitive or nil.
func (a *Application) GetFocus() Primitive {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.focus
}

// Run initializes the screen if needed and processes events until Stop is
// called or the screen reports an error.
func (a *Application) Run() error {
	screen, err := a.initScreen()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Restore the terminal before a panic reaches the user.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()
	events := screen.EventQ()
	a.mu.Lock()
	a.events = events
	a.mu.Unlock()

	loop := &eventLoop{app: a}
	for loop.err == nil {
		select {
		case event := <-events:
			if event == nil {
				a.stopFrameTimer()
				return nil
			}
			loop.handle(event)
		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		}
		// Scrolls and deferred focus changes dirty primitives without a
		// command.
		a.drawIfDirty()
		if a.stopped() {
			break
		}
	}
	a.stopFrameTimer()
	return loop.err
}

func (a *Application) initScreen() (tcell.Screen, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.screen != nil {
		return a.screen, nil
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.EnablePaste()
	a.screen = screen
	return screen, nil
}

// eventLoop holds the state Run keeps between events.
type eventLoop struct {
	app *Application

	pasting bool
	paste   strings.Builder

	lastResize  time.Time
	resizeTimer *time.Timer

	err error
}

func (l *eventLoop) handle(event tcell.Event) {
	a := l.app
	switch event := event.(type) {
	case *tcell.EventKey:
		if l.pasting {
			l.collectPaste(event)
			return
		}
		if root := a.focusedRoot(); root != nil {
			a.dispatch(root.InputHandler(event))
		}
	case *tcell.EventPaste:
		switch {
		case event.Start():
			l.pasting = true
			l.paste.Reset()
		case event.End():
			l.pasting = false
			if root := a.focusedRoot(); root != nil && l.paste.Len() > 0 {
				a.dispatch(root.PasteHandler(l.paste.String()))
			}
		}
	case *tcell.EventResize:
		l.resize(event)
	case *tcell.EventMouse:
		a.handleMouse(event)
	case *tcell.EventError:
		a.logger.Error("screen error", zap.Error(event))
		l.err = event
		a.Stop()
	}
}

func (l *eventLoop) collectPaste(event *tcell.EventKey) {
	switch event.Key() {
	case tcell.KeyRune:
		l.paste.WriteString(event.Str())
	case tcell.KeyEnter:
		l.paste.WriteByte('\n')
	case tcell.KeyTab:
		l.paste.WriteByte('\t')
	}
}

// resize redraws with a full clear. A burst of resizes gets one more frame
// after the burst settles.
func (l *eventLoop) resize(event *tcell.EventResize) {
	a := l.app
	a.mu.Lock()
	a.forceRedraw = true
	events := a.events
	a.mu.Unlock()

	if time.Since(l.lastResize) < resizePause {
		if l.resizeTimer != nil {
			l.resizeTimer.Stop()
		}
		l.resizeTimer = time.AfterFunc(resizePause, func() {
			events <- event
		})
	}
	l.lastResize = time.Now()
	a.draw()
}

func (a *Application) focusedRoot() Primitive {
	a.mu.RLock()
	root := a.root
	a.mu.RUnlock()
	if root == nil || !root.HasFocus() {
		return nil
	}
	return root
}

// dispatch executes cmd and draws when it asked for a frame.
func (a *Application) dispatch(cmd Command) {
	if a.executeCommand(cmd) {
		a.draw()
	}
}

func (a *Application) handleMouse(event *tcell.EventMouse) {
	redraw := false
	for _, action := range a.mouse.actions(event, time.Now()) {
		target := a.capture
		if target == nil {
			a.mu.RLock()
			target = a.root
			a.mu.RUnlock()
		}
		if target == nil {
			continue
		}
		capture, cmd := target.MouseHandler(action, event)
		a.capture = capture
		if a.executeCommand(cmd) {
			redraw = true
		}
	}
	if redraw {
		a.draw()
	}
}

// executeCommand runs cmd and reports whether a frame should follow.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return false
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.logger.Debug("quit requested")
		a.Stop()
		return false
	case SetFocusCommand:
		if c.Target == nil || a.GetFocus() == c.Target {
			return false
		}
		a.SetFocus(c.Target)
		return true
	}
	return false
}

// Stop finalizes the screen, which makes Run return.
func (a *Application) Stop() {
	a.mu.Lock()
	screen := a.screen
	a.screen = nil
	a.mu.Unlock()
	if screen != nil {
		screen.Fini()
	}
}

func (a *Application) stopped() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.screen == nil
}

// QueueUpdate runs f on the event loop and waits for it. Use it to touch
// primitives from other goroutines.
func (a *Application) QueueUpdate(f func()) *Application {
	done := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: done}
	<-done
	return a
}

// QueueEvent feeds event into the event loop. It is a no-op before Run.
func (a *Application) QueueEvent(event tcell.Event) *Application {
	a.mu.RLock()
	events := a.events
	a.mu.RUnlock()
	if events != nil {
		events <- event
	}
	return a
}

// Draw requests a frame from another goroutine.
func (a *Application) Draw() *Application {
	return a.QueueUpdate(func() { a.draw() })
}

// ForceDraw draws a frame right away. Call it only from the event loop.
func (a *Application) ForceDraw() *Application {
	return a.draw()
}

// Sync repaints the terminal from scratch on the next loop iteration.
func (a *Application) Sync() *Application {
	a.updates <- queuedUpdate{f: func() {
		a.mu.Lock()
		screen := a.screen
		a.forceRedraw = true
		a.mu.Unlock()
		if screen != nil {
			screen.Sync()
		}
	}}
	return a
}

func (a *Application) draw() *Application {
	return a.render(true)
}

func (a *Application) drawIfDirty() {
	a.render(false)
}

func (a *Application) render(always bool) *Application {
	a.mu.Lock()
	screen, root, force := a.screen, a.root, a.forceRedraw
	a.mu.Unlock()
	if screen == nil || root == nil {
		return a
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	if !always && !force && !root.IsDirty() {
		return a
	}

	// tcell diffs against its back buffer in Show, so only forced frames clear.
	if force {
		screen.Clear()
	}
	root.Draw(screen)
	root.MarkClean()
	screen.Show()

	a.mu.Lock()
	a.forceRedraw = false
	a.frames++
	frames := a.frames
	a.mu.Unlock()
	a.logger.Debug("frame", zap.Uint64("frame", frames), zap.Bool("forced", force))

	// Deferred work run during the draw dirtied the root again.
	if root.IsDirty() {
		a.scheduleFrame()
	}
	return a
}

func (a *Application) scheduleFrame() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.frameTimer != nil || a.screen == nil {
		return
	}
	a.frameTimer = time.AfterFunc(frameInterval, func() {
		a.mu.Lock()
		a.frameTimer = nil
		a.mu.Unlock()
		select {
		case a.updates <- queuedUpdate{f: func() {}}:
		default:
		}
	})
}

func (a *Application) stopFrameTimer() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.frameTimer != nil {
		a.frameTimer.Stop()
		a.frameTimer = nil
	}
}
