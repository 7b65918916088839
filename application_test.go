package gridview

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestApplicationDrawsOnlyWhenDirty(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	screen := NewFrameScreen(10, 3)
	root := NewCell("hello")
	app := NewApplication().SetLogger(zap.New(core)).SetScreen(screen).SetRoot(root)

	app.ForceDraw()
	assert.Equal(t, "hello", screen.String())
	assert.Equal(t, uint64(1), app.frames)

	app.drawIfDirty()
	assert.Equal(t, uint64(1), app.frames)

	root.SetText("bye")
	app.drawIfDirty()
	assert.Equal(t, uint64(2), app.frames)
	assert.Equal(t, "bye", screen.String())
	assert.Equal(t, 2, logs.FilterMessage("frame").Len())
}

func TestApplicationExecuteCommand(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	root := NewBox()
	other := NewBox()
	app := NewApplication().SetLogger(zap.New(core)).SetScreen(NewFrameScreen(5, 5)).SetRoot(root)

	tests := []struct {
		name string
		cmd  Command
		want bool
	}{
		{name: "nil", cmd: nil, want: false},
		{name: "redraw", cmd: RedrawCommand{}, want: true},
		{name: "consume", cmd: ConsumeEventCommand{}, want: false},
		{name: "batch", cmd: BatchCommand{nil, ConsumeEventCommand{}, RedrawCommand{}}, want: true},
		{name: "focus", cmd: SetFocusCommand{Target: other}, want: true},
		{name: "focus unchanged", cmd: SetFocusCommand{Target: other}, want: false},
		{name: "focus nil", cmd: SetFocusCommand{}, want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, app.executeCommand(tt.cmd), tt.name)
	}
	assert.Same(t, other, app.GetFocus())
	assert.False(t, root.HasFocus())
	assert.True(t, other.HasFocus())

	assert.False(t, app.executeCommand(QuitCommand{}))
	assert.Equal(t, 1, logs.FilterMessage("quit requested").Len())
	// The screen is gone after quitting.
	frames := app.frames
	app.ForceDraw()
	assert.Equal(t, frames, app.frames)
}

func TestAppendCommand(t *testing.T) {
	assert.Nil(t, AppendCommand(nil, nil))
	assert.Equal(t, RedrawCommand{}, AppendCommand(nil, RedrawCommand{}))
	assert.Equal(t, RedrawCommand{}, AppendCommand(RedrawCommand{}, nil))
	assert.Equal(t,
		BatchCommand{RedrawCommand{}, QuitCommand{}, ConsumeEventCommand{}},
		AppendCommand(BatchCommand{RedrawCommand{}}, BatchCommand{QuitCommand{}, ConsumeEventCommand{}}),
	)
}

type quitOnKey struct {
	*Cell
}

func (q *quitOnKey) InputHandler(event *tcell.EventKey) Command {
	if event.Key() == tcell.KeyRune && event.Str() == "q" {
		return QuitCommand{}
	}
	q.SetText(event.Str())
	return RedrawCommand{}
}

func TestApplicationRun(t *testing.T) {
	screen := NewFrameScreen(10, 2)
	root := &quitOnKey{Cell: NewCell("start")}
	app := NewApplication().SetScreen(screen).SetRoot(root)

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after quit")
	}
	assert.Equal(t, "x", root.GetText())
}
