package gridview

// Command is a side effect a primitive requests from the Application while
// handling an event. A nil Command means the event was not handled.
type Command any

// RedrawCommand marks the event handled and requests a frame.
type RedrawCommand struct{}

// QuitCommand stops the event loop.
type QuitCommand struct{}

// SetFocusCommand moves focus to Target, typically a grid after a click.
type SetFocusCommand struct {
	Target Primitive
}

// ConsumeEventCommand marks the event handled without a redraw, for example a
// click that lands behind an overlay.
type ConsumeEventCommand struct{}

// BatchCommand runs its commands in order.
type BatchCommand []Command

// AppendCommand merges next into current. Batches are flattened and nil
// commands are dropped.
func AppendCommand(current Command, next Command) Command {
	switch {
	case next == nil:
		return current
	case current == nil:
		return next
	}
	return append(flatten(current), flatten(next)...)
}

func flatten(cmd Command) BatchCommand {
	if batch, ok := cmd.(BatchCommand); ok {
		return append(BatchCommand(nil), batch...)
	}
	return BatchCommand{cmd}
}
