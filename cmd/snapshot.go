package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xqrs/gridview"
	"github.com/xqrs/gridview/internal/demo"
)

// maxSettleDraws bounds the draws needed for deferred focus scrolls to land.
const maxSettleDraws = 4

type snapshotOptions struct {
	width    int
	height   int
	position int
	details  bool
	fullHelp bool
}

func newSnapshotCmd(s *session) *cobra.Command {
	opts := &snapshotOptions{}
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one frame of the demo as text without a terminal.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.width <= 0 || opts.height <= 0 {
				return errors.New("width and height must be positive")
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderSnapshot(s, opts))
			return err
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", 80, "screen width in cells")
	cmd.Flags().IntVar(&opts.height, "height", 24, "screen height in cells")
	cmd.Flags().IntVar(&opts.position, "position", 0, "index of the focused item")
	cmd.Flags().BoolVar(&opts.details, "details", false, "open the details of the focused item")
	cmd.Flags().BoolVar(&opts.fullHelp, "full-help", false, "show all key bindings")
	return cmd
}

func renderSnapshot(s *session, opts *snapshotOptions) string {
	page := demo.NewPage(s.cfg.Grid, s.logger)
	defer page.Close()

	screen := gridview.NewFrameScreen(opts.width, opts.height)
	page.SetRect(0, 0, opts.width, opts.height)
	focusRoot(page)

	grid := page.Grid()
	if n := len(grid.Items()); n > 0 {
		grid.SetFocusPosition(min(max(opts.position, 0), n-1))
	}
	page.Help().SetShowAll(opts.fullHelp)

	settle := func() {
		for i := 0; i < maxSettleDraws && (i == 0 || page.IsDirty()); i++ {
			screen.Clear()
			page.Draw(screen)
			page.MarkClean()
		}
	}
	settle()
	if opts.details {
		if n := len(grid.Items()); n > 0 {
			index := grid.FocusPosition()
			page.ShowDetails(index, grid.Items()[index])
			settle()
		}
	}
	s.logger.Debug("snapshot rendered",
		zap.Int("width", opts.width),
		zap.Int("height", opts.height),
		zap.Int("slots", len(grid.Slots())),
	)
	return screen.String()
}

// focusRoot gives root focus the way Application.SetFocus does, without a
// screen.
func focusRoot(root gridview.Primitive) {
	var focused gridview.Primitive
	var delegate func(p gridview.Primitive)
	delegate = func(p gridview.Primitive) {
		if focused != nil && focused != p {
			focused.Blur()
		}
		focused = p
		p.Focus(delegate)
	}
	delegate(root)
}
