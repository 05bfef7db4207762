// Package ui specifies custom controls for tview to assist in playing Othello
// in the terminal.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"othello/engine"
	"othello/game"
)

// BoardUI renders an Othello board inside a tview Box and plays the human's
// moves against a bot agent. The human plays BLACK, the bot replies as WHITE.
type BoardUI struct {
	Box     *tview.Box
	app     *tview.Application
	hint    *tview.TextView
	board   *game.Board
	bot     engine.Agent
	selRow  int
	selCol  int
	botMove string

	// thinking blocks input while the bot searches in the background;
	// the board is only mutated from the event loop.
	thinking bool
	finished bool
}

func NewBoardUI(app *tview.Application, hint *tview.TextView, bot engine.Agent) *BoardUI {
	b := &BoardUI{
		Box:    tview.NewBox(),
		app:    app,
		hint:   hint,
		board:  game.NewBoard(),
		bot:    bot,
		selRow: 2,
		selCol: 4,
	}
	b.Box.SetDrawFunc(b.draw)
	b.Box.SetInputCapture(b.handleKey)
	b.refreshHint()
	return b
}

func (b *BoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	ox, oy := x+2, y+1
	headerStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	for col := 0; col < game.BoardSize; col++ {
		screen.SetContent(ox+3+col*2, oy, rune('A'+col), nil, headerStyle)
	}

	legal := map[game.Move]bool{}
	if !b.finished && !b.thinking {
		for _, move := range b.board.LegalMoves(game.Black) {
			legal[move] = true
		}
	}

	base := tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	for row := 0; row < game.BoardSize; row++ {
		screen.SetContent(ox, oy+1+row, rune('1'+row), nil, headerStyle)
		for col := 0; col < game.BoardSize; col++ {
			style := base
			var r rune
			switch b.board.At(row, col) {
			case game.BlackPiece:
				r = '●'
				style = style.Foreground(tcell.ColorBlack)
			case game.WhitePiece:
				r = '●'
				style = style.Foreground(tcell.ColorWhite)
			default:
				r = '·'
				style = style.Foreground(tcell.ColorDarkGray)
				if legal[game.Move{Row: row, Col: col}] {
					r = '+'
					style = style.Foreground(tcell.ColorLightGreen)
				}
			}
			if row == b.selRow && col == b.selCol {
				style = style.Reverse(true)
			}
			cx := ox + 2 + col*2
			screen.SetContent(cx, oy+1+row, r, nil, style)
			screen.SetContent(cx+1, oy+1+row, ' ', nil, style)
		}
	}
	return x, y, width, height
}

func (b *BoardUI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if b.thinking {
		return nil
	}
	switch event.Key() {
	case tcell.KeyUp:
		b.moveSelection(-1, 0)
	case tcell.KeyDown:
		b.moveSelection(1, 0)
	case tcell.KeyLeft:
		b.moveSelection(0, -1)
	case tcell.KeyRight:
		b.moveSelection(0, 1)
	case tcell.KeyEnter:
		b.confirm()
	case tcell.KeyRune:
		switch event.Rune() {
		case 'k':
			b.moveSelection(-1, 0)
		case 'j':
			b.moveSelection(1, 0)
		case 'h':
			b.moveSelection(0, -1)
		case 'l':
			b.moveSelection(0, 1)
		case 'q':
			b.app.Stop()
		default:
			return event
		}
	default:
		return event
	}
	return nil
}

func (b *BoardUI) moveSelection(dr, dc int) {
	if b.board.InBounds(b.selRow+dr, b.selCol+dc) {
		b.selRow += dr
		b.selCol += dc
	}
}

// confirm plays the human move under the cursor, then hands the position to
// the bot in the background.
func (b *BoardUI) confirm() {
	if b.finished {
		return
	}
	move := game.Move{Row: b.selRow, Col: b.selCol}
	if err := b.board.PlacePiece(game.Black, move.Row, move.Col); err != nil {
		b.hint.SetText(fmt.Sprintf("%s is not a valid move", move))
		return
	}
	b.thinking = true
	b.hint.SetText(fmt.Sprintf("You moved at %s. Thinking...", move))

	snapshot := b.board.Clone()
	go b.replyAsWhite(snapshot)
}

func (b *BoardUI) replyAsWhite(snapshot *game.Board) {
	move, ok, _ := b.bot.FindMove(snapshot, game.White)
	b.app.QueueUpdateDraw(func() {
		b.thinking = false
		if !ok {
			b.finish()
			return
		}
		if err := b.board.PlacePiece(game.White, move.Row, move.Col); err != nil {
			panic(err)
		}
		b.botMove = move.String()
		if len(b.board.LegalMoves(game.Black)) == 0 {
			b.finish()
			return
		}
		b.refreshHint()
	})
}

// finish reports the final score. Play stops as soon as either side has no
// move, matching the engine's early-stop behavior.
func (b *BoardUI) finish() {
	b.finished = true
	black, white := b.board.PieceCounts()
	b.hint.SetText(fmt.Sprintf("Game over: %d black, %d white (%s). Press q to quit.",
		black, white, engine.Winner(black, white)))
}

func (b *BoardUI) refreshHint() {
	black, white := b.board.PieceCounts()
	status := fmt.Sprintf("Black %d, White %d. Your move: arrows/hjkl select, Enter places, q quits.", black, white)
	if b.botMove != "" {
		status = fmt.Sprintf("AI moved at %s. %s", b.botMove, status)
	}
	b.hint.SetText(status)
}
