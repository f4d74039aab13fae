// Package tui is a terminal front end that plays a series locally against the engine.
package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/xando-series/internal/entity"
	"github.com/rocketscienceinc/xando-series/internal/tictactoe"
)

const hint = "[::d]1-9 or arrows+Enter: move   n: next round   r: replay   q: quit"

type UI struct {
	app    *tview.Application
	board  *tview.Table
	status *tview.TextView
	logger *slog.Logger

	controller *tictactoe.SeriesController
	aiDelay    time.Duration
	aiPending  bool
	message    string
}

// New - builds the board and status panes around a controller whose first round has started.
func New(logger *slog.Logger, controller *tictactoe.SeriesController, aiDelay time.Duration) *UI {
	ui := &UI{
		app:        tview.NewApplication(),
		board:      tview.NewTable(),
		status:     tview.NewTextView().SetDynamicColors(true),
		logger:     logger.With("component", "tui"),
		controller: controller,
		aiDelay:    aiDelay,
	}

	ui.board.SetBorders(true).SetSelectable(true, true)
	ui.board.SetSelectedFunc(func(row, column int) {
		ui.play(entity.Position(row*3 + column + 1))
	})
	ui.board.SetInputCapture(ui.handleKey)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewFlex().
			AddItem(nil, 0, 1, false).
			AddItem(ui.board, 13, 0, true).
			AddItem(nil, 0, 1, false), 7, 0, true).
		AddItem(ui.status, 0, 1, false)
	layout.SetBorder(true).SetTitle(" X and O ")

	ui.app.SetRoot(layout, true).SetFocus(ui.board)
	ui.refresh()

	return ui
}

// Run - blocks until the player quits.
func (that *UI) Run() error {
	that.scheduleAI()

	if err := that.app.Run(); err != nil {
		return fmt.Errorf("terminal ui failed: %w", err)
	}

	return nil
}

func (that *UI) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if position, ok := keyPosition(event.Rune()); ok {
		that.play(position)
		return nil
	}

	switch event.Rune() {
	case 'q':
		that.app.Stop()
	case 'n':
		that.nextRound()
	case 'r':
		that.replay()
	default:
		return event
	}

	return nil
}

func (that *UI) play(position entity.Position) {
	if that.aiPending {
		return
	}

	outcome, err := that.controller.ApplyHumanMove(position)
	if err != nil {
		that.message = "[red]" + err.Error()
		that.refresh()
		return
	}

	that.afterMove(outcome)
}

func (that *UI) nextRound() {
	if _, _, err := that.controller.StartRound(); err != nil {
		that.message = "[red]" + err.Error()
		that.refresh()
		return
	}

	that.message = ""
	that.refresh()
	that.scheduleAI()
}

func (that *UI) replay() {
	if that.aiPending {
		return
	}

	match := that.controller.ReplaySeries()
	that.logger.Info("series replayed", "starter", match.CurrentStarter)

	that.message = ""
	that.refresh()
	that.scheduleAI()
}

// scheduleAI - the AI answers after aiDelay so its move is visible as a separate step.
func (that *UI) scheduleAI() {
	side, ok := that.controller.SideToMove()
	match := that.controller.Match()
	if !ok || !match.IsAIControlled(side) || that.aiPending {
		return
	}

	that.aiPending = true
	that.refresh()

	time.AfterFunc(that.aiDelay, func() {
		that.app.QueueUpdateDraw(func() {
			that.aiPending = false

			_, outcome, err := that.controller.RequestAIMove()
			if err != nil {
				that.logger.Error("ai move failed", "error", err)
				that.message = "[red]" + err.Error()
				that.refresh()
				return
			}

			that.afterMove(outcome)
		})
	})
}

func (that *UI) afterMove(outcome entity.RoundOutcome) {
	match := that.controller.Match()
	that.message = outcomeMessage(match, outcome)

	if outcome.Kind != entity.OutcomeContinue {
		that.logger.Info("round finished", "round", match.RoundNumber, "outcome", outcome.Kind, "score", match.Score())
	}

	that.refresh()
	that.scheduleAI()
}

func (that *UI) refresh() {
	round := that.controller.Round()

	for position := entity.MinPosition; position <= entity.MaxPosition; position++ {
		row, column := int(position-1)/3, int(position-1)%3
		that.board.SetCell(row, column, boardCell(round.Board.Cell(position), position))
	}

	that.status.SetText(statusText(that.controller.Match(), round, that.aiPending, that.message))
}

func boardCell(mark entity.Mark, position entity.Position) *tview.TableCell {
	switch mark {
	case entity.MarkX:
		return tview.NewTableCell(" X ").SetTextColor(tcell.ColorAqua).SetAlign(tview.AlignCenter)
	case entity.MarkO:
		return tview.NewTableCell(" O ").SetTextColor(tcell.ColorOrange).SetAlign(tview.AlignCenter)
	default:
		return tview.NewTableCell(fmt.Sprintf(" %d ", position)).SetTextColor(tcell.ColorGray).SetAlign(tview.AlignCenter)
	}
}

func keyPosition(key rune) (entity.Position, bool) {
	if key < '1' || key > '9' {
		return 0, false
	}
	return entity.Position(key - '0'), true
}

func outcomeMessage(match entity.MatchState, outcome entity.RoundOutcome) string {
	switch outcome.Kind {
	case entity.OutcomeWin:
		if champion, over := match.Champion(); over {
			return fmt.Sprintf("[green]%s wins the series! Press r to play again.", match.Name(champion))
		}
		return fmt.Sprintf("[green]%s wins round %d. Press n for the next round.", match.Name(outcome.Winner), match.RoundNumber)
	case entity.OutcomeDraw:
		return fmt.Sprintf("[yellow]Round %d is a draw. Press n for the next round.", match.RoundNumber)
	default:
		return ""
	}
}

// statusText - score line, whose turn it is and the last message.
func statusText(match entity.MatchState, round entity.Round, aiThinking bool, message string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s   (first to %d)\n", match.Score(), match.RoundsToWin)
	if match.IsAIOpponent {
		fmt.Fprintf(&b, "AI: %s\n", match.Tier)
	}

	switch {
	case aiThinking:
		fmt.Fprintf(&b, "Round %d: %s is thinking...\n", match.RoundNumber, match.Name(entity.SideB))
	case !round.Result.IsOver() && round.ToMove != entity.NoSide:
		fmt.Fprintf(&b, "Round %d: %s (%s) to move\n", match.RoundNumber, match.Name(round.ToMove), round.ToMove.Mark())
	}

	if message != "" {
		b.WriteString(message + "[-]\n")
	}

	b.WriteString(hint)

	return b.String()
}
