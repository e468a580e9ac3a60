package views

import "github.com/maren/tack/internal/model"

// BoardState is the closed set of states the board screen moves through.
// The unexported marker method keeps the variant set sealed to this
// package, so a switch over all four variants is exhaustive.
type BoardState interface {
	boardState()
}

// BoardIdle is the state before the first load was requested
type BoardIdle struct{}

// BoardLoading is the state while the persisted document is being read
type BoardLoading struct{}

// BoardReady holds the live column model
type BoardReady struct {
	Columns []model.KanbanColumn
}

// BoardFailed is the state after a load error
type BoardFailed struct {
	Err error
}

func (BoardIdle) boardState()    {}
func (BoardLoading) boardState() {}
func (BoardReady) boardState()   {}
func (BoardFailed) boardState()  {}
