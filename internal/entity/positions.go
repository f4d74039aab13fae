package entity

import (
	"encoding/json"
	"fmt"
	"iter"
	"math/bits"
	"slices"

	"github.com/rocketscienceinc/xando-series/internal/apperror"
)

// PositionSet is a set of board positions stored as a bitmask (bit n is position n).
// It is a value type, so hypothetical placements never touch the original.
type PositionSet uint16

func NewPositionSet(positions ...Position) PositionSet {
	var set PositionSet
	for _, position := range positions {
		set = set.With(position)
	}
	return set
}

func (that PositionSet) Has(position Position) bool {
	return position.IsValid() && that&(1<<position) != 0
}

// With - returns the set plus position. Invalid positions are ignored.
func (that PositionSet) With(position Position) PositionSet {
	if !position.IsValid() {
		return that
	}
	return that | 1<<position
}

// Add - records a move. Recording the same position twice is an error.
func (that PositionSet) Add(position Position) (PositionSet, error) {
	if !position.IsValid() {
		return that, fmt.Errorf("%w: got %d", apperror.ErrInvalidPosition, position)
	}

	if that.Has(position) {
		return that, fmt.Errorf("%w: position %d is already recorded", apperror.ErrCellOccupied, position)
	}

	return that.With(position), nil
}

func (that PositionSet) Len() int {
	return bits.OnesCount16(uint16(that))
}

func (that PositionSet) IsEmpty() bool {
	return that == 0
}

func (that PositionSet) Intersects(other PositionSet) bool {
	return that&other != 0
}

func (that PositionSet) Union(other PositionSet) PositionSet {
	return that | other
}

// All - yields the members in ascending order.
func (that PositionSet) All() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for position := MinPosition; position <= MaxPosition; position++ {
			if that.Has(position) && !yield(position) {
				return
			}
		}
	}
}

func (that PositionSet) Positions() []Position {
	return slices.Collect(that.All())
}

// First - returns the lowest member.
func (that PositionSet) First() (Position, bool) {
	for position := range that.All() {
		return position, true
	}
	return 0, false
}

func (that PositionSet) MarshalJSON() ([]byte, error) {
	positions := that.Positions()
	if positions == nil {
		positions = []Position{}
	}
	return json.Marshal(positions)
}

func (that *PositionSet) UnmarshalJSON(data []byte) error {
	var positions []Position
	if err := json.Unmarshal(data, &positions); err != nil {
		return fmt.Errorf("failed to unmarshal positions: %w", err)
	}

	var set PositionSet
	for _, position := range positions {
		var err error
		if set, err = set.Add(position); err != nil {
			return err
		}
	}

	*that = set

	return nil
}
