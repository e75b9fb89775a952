package hands

import "fmt"

// Collection is the ordered set of hands on the face. Index 0 is the base
// hand and is never removed.
type Collection struct {
	hands      []Hand
	generation int
	params     Params
}

// NewCollection returns a collection holding only the base hand at
// generation 0.
func NewCollection(baseName string, basePeriod float64, p Params) *Collection {
	return &Collection{
		hands:  []Hand{Derive(baseName, basePeriod, 0, p)},
		params: p,
	}
}

// Add appends a hand whose period is the last hand's divided by the
// divisor. There is no lower bound on the period.
func (c *Collection) Add() {
	if len(c.hands) == 0 {
		return
	}
	period := c.hands[len(c.hands)-1].Period / c.params.Divisor
	c.generation++
	c.hands = append(c.hands, Derive(ExtraName(c.generation), period, c.generation, c.params))
}

// Remove drops the last hand unless it is the only one left.
func (c *Collection) Remove() {
	if len(c.hands) <= 1 {
		return
	}
	c.hands = c.hands[:len(c.hands)-1]
	c.generation--
}

// Len is the number of hands, always at least one.
func (c *Collection) Len() int { return len(c.hands) }

// At returns the hand at index i in generation order.
func (c *Collection) At(i int) Hand { return c.hands[i] }

// Last returns the most recently added hand.
func (c *Collection) Last() Hand { return c.hands[len(c.hands)-1] }

// Generation is the counter used to name the next added hand.
func (c *Collection) Generation() int { return c.generation }

func (c *Collection) Params() Params { return c.params }

// Hands returns a copy of the hands in generation order.
func (c *Collection) Hands() []Hand {
	out := make([]Hand, len(c.hands))
	copy(out, c.hands)
	return out
}

// ExtraName is the display name of the nth added hand.
func ExtraName(n int) string {
	return fmt.Sprintf("extra hand %d", n)
}
