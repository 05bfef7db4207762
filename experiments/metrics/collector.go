package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes a single search: how deep it looked, how much of the
// game tree it visited and what it concluded.
type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int // interior nodes expanded
	Leaves   int // positions scored by the static evaluator
	Cutoffs  int // sibling loops abandoned by alpha-beta
	Score    int // best score, from BLACK's perspective
}

// MoveMetric ties a search to its place within a game.
type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	StartTime   time.Time
	Duration    time.Duration
	TotalMoves  int
	BlackPieces int
	WhitePieces int
	Winner      string
}

// Collector accumulates counters during a search. The counters are atomic so
// a collector can be shared if the root move loop is ever fanned out across
// goroutines.
type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetScore(score int)
	Complete() SearchMetric
}

type collector struct {
	depth     int
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
	score     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth int) {
	c.depth = depth
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.cutoffs.Store(0)
	c.score.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddLeaf() {
	c.leaves.Add(1)
}

func (c *collector) AddCutoff() {
	c.cutoffs.Add(1)
}

func (c *collector) SetScore(score int) {
	c.score.Store(int64(score))
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    c.depth,
		Duration: time.Since(c.startTime),
		Nodes:    int(c.nodes.Load()),
		Leaves:   int(c.leaves.Load()),
		Cutoffs:  int(c.cutoffs.Load()),
		Score:    int(c.score.Load()),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that discards everything.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start(int)              {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) AddLeaf()               {}
func (dummyCollector) AddCutoff()             {}
func (dummyCollector) SetScore(int)           {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
