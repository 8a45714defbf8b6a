package chessgame

import (
	"errors"
	"sync"
	"testing"

	"github.com/dev0Guy/ChessGame/internal/stats"
	"github.com/dev0Guy/ChessGame/square"
)

// countingCollector records counter increments for assertions.
type countingCollector struct {
	mu       sync.Mutex
	counters map[string]int64
}

func newCountingCollector() *countingCollector {
	return &countingCollector{counters: make(map[string]int64)}
}

func (c *countingCollector) IncCounter(name string, delta int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counters[name] += delta
}

func (c *countingCollector) SetGauge(name string, value int64)           {}
func (c *countingCollector) ObserveHistogram(name string, value float64) {}

func (c *countingCollector) get(name string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counters[name]
}

func TestNew_Defaults(t *testing.T) {
	g := New()
	if g == nil {
		t.Fatal("New() returned nil")
	}

	if got := len(g.Squares()); got != square.Count {
		t.Errorf("Squares() returned %d squares, want %d", got, square.Count)
	}
}

func TestGrid_Enumerations(t *testing.T) {
	collector := newCountingCollector()
	g := New(WithStats(collector))

	if got := len(g.Files()); got != square.FileCount {
		t.Errorf("Files() returned %d files, want %d", got, square.FileCount)
	}
	if got := len(g.Ranks()); got != square.RankCount {
		t.Errorf("Ranks() returned %d ranks, want %d", got, square.RankCount)
	}
	if got := len(g.Squares()); got != square.Count {
		t.Errorf("Squares() returned %d squares, want %d", got, square.Count)
	}

	if got := collector.get(stats.MetricEnumerations); got != 3 {
		t.Errorf("enumeration counter = %d, want 3", got)
	}
}

func TestGrid_SquaresMatchCore(t *testing.T) {
	g := New()

	core := square.Squares()
	got := g.Squares()
	for i := range core {
		if got[i] != core[i] {
			t.Fatalf("Squares()[%d] = %v, want %v", i, got[i], core[i])
		}
	}
}

func TestGrid_Parse(t *testing.T) {
	collector := newCountingCollector()
	g := New(WithStats(collector))

	sq, err := g.Parse("e4")
	if err != nil {
		t.Fatalf("Parse(\"e4\") error = %v", err)
	}
	if want := square.New(square.FileE, square.RankFour); sq != want {
		t.Errorf("Parse(\"e4\") = %v, want %v", sq, want)
	}

	if _, err := g.Parse("z9"); !errors.Is(err, square.ErrInvalidSquare) {
		t.Errorf("Parse(\"z9\") error = %v, want ErrInvalidSquare", err)
	}

	if got := collector.get(stats.MetricParses); got != 2 {
		t.Errorf("parse counter = %d, want 2", got)
	}
	if got := collector.get(stats.MetricParseErrors); got != 1 {
		t.Errorf("parse error counter = %d, want 1", got)
	}
}

func TestGrid_ConcurrentUse(t *testing.T) {
	g := New(WithStats(newCountingCollector()))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if len(g.Squares()) != square.Count {
					t.Error("Squares() returned short slice")
					return
				}
				if _, err := g.Parse("a1"); err != nil {
					t.Errorf("Parse(\"a1\") error = %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
