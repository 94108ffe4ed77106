package reactor

import (
	"reflect"
	"testing"
)

func TestDerivedMemoizesUntilWrite(t *testing.T) {
	cell := NewCell(2)
	computes := 0
	double := NewDerived(func() int {
		computes++
		return cell.Get() * 2
	})

	if got := double.Get(); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if got := double.Get(); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
	if computes != 1 {
		t.Errorf("expected one compute for repeated reads, got %d", computes)
	}

	cell.Set(5)
	if got := double.Get(); got != 10 {
		t.Errorf("expected 10 after write, got %d", got)
	}
	if computes != 2 {
		t.Errorf("expected recompute after write, got %d computes", computes)
	}
}

func TestDerivedTracksOnlyWhatItReads(t *testing.T) {
	useFirst := NewCell(true)
	first := NewCell("a")
	second := NewCell("b")
	computes := 0
	pick := NewDerived(func() string {
		computes++
		if useFirst.Get() {
			return first.Get()
		}
		return second.Get()
	})

	if got := pick.Get(); got != "a" {
		t.Fatalf("expected a, got %s", got)
	}
	// second was not read, so writing it must not invalidate
	second.Set("b2")
	pick.Get()
	if computes != 1 {
		t.Errorf("write to an unread cell must not recompute, got %d computes", computes)
	}

	useFirst.Set(false)
	if got := pick.Get(); got != "b2" {
		t.Errorf("expected b2 after switching, got %s", got)
	}
}

func TestDerivedOnDerived(t *testing.T) {
	cell := NewCell(1)
	innerComputes := 0
	outerComputes := 0
	inner := NewDerived(func() int {
		innerComputes++
		return cell.Get() + 1
	})
	outer := NewDerived(func() int {
		outerComputes++
		return inner.Get() * 10
	})

	if got := outer.Get(); got != 20 {
		t.Fatalf("expected 20, got %d", got)
	}
	cell.Set(2)
	if got := outer.Get(); got != 30 {
		t.Errorf("expected 30, got %d", got)
	}
	if innerComputes != 2 || outerComputes != 2 {
		t.Errorf("expected both layers to recompute once per write, got inner=%d outer=%d", innerComputes, outerComputes)
	}
}

func TestStructurallyEqualResultShortCircuits(t *testing.T) {
	cell := NewCell(3)
	downstream := 0
	// parity produces a fresh map every compute, equal whenever parity matches
	parity := NewDerived(func() map[string]any {
		return map[string]any{"odd": cell.Get()%2 == 1}
	})
	report := NewDerived(func() string {
		downstream++
		if parity.Get()["odd"].(bool) {
			return "odd"
		}
		return "even"
	})

	if got := report.Get(); got != "odd" {
		t.Fatalf("expected odd, got %s", got)
	}
	cell.Set(5) // still odd: parity recomputes to an equal value
	if got := report.Get(); got != "odd" {
		t.Fatalf("expected odd, got %s", got)
	}
	if downstream != 1 {
		t.Errorf("equal upstream value must short-circuit downstream, got %d computes", downstream)
	}

	cell.Set(4)
	if got := report.Get(); got != "even" {
		t.Errorf("expected even, got %s", got)
	}
	if downstream != 2 {
		t.Errorf("changed upstream value must recompute downstream, got %d computes", downstream)
	}
}

func TestWithEquality(t *testing.T) {
	cell := NewCell([]int{1, 2})
	lengths := NewDerived(func() []int {
		return cell.Get()
	}, WithEquality(func(a, b []int) bool {
		return len(a) == len(b)
	}))
	downstream := 0
	count := NewDerived(func() int {
		downstream++
		return len(lengths.Get())
	})

	if got := count.Get(); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	cell.Set([]int{7, 8}) // same length: custom equality short-circuits
	count.Get()
	if downstream != 1 {
		t.Errorf("custom equality must short-circuit, got %d computes", downstream)
	}
}

func TestDerivedReentryPanics(t *testing.T) {
	var derived *Derived[int]
	derived = NewDerived(func() int {
		return derived.Get()
	})
	defer func() {
		if recover() == nil {
			t.Error("expected re-entrant Get to panic")
		}
	}()
	derived.Get()
}

func TestCellSnapshotSemantics(t *testing.T) {
	cell := NewCell(map[string]any{"a": 1})
	snapshot := NewDerived(func() map[string]any {
		return cell.Get()
	})
	first := snapshot.Get()
	cell.Set(map[string]any{"a": 2})
	second := snapshot.Get()
	if reflect.DeepEqual(first, second) {
		t.Error("expected new snapshot after write")
	}
}
