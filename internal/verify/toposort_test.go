package verify

import (
	"errors"
	"testing"
)

func TestTopoSort_Order(t *testing.T) {
	// TASK003 waits on TASK002, TASK002 waits on TASK001
	order, err := topoSort([]string{"TASK003", "TASK002", "TASK001"}, func(i int) []int {
		switch i {
		case 0:
			return []int{1}
		case 1:
			return []int{2}
		default:
			return nil
		}
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	exp := []int{2, 1, 0}
	if len(order) != len(exp) {
		t.Fatalf("expected %v, got %v", exp, order)
	}

	for i := range exp {
		if order[i] != exp[i] {
			t.Fatalf("expected %v, got %v", exp, order)
		}
	}
}

func TestTopoSort_Independent(t *testing.T) {
	order, err := topoSort([]string{"a", "b", "c"}, func(int) []int { return nil })
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for i, v := range order {
		if v != i {
			t.Fatalf("expected index order, got %v", order)
		}
	}
}

func TestTopoSort_Cycle(t *testing.T) {
	_, err := topoSort([]string{"a", "b", "c"}, func(i int) []int {
		switch i {
		case 0:
			return []int{1}
		case 1:
			return []int{0}
		default:
			return nil
		}
	})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	var cycle *CycleError
	if !errors.As(err, &cycle) {
		t.Fatalf("expected *CycleError, got %T", err)
	}

	if len(cycle.Nodes) != 2 || cycle.Nodes[0] != "a" || cycle.Nodes[1] != "b" {
		t.Fatalf("unexpected cycle nodes %v", cycle.Nodes)
	}
}

func TestTopoSort_OutOfRange(t *testing.T) {
	_, err := topoSort([]string{"a"}, func(int) []int { return []int{3} })
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestTopoSort_Empty(t *testing.T) {
	order, err := topoSort(nil, nil)
	if err != nil || order != nil {
		t.Fatalf("expected nil, nil; got %v, %v", order, err)
	}
}
