package cache

import "testing"

func keys(l *recencyList[string]) []string {
	var out []string
	for n := l.root.next; n != &l.root; n = n.next {
		out = append(out, n.key)
	}
	return out
}

func TestRecencyList(t *testing.T) {
	l := newRecencyList[string]()
	if _, ok := l.popBack(); ok {
		t.Fatal("popBack on empty list succeeded")
	}

	a := l.pushFront("a")
	l.pushFront("b")
	c := l.pushFront("c")
	if got := keys(l); len(got) != 3 || got[0] != "c" || got[2] != "a" {
		t.Fatalf("order = %v, want [c b a]", got)
	}

	l.touch(a)
	l.touch(a)
	if got := keys(l); got[0] != "a" || got[2] != "b" {
		t.Errorf("after touch order = %v, want [a c b]", got)
	}

	l.remove(c)
	if l.len() != 2 {
		t.Errorf("len = %d, want 2", l.len())
	}
	if k, ok := l.popBack(); !ok || k != "b" {
		t.Errorf("popBack = %q, %v; want b", k, ok)
	}
	if k, ok := l.popBack(); !ok || k != "a" {
		t.Errorf("popBack = %q, %v; want a", k, ok)
	}
	if l.len() != 0 || l.root.next != &l.root {
		t.Error("list should be empty")
	}
}
