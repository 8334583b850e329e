package cache

// recencyNode links one key into a recencyList.
type recencyNode[K comparable] struct {
	key        K
	prev, next *recencyNode[K]
}

// recencyList orders keys from most to least recently used. It is a ring
// around a sentinel: root.next is the newest key and root.prev the oldest.
// Callers synchronize access.
type recencyList[K comparable] struct {
	root recencyNode[K]
	n    int
}

func newRecencyList[K comparable]() *recencyList[K] {
	l := &recencyList[K]{}
	l.root.prev = &l.root
	l.root.next = &l.root
	return l
}

// len returns the number of linked keys.
func (l *recencyList[K]) len() int { return l.n }

// pushFront links key as the newest entry.
func (l *recencyList[K]) pushFront(key K) *recencyNode[K] {
	n := &recencyNode[K]{key: key}
	l.linkAfter(n, &l.root)
	l.n++
	return n
}

// touch marks n as the newest entry.
func (l *recencyList[K]) touch(n *recencyNode[K]) {
	if l.root.next == n {
		return
	}
	l.unlink(n)
	l.linkAfter(n, &l.root)
}

// remove unlinks n.
func (l *recencyList[K]) remove(n *recencyNode[K]) {
	l.unlink(n)
	l.n--
}

// popBack unlinks the oldest entry and returns its key.
func (l *recencyList[K]) popBack() (K, bool) {
	if l.n == 0 {
		var zero K
		return zero, false
	}
	n := l.root.prev
	l.remove(n)
	return n.key, true
}

func (l *recencyList[K]) linkAfter(n, at *recencyNode[K]) {
	n.prev = at
	n.next = at.next
	at.next.prev = n
	at.next = n
}

func (l *recencyList[K]) unlink(n *recencyNode[K]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
}
