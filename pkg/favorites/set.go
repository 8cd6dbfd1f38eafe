package favorites

import (
	"github.com/emirpasic/gods/trees/redblacktree"
)

// Set is the ordered collection of favorites.
type Set struct {
	tree *redblacktree.Tree
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{tree: redblacktree.NewWith(keyComparator)}
}

// Insert adds e unless an entry with the same key is present.
func (s *Set) Insert(e *Entry) bool {
	k := e.FavoriteKey()
	if _, found := s.tree.Get(k); found {
		return false
	}
	s.tree.Put(k, e)
	return true
}

// Find returns the entry matching k.
func (s *Set) Find(k Keyer) (*Entry, bool) {
	v, found := s.tree.Get(k.FavoriteKey())
	if !found {
		return nil, false
	}
	return v.(*Entry), true
}

// Delete removes the entry matching k.
func (s *Set) Delete(k Keyer) bool {
	key := k.FavoriteKey()
	if _, found := s.tree.Get(key); !found {
		return false
	}
	s.tree.Remove(key)
	return true
}

// Ceiling returns the first entry not ordered before k.
func (s *Set) Ceiling(k Keyer) (*Entry, bool) {
	node, found := s.tree.Ceiling(k.FavoriteKey())
	if !found {
		return nil, false
	}
	return node.Value.(*Entry), true
}

// Floor returns the last entry not ordered after k.
func (s *Set) Floor(k Keyer) (*Entry, bool) {
	node, found := s.tree.Floor(k.FavoriteKey())
	if !found {
		return nil, false
	}
	return node.Value.(*Entry), true
}

// Len returns the number of entries.
func (s *Set) Len() int {
	return s.tree.Size()
}

// Entries returns every entry in key order.
func (s *Set) Entries() []*Entry {
	list := make([]*Entry, 0, s.tree.Size())
	it := s.tree.Iterator()
	for it.Next() {
		list = append(list, it.Value().(*Entry))
	}
	return list
}
