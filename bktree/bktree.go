// Package bktree provides an in-memory BK-tree for fuzzy string
// lookup with Levenshtein distance.
package bktree

import (
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

type node struct {
	value    string
	children map[int]*node
}

// Tree is a BK-tree over a set of strings.
type Tree struct {
	root *node
	size int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Size returns the number of distinct values in the tree.
func (t *Tree) Size() int {
	return t.size
}

// Insert adds a value to the tree. Duplicates are ignored.
func (t *Tree) Insert(value string) {
	if t.root == nil {
		t.root = &node{value: value, children: make(map[int]*node)}
		t.size++
		return
	}

	cur := t.root
	for {
		d := distance(cur.value, value)
		if d == 0 {
			return
		}
		child, exists := cur.children[d]
		if !exists {
			cur.children[d] = &node{value: value, children: make(map[int]*node)}
			t.size++
			return
		}
		cur = child
	}
}

// Search returns all values within maxDistance of the query.
func (t *Tree) Search(query string, maxDistance int) []string {
	results := []string{}
	if t.root == nil {
		return results
	}
	search(t.root, query, maxDistance, &results)
	return results
}

func search(n *node, query string, maxDistance int, results *[]string) {
	d := distance(n.value, query)
	if d <= maxDistance {
		*results = append(*results, n.value)
	}
	// Triangle inequality: children outside [d-max, d+max] cannot match.
	for dist, child := range n.children {
		if dist >= d-maxDistance && dist <= d+maxDistance {
			search(child, query, maxDistance, results)
		}
	}
}

func distance(a, b string) int {
	return levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
}
