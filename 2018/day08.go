package main

import (
	"fmt"

	"aoc2018"
)

type treeNode struct {
	children []*treeNode
	metadata []int
}

// parseTree decodes the preorder encoding: child count, metadata count,
// the children, then the metadata entries.
func parseTree(nums []int) (*treeNode, error) {
	pos := 0
	take := func(n int) ([]int, error) {
		if n < 0 || pos+n > len(nums) {
			return nil, fmt.Errorf("%w: tree truncated at entry %d", aoc.ErrParse, pos)
		}
		v := nums[pos : pos+n]
		pos += n
		return v, nil
	}

	type frame struct {
		node              *treeNode
		children, entries int
	}
	var st aoc.Stack[*frame]
	open := func() (*treeNode, error) {
		h, err := take(2)
		if err != nil {
			return nil, err
		}
		n := &treeNode{children: make([]*treeNode, 0, h[0])}
		st.Push(&frame{node: n, children: h[0], entries: h[1]})
		return n, nil
	}

	root, err := open()
	if err != nil {
		return nil, err
	}
	for {
		f, ok := st.Peek()
		if !ok {
			break
		}
		if f.children > 0 {
			f.children--
			child, err := open()
			if err != nil {
				return nil, err
			}
			f.node.children = append(f.node.children, child)
			continue
		}
		if f.node.metadata, err = take(f.entries); err != nil {
			return nil, err
		}
		st.Pop()
	}
	if pos != len(nums) {
		return nil, fmt.Errorf("%w: %d trailing entries after tree", aoc.ErrParse, len(nums)-pos)
	}
	return root, nil
}

func (n *treeNode) metadataSum() int {
	sum := aoc.Sum(n.metadata...)
	for _, c := range n.children {
		sum += c.metadataSum()
	}
	return sum
}

// value is the metadata sum for a leaf. Otherwise each metadata entry is a
// 1-based child index and the value is the sum of those children's values;
// out of range entries count for nothing.
func (n *treeNode) value() int {
	if len(n.children) == 0 {
		return aoc.Sum(n.metadata...)
	}
	v := 0
	for _, m := range n.metadata {
		if m >= 1 && m <= len(n.children) {
			v += n.children[m-1].value()
		}
	}
	return v
}

func (s solver) tree() *treeNode {
	nums := aoc.MustGet(aoc.ParseInts(s.Text(), aoc.IsSpace))
	return aoc.MustGet(parseTree(nums))
}

/*
want=138

2 3 0 3 10 11 12 1 1 0 1 99 2 1 1 2
*/
func (s solver) D8p1() any {
	return s.tree().metadataSum()
}

// want=66
func (s solver) D8p2() any {
	return s.tree().value()
}
