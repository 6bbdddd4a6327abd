package main

// UnionFind is a disjoint-set forest over elements [0, n) with union by
// rank and path compression, keeping a live count of the remaining
// components.
type UnionFind struct {
	parent []int
	rank   []int
	count  int
}

func NewUnionFind(count int) *UnionFind {
	u := &UnionFind{
		parent: make([]int, count),
		rank:   make([]int, count),
		count:  count,
	}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

// Find returns the representative of the set containing id. Every node
// visited on the way is relinked directly to the root.
func (u *UnionFind) Find(id int) int {
	root := id
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[id] != root {
		id, u.parent[id] = u.parent[id], root
	}
	return root
}

// Merge joins the sets containing i1 and i2 and reports whether they
// were distinct. The shallower tree is attached under the deeper root;
// on equal ranks the first root absorbs the second and its rank grows.
func (u *UnionFind) Merge(i1, i2 int) bool {
	n1 := u.Find(i1)
	n2 := u.Find(i2)
	if n1 == n2 {
		return false
	}
	if u.rank[n1] < u.rank[n2] {
		u.parent[n1] = n2
	} else if u.rank[n1] > u.rank[n2] {
		u.parent[n2] = n1
	} else {
		u.parent[n2] = n1
		u.rank[n1]++
	}
	u.count--
	return true
}

// Count returns the number of disjoint sets left.
func (u *UnionFind) Count() int {
	return u.count
}
