package perm

// Cycles decomposes p into disjoint cycles covering exactly the moved
// integers. Each cycle has length at least 2 and starts at its smallest
// element; cycles are ordered by increasing first element. The identity
// decomposes into no cycles.
//
// Complexity: O(degree).
func (p Permutation) Cycles() [][]int {
	var cycles [][]int
	visited := make([]bool, len(p.image))
	for i := range p.image {
		if visited[i] || p.image[i] == i+1 {
			continue
		}
		var orbit []int
		for x := i + 1; !visited[x-1]; x = p.image[x-1] {
			visited[x-1] = true
			orbit = append(orbit, x)
		}
		cycles = append(cycles, orbit)
	}

	return cycles
}
