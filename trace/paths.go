package trace

import "slices"

// PathTo walks prev back from end to start. It returns nil when end was
// never reached (no predecessor and end != start). A revisited vertex stops
// the walk, so a corrupted predecessor map cannot loop forever.
func PathTo(prev map[string]string, start, end string) []string {
	if end == start {
		return []string{start}
	}
	if _, ok := prev[end]; !ok {
		return nil
	}

	path := []string{end}
	seen := map[string]bool{end: true}
	for cur := end; cur != start; {
		p, ok := prev[cur]
		if !ok || seen[p] {
			return nil
		}
		seen[p] = true
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path
}

// TreeEdges lists predecessor-tree edges in the given node order. weight
// holds, per vertex, the weight of the arc that last improved it, so parallel
// links report the one the relaxation actually used.
func TreeEdges(order []string, prev map[string]string, weight map[string]float64) []Edge {
	var out []Edge
	for _, v := range order {
		u, ok := prev[v]
		if !ok {
			continue
		}
		out = append(out, Edge{Source: u, Target: v, Weight: weight[v]})
	}

	return out
}
