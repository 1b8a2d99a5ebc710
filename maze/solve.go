package maze

var stepDirections = [4]Direction{Up, Down, Left, Right}

// Solve returns a shortest open path from -> to, both ends included.
// It returns nil when to is unreachable or either end is not open.
func Solve(g *Grid, from, to Position) []Position {
	if !g.IsOpen(from) || !g.IsOpen(to) {
		return nil
	}

	prev := make(map[Position]Position, g.size)
	prev[from] = from
	queue := []Position{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == to {
			break
		}
		for _, d := range stepDirections {
			n := cur.Add(d.Delta())
			if _, seen := prev[n]; seen || !g.IsOpen(n) {
				continue
			}
			prev[n] = cur
			queue = append(queue, n)
		}
	}

	if _, ok := prev[to]; !ok {
		return nil
	}
	path := []Position{to}
	for at := to; at != from; {
		at = prev[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
