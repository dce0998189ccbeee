package game

// PlayerStats tallies the resources a player controls.
type PlayerStats struct {
	Player       string
	Territories  int
	Troops       int
	Regions      int
	RegionBonus  int // Sum of the values of controlled regions
	LargestGroup int // Size of the largest connected group of owned territories
}

// Stats tallies owner's territories, troops and regions.
func (b *Board) Stats(owner string) PlayerStats {
	stats := PlayerStats{Player: owner}
	for _, t := range b.territories {
		if t.Owner == owner {
			stats.Territories++
			stats.Troops += t.Troops
		}
	}
	for _, r := range b.RegionsOf(owner) {
		stats.Regions++
		stats.RegionBonus += r.Value
	}
	stats.LargestGroup = b.largestGroup(owner)
	return stats
}

func (b *Board) largestGroup(owner string) int {
	visited := make(map[string]bool)
	largest := 0
	for _, t := range b.territories {
		if t.Owner != owner || visited[t.Name] {
			continue
		}
		if size := b.dfs(t.Name, owner, visited); size > largest {
			largest = size
		}
	}
	return largest
}

// dfs returns the size of the connected group of owner's territories that
// contains start.
func (b *Board) dfs(start, owner string, visited map[string]bool) int {
	if visited[start] {
		return 0
	}
	visited[start] = true

	size := 1
	for _, neighbor := range b.index[start].Adjacent {
		if b.index[neighbor].Owner == owner {
			size += b.dfs(neighbor, owner, visited)
		}
	}
	return size
}
