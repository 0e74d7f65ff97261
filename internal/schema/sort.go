package schema

import "log"

// SortByDependency orders tables so that every table comes after the tables
// it references, which is the order CREATE TABLE statements with foreign
// keys must run in. The stage schemas are acyclic, but the sort stays total:
// if no table's dependencies are satisfied on a pass, the one with the
// fewest unmet dependencies (name as tie-breaker) is forced through so a
// bad input cannot hang the materializer.
func SortByDependency(tables []*Table) []*Table {
	var sorted []*Table
	processed := make(map[string]bool)

	for len(sorted) < len(tables) {
		added := false

		for _, t := range tables {
			if processed[t.Name] {
				continue
			}
			ready := true
			for _, dep := range t.Dependencies {
				if !processed[dep] {
					ready = false
					break
				}
			}
			if ready {
				sorted = append(sorted, t)
				processed[t.Name] = true
				added = true
			}
		}

		if !added {
			var best *Table
			bestUnmet := 0
			for _, t := range tables {
				if processed[t.Name] {
					continue
				}
				unmet := 0
				for _, dep := range t.Dependencies {
					if !processed[dep] {
						unmet++
					}
				}
				if best == nil || unmet < bestUnmet || (unmet == bestUnmet && t.Name < best.Name) {
					best = t
					bestUnmet = unmet
				}
			}
			if best == nil {
				break
			}
			log.Printf("[Sort] Forcing %s with %d unmet dependencies", best.Name, bestUnmet)
			sorted = append(sorted, best)
			processed[best.Name] = true
		}
	}

	return sorted
}
