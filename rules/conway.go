package rules

/*
ApplyConwayRules returns the next state of a single cell under the B3/S23 rule.

A live cell survives with 2 or 3 live neighbors, a dead cell is born with exactly 3,
and every other combination is dead: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
