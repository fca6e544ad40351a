package medal

// AssignRanks stamps competition ranks onto rows in place without reordering them.
//
// The first row is ranked 1. A row whose gold/silver/bronze triple equals the
// previous row's shares its rank; any other row takes its 1-based position, so ranks
// skip after a tie group (1, 2, 2, 4, 5). Total is not part of the comparison.
func AssignRanks(rows []Row) {
	for i := range rows {
		if i > 0 && sameMedals(rows[i], rows[i-1]) {
			rows[i].Rank = rows[i-1].Rank
			continue
		}
		rows[i].Rank = i + 1
	}
}
