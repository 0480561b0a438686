package grid

// upRightCell maps index idx of up-right group d back to a cell in a grid of
// n rows. Group d holds the cells with row+col == d, index 0 at the highest
// row (see the reversal in New).
func upRightCell(d, idx, n int) Location {
	if d < n {
		return Location{Row: d - idx, Column: idx}
	}
	return Location{Row: n - 1 - idx, Column: d - n + 1 + idx}
}

// downRightCell maps index idx of down-right group d back to a cell in a
// grid of n rows. Group d holds the cells with col-row == d-n+1, index 0 at
// the lowest row.
func downRightCell(d, idx, n int) Location {
	if d < n {
		return Location{Row: n - 1 - d + idx, Column: idx}
	}
	return Location{Row: idx, Column: d - n + 1 + idx}
}
