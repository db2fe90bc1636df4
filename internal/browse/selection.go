package browse

// NoSelection is the cursor value for an empty projection
const NoSelection = -1

// StepUp moves the cursor one row up, clamped at the first row. A cursor
// with no selection lands on the first row of a non-empty list.
func StepUp(index, n int) int {
	if n <= 0 {
		return NoSelection
	}
	if index <= 0 {
		return 0
	}
	return index - 1
}

// StepDown moves the cursor one row down, clamped at the last row. A
// cursor with no selection lands on the first row of a non-empty list.
func StepDown(index, n int) int {
	if n <= 0 {
		return NoSelection
	}
	if index == NoSelection {
		return 0
	}
	if index >= n-1 {
		return n - 1
	}
	return index + 1
}

// ClampIndex re-validates the cursor after the row list is recomputed:
// the index is kept when still valid, moved to the last row when the
// list shrank past it, and to the first row when there was no selection
// but rows now exist. An empty list always yields NoSelection.
func ClampIndex(index, n int) int {
	if n <= 0 {
		return NoSelection
	}
	if index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
