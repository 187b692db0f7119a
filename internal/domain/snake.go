package domain

// Snake draft turn order: odd rounds go through the member order
// ascending, even rounds reversed, so nobody always picks last.
//
// All functions require pickNumber >= 1 and memberCount >= 1. Callers
// validate memberCount; a league always has at least its founder.

// RoundOf returns the 1-based round a pick belongs to.
func RoundOf(pickNumber, memberCount int) int {
	return (pickNumber + memberCount - 1) / memberCount
}

// SlotInRound returns the 0-based position of a pick within its round.
func SlotInRound(pickNumber, memberCount int) int {
	return (pickNumber - 1) % memberCount
}

// PickerIndex returns the 0-based index into the member order of whoever
// is on the clock for pickNumber.
func PickerIndex(pickNumber, memberCount int) int {
	slot := SlotInRound(pickNumber, memberCount)
	if RoundOf(pickNumber, memberCount)%2 == 1 {
		return slot
	}
	return memberCount - 1 - slot
}
