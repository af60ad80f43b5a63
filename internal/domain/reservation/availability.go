package reservation

// IsAvailable reports whether candidate conflicts with none of the occupied
// stays of a room. Callers supply the stays of every non-rejected reservation
// for that room; a room with no reservations is trivially available, which
// means an unknown room id reads as available too.
func IsAvailable(candidate StayRange, occupied []StayRange) bool {
	for _, stay := range occupied {
		if candidate.Overlaps(stay) {
			return false
		}
	}
	return true
}
