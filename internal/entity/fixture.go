package entity

// Stairs move the player between floors when used.
type Stairs struct {
	// Up climbs to the next floor; otherwise the stairs head back down.
	Up bool
}

// Portal is the way out of the tower, waiting on the top floor. It stays
// closed until the player arrives carrying the relic.
type Portal struct {
	Open bool
}
