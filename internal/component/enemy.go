package component

// Enemy holds the marching state of an attacker.
type Enemy struct {
	Path Path
	Tier int // difficulty tier it was generated at
}
