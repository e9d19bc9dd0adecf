// internal/component/ore.go
package component

// Rock is a mineable resource tower.
type Rock struct {
	Countdown int // acts left before it can be mined again
}

// IsActive reports whether the rock can be mined now.
func (r *Rock) IsActive() bool {
	return r.Countdown <= 0
}
