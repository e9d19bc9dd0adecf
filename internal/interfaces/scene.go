// internal/interfaces/scene.go
package interfaces

import "automata-defense/internal/entity"

// Scene is what the simulation asks of the session that drives it.
type Scene interface {
	IsPaused() bool
	IsGameOver() bool
	ShouldSkipThisFrame() bool
	// ScoreItem credits a delivered item or bounty.
	ScoreItem(item *entity.Entity)
	AddCash(amount float64)
	AddStone(amount float64)
}
