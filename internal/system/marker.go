// internal/system/marker.go
package system

import (
	"automata-defense/internal/entity"
	"automata-defense/internal/event"
	"automata-defense/internal/interfaces"
	"automata-defense/internal/types"
	"automata-defense/internal/world"
)

// MarkerState is the progress of a construction marker.
type MarkerState int

const (
	MarkerPending MarkerState = iota
	MarkerReady
	MarkerResolved
)

func (s MarkerState) String() string {
	switch s {
	case MarkerPending:
		return "pending"
	case MarkerReady:
		return "ready"
	case MarkerResolved:
		return "resolved"
	}
	return "unknown"
}

// StateOfMarker reports whether the next activation of m resolves it.
func StateOfMarker(m *entity.Entity) MarkerState {
	switch {
	case m.Marker.Resolved:
		return MarkerResolved
	case m.Marker.Activations+1 >= m.Marker.Required:
		return MarkerReady
	default:
		return MarkerPending
	}
}

// ActivateMarker records one builder activation of m. The activation that
// reaches the required count resolves the marker. Activating a resolved
// marker does nothing. It always reports the activation as handled.
func ActivateMarker(w *world.World, s interfaces.Scene, m *entity.Entity) bool {
	switch StateOfMarker(m) {
	case MarkerResolved:
	case MarkerReady:
		resolveMarker(w, s, m)
	default:
		m.Marker.Activations++
	}
	return true
}

func resolveMarker(w *world.World, s interfaces.Scene, m *entity.Entity) {
	mk := m.Marker
	pos := w.MustPos(m)
	target := w.Get(mk.Target)

	mk.Activations++
	mk.Resolved = true
	w.Release(m.ID)

	switch m.Kind {
	case types.BuildNewMarker:
		for _, o := range w.EntitiesInCell(pos, nil) {
			// Enemies are left for the reaper so their bounty and kill still count.
			if o.Is(types.CapEnemy) {
				o.SetHP(0)
				continue
			}
			if o.Robot != nil && o.Robot.IsCarrying() {
				w.Release(o.Robot.Carrying)
			}
			w.Release(o.ID)
		}
		if target != nil {
			w.SetPos(target, pos)
		}
	case types.SellMarker:
		if target != nil {
			s.AddCash(target.SellPrice())
			w.Release(target.ID)
		}
	case types.UpgradeMarker:
		if target != nil {
			w.Release(target.ID)
		}
		if repl := w.Get(mk.Replacement); repl != nil {
			w.SetPos(repl, pos)
		}
	}
	w.MarkGeometryChanged()

	w.Logger().Debug("marker resolved", "marker", m.Kind, "cell", pos, "activations", mk.Activations)
	w.Dispatcher().Dispatch(event.Event{
		Type: event.MarkerResolved,
		Data: event.EntityData{ID: m.ID, Kind: m.Kind, Cell: pos},
	})
}

// RefundMarker cancels the pending order behind m and gives back its price.
// Sale markers cost nothing and refund nothing.
func RefundMarker(w *world.World, s interfaces.Scene, m *entity.Entity) {
	mk := m.Marker
	if mk.Resolved {
		return
	}
	var paid *entity.Entity
	switch m.Kind {
	case types.BuildNewMarker:
		paid = w.Get(mk.Target)
	case types.UpgradeMarker:
		paid = w.Get(mk.Replacement)
	}
	if paid != nil {
		s.AddCash(paid.GoldCost())
		s.AddStone(paid.StoneCost())
		w.Release(paid.ID)
	}
	mk.Resolved = true
	w.Release(m.ID)
}
