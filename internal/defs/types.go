// internal/defs/types.go
package defs

// AttackPattern defines how many enemies an attack tower hits per act.
type AttackPattern string

const (
	AttackNone   AttackPattern = ""
	AttackSingle AttackPattern = "SINGLE" // one random enemy in range
	AttackAll    AttackPattern = "ALL"    // every enemy in range
)
