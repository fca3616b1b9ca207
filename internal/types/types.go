// internal/types/types.go
package types

// EntityID — идентификатор врагов и снарядов внутри матча.
type EntityID uint64
