package ecs

// Component is any value attachable to an Entity. Implementations only
// have to report the category bucket they belong in; storage is
// type-erased and callers recover concrete types with ComponentsOf.
type Component interface {
	Category() string
}
