package component

// Group multiplies the alpha of everything the entity draws.
type Group struct {
	Alpha float64
}

var GroupComponent = NewComponent[Group]()
