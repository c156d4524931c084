package component

// RenderLayer sorts draw order; lower layers draw first.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()
