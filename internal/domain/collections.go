package domain

// Storage keys for the two persisted collections. Each key maps to one
// serialized list under the datastore bucket.
const (
	ProductsKey = "products"
	AvatarsKey  = "avatars"
)

// Collections lists every persisted collection key, used by diagnostics and
// datastore initialization.
var Collections = []string{
	ProductsKey,
	AvatarsKey,
}
