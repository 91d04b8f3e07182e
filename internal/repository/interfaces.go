package repository

import "github.com/adforgehq/adforge/internal/domain"

// ProductRepository handles datastore operations for products.
type ProductRepository interface {
	// List returns the full product collection.
	List() []domain.Product

	// Create inserts a new product unless a duplicate already exists.
	// A false return is a rejection, not an error: it means the record
	// already exists and callers should proceed with the existing one.
	Create(candidate domain.Product) bool

	// Update merges the entity into the record with the same ID.
	// Unknown IDs are an accepted idempotent no-op.
	Update(entity domain.Product)

	// Delete removes the record with the given ID. Referencing avatars are
	// left in place; deletion never cascades.
	Delete(id string)
}

// AvatarRepository handles datastore operations for avatars.
type AvatarRepository interface {
	List() []domain.Avatar

	// Create inserts a new avatar unless a duplicate exists within the
	// candidate's productId scope.
	Create(candidate domain.Avatar) bool

	Update(entity domain.Avatar)
	Delete(id string)
}
