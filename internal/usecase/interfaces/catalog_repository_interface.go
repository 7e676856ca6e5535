package interfaces

import "context"

// Keyed is implemented by every record a catalog repository can hold.
type Keyed interface {
	Key() string
}

// ICatalogRepository abstracts persistence for one record collection
// (customers, services, products, estimates).
//
// Conventions shared by all implementations:
//   - List returns records in insertion order as a defensive copy.
//   - Absence is not an error: GetByID and Update return the zero value
//     when the id does not exist, Delete reports it via the bool. Use
//     cases are the layer that turns absence into a typed not-found
//     error.
//   - Repositories never assign ids; the use case does.
type ICatalogRepository[T Keyed] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, rec T) (T, error)
	Delete(ctx context.Context, id string) (bool, error)
}
