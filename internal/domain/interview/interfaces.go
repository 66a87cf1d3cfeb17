package interview

import "context"

// Repository provides persistence for interviews. Create assigns the
// next integer ID (max existing + 1) and sets it on the passed record.
type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]Interview, error)
	Get(ctx context.Context, id int) (*Interview, error)
	Create(ctx context.Context, iv *Interview) error
	Update(ctx context.Context, iv *Interview) error
	Delete(ctx context.Context, id int) error
}
