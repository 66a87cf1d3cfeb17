package position

import "context"

// Repository provides persistence for positions. Create assigns the
// next integer ID (max existing + 1) and sets it on the passed record.
type Repository interface {
	List(ctx context.Context) ([]Position, error)
	Get(ctx context.Context, id int) (*Position, error)
	Create(ctx context.Context, p *Position) error
	Update(ctx context.Context, p *Position) error
	Delete(ctx context.Context, id int) error
}
