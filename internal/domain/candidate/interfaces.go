package candidate

import "context"

// Repository provides persistence for candidates. Create assigns the
// next integer ID (max existing + 1) and sets it on the passed record.
// All reads return freshly materialized records; callers may mutate
// them freely without affecting the store.
type Repository interface {
	List(ctx context.Context, opts ListOptions) ([]Candidate, error)
	Get(ctx context.Context, id int) (*Candidate, error)
	Create(ctx context.Context, c *Candidate) error
	Update(ctx context.Context, c *Candidate) error
	Delete(ctx context.Context, id int) error
}
