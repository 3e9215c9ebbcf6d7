package label

import "context"

type Repository interface {
	Save(ctx context.Context, l *Label) error
	List(ctx context.Context) ([]*Label, error)
	ListByIDs(ctx context.Context, ids []uint) ([]*Label, error)
}
