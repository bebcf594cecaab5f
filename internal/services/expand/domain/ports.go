package domain

import "context"

// ServicePort defines the service contract for expand
type ServicePort interface {
	Expand(ctx context.Context, in ExpandInput) (ExpandResult, error)
	Count(ctx context.Context, in ExpandInput) (CountResult, error)
	Dictionary(ctx context.Context) DictionaryInfo
}
