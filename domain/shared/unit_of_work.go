package shared

import "context"

// UnitOfWork runs fn inside one transactional scope. Every mutation
// made through repositories within fn commits or rolls back together;
// partial application is never observable to other requests.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}
