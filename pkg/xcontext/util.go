package xcontext

import "context"

// requestState carries the handler outcome across middlewares. It is mutable
// so After middlewares and closers observe what the handler produced.
type requestState struct {
	response any
	err      error
}

type requestStateKey struct{}

// WithRequestState must be attached by the router before any middleware runs.
func WithRequestState(ctx context.Context) context.Context {
	return context.WithValue(ctx, requestStateKey{}, &requestState{})
}

func state(ctx context.Context) *requestState {
	if s, ok := ctx.Value(requestStateKey{}).(*requestState); ok {
		return s
	}

	return &requestState{}
}

func SetError(ctx context.Context, err error) {
	state(ctx).err = err
}

func GetError(ctx context.Context) error {
	return state(ctx).err
}

func SetResponse(ctx context.Context, resp any) {
	state(ctx).response = resp
}

func GetResponse(ctx context.Context) any {
	return state(ctx).response
}
