package lsp

import (
	"fmt"
	"runtime/debug"

	"github.com/tliron/glsp"

	"enerdocs.dev/idfls/internal/log"
	"enerdocs.dev/idfls/lsp/methods/workspace"
	"enerdocs.dev/idfls/lsp/types"
)

// method wraps an LSP handler that returns (result, error) with middleware:
// panic recovery, request logging, and error context wrapping.
// Returns the underlying function type so it's compatible with protocol.Handler field types.
func method[P, R any](
	s types.ServerContext,
	methodName string,
	handler func(*types.RequestContext, P) (R, error),
) func(*glsp.Context, P) (R, error) {
	return func(ctx *glsp.Context, params P) (result R, err error) {
		req := types.NewRequestContext(s, ctx)

		// Panic recovery keeps a broken handler from taking down the server
		defer func() {
			if r := recover(); r != nil {
				log.Error("PANIC in %s: %v\nStack trace:\n%s", methodName, r, debug.Stack())
				workspace.LogError(ctx, "Internal error in %s: %v", methodName, r)
				err = fmt.Errorf("internal error in %s", methodName)
				var zero R
				result = zero
			}
		}()

		result, err = handler(req, params)

		if err != nil {
			workspace.LogError(ctx, "%s: %v", methodName, err)
			return result, fmt.Errorf("%s: %w", methodName, err)
		}

		logWarnings(ctx, methodName, req)
		return result, nil
	}
}

// notify wraps an LSP notification handler that returns only error
func notify[P any](
	s types.ServerContext,
	methodName string,
	handler func(*types.RequestContext, P) error,
) func(*glsp.Context, P) error {
	return func(ctx *glsp.Context, params P) (err error) {
		req := types.NewRequestContext(s, ctx)

		defer func() {
			if r := recover(); r != nil {
				log.Error("PANIC in %s: %v\nStack trace:\n%s", methodName, r, debug.Stack())
				workspace.LogError(ctx, "Internal error in %s: %v", methodName, r)
				err = fmt.Errorf("internal error in %s", methodName)
			}
		}()

		err = handler(req, params)

		if err != nil {
			workspace.LogError(ctx, "%s: %v", methodName, err)
			return fmt.Errorf("%s: %w", methodName, err)
		}

		logWarnings(ctx, methodName, req)
		return nil
	}
}

// noParam wraps an LSP handler that takes no params (like Shutdown)
func noParam(
	s types.ServerContext,
	methodName string,
	handler func(*types.RequestContext) error,
) func(*glsp.Context) error {
	return func(ctx *glsp.Context) (err error) {
		req := types.NewRequestContext(s, ctx)

		defer func() {
			if r := recover(); r != nil {
				log.Error("PANIC in %s: %v\nStack trace:\n%s", methodName, r, debug.Stack())
				workspace.LogError(ctx, "Internal error in %s: %v", methodName, r)
				err = fmt.Errorf("internal error in %s", methodName)
			}
		}()

		err = handler(req)

		if err != nil {
			workspace.LogError(ctx, "%s: %v", methodName, err)
			return fmt.Errorf("%s: %w", methodName, err)
		}

		logWarnings(ctx, methodName, req)
		return nil
	}
}

// logWarnings reports request-scoped warnings after a successful handler run
func logWarnings(ctx *glsp.Context, methodName string, req *types.RequestContext) {
	for _, warning := range req.Warnings() {
		workspace.LogWarning(ctx, "%s: %v", methodName, warning)
	}
}
