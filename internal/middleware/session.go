package middleware

import (
	"context"

	"github.com/defido-labs/backend/pkg/errorx"
	"github.com/defido-labs/backend/pkg/router"
	"github.com/defido-labs/backend/pkg/xcontext"
	"github.com/google/uuid"
)

const sessionIDField = "session_id"

// WithBrowsingSession assigns every visitor a stable session id carried in a
// cookie. Minted token ids accumulate under this id across requests.
func WithBrowsingSession() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		req := xcontext.HTTPRequest(ctx)
		cfg := xcontext.Configs(ctx)

		session, err := xcontext.SessionStore(ctx).Get(req, cfg.Session.Name)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot decode the session cookie: %v", err)
		}

		id, ok := session.Values[sessionIDField].(string)
		if !ok || id == "" {
			id = uuid.NewString()
			session.Values[sessionIDField] = id

			if err := session.Save(req, xcontext.HTTPWriter(ctx)); err != nil {
				xcontext.Logger(ctx).Errorf("Cannot save the session cookie: %v", err)
				return ctx, errorx.Unknown
			}
		}

		return xcontext.WithSessionID(ctx, id), nil
	}
}
