package middleware

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/defido-labs/backend/pkg/errorx"
	"github.com/defido-labs/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debugf(msg string, a ...any) { l.record(msg, a...) }
func (l *recordingLogger) Infof(msg string, a ...any)  { l.record(msg, a...) }
func (l *recordingLogger) Warnf(msg string, a ...any)  { l.record(msg, a...) }
func (l *recordingLogger) Errorf(msg string, a ...any) { l.record(msg, a...) }

func (l *recordingLogger) record(msg string, a ...any) {
	l.lines = append(l.lines, fmt.Sprintf(msg, a...))
}

func loggerTestContext(log *recordingLogger, target string) context.Context {
	ctx := context.Background()
	ctx = xcontext.WithRequestState(ctx)
	ctx = xcontext.WithLogger(ctx, log)
	return xcontext.WithHTTPRequest(ctx, httptest.NewRequest("GET", target, nil))
}

func Test_Logger(t *testing.T) {
	log := &recordingLogger{}
	Logger()(loggerTestContext(log, "/getCollection"))

	require.Len(t, log.lines, 1)
	require.Equal(t, "GET | /getCollection", log.lines[0])
}

// A request path containing printf verbs must be logged literally.
func Test_Logger_PathWithFormatVerbs(t *testing.T) {
	log := &recordingLogger{}
	Logger()(loggerTestContext(log, "/getCollection/%25d"))

	require.Len(t, log.lines, 1)
	require.Equal(t, "GET | /getCollection/%d", log.lines[0])
}

func Test_Logger_Error(t *testing.T) {
	log := &recordingLogger{}
	ctx := loggerTestContext(log, "/mint")
	xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Invalid quantity"))
	Logger()(ctx)

	require.Len(t, log.lines, 1)
	require.Equal(t, fmt.Sprintf("GET | /mint | %d", errorx.BadRequest), log.lines[0])
}
