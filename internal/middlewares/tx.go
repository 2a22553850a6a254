package middlewares

import (
	"bytes"
	"context"
	"net/http"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/safedrive-rewards/internal/logger"
)

// txState is the request transaction and the callbacks waiting for its commit.
type txState struct {
	tx    *sqlx.Tx
	hooks []func()
}

// TxMiddleware wraps an HTTP handler with a database transaction.
//
// The response is buffered until the transaction outcome is known: a status below 400
// commits, anything else rolls back. A failed commit replaces the response with a 500.
// AfterCommit callbacks run once the committed response has been flushed.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			state := &txState{tx: tx}
			buf := &bufferedResponseWriter{w: w, status: http.StatusOK}

			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					panic(rec)
				}
			}()

			next.ServeHTTP(buf, r.WithContext(context.WithValue(r.Context(), txKey, state)))

			if buf.status >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				buf.flush()
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			// the client gets the full response before post-commit side effects run
			buf.flush()
			if err := http.NewResponseController(w).Flush(); err != nil {
				logger.Log.Debugw("response not flushed", "error", err)
			}
			for _, fn := range state.hooks {
				fn()
			}
		})
	}
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		return nil
	}
	return state.tx
}

// AfterCommit runs fn once the request transaction commits. Without a transaction in
// the context fn runs immediately. Callbacks are dropped on rollback.
func AfterCommit(ctx context.Context, fn func()) {
	state, _ := ctx.Value(txKey).(*txState)
	if state == nil {
		fn()
		return
	}
	state.hooks = append(state.hooks, fn)
}

type bufferedResponseWriter struct {
	w           http.ResponseWriter
	status      int
	wroteHeader bool
	body        bytes.Buffer
}

func (b *bufferedResponseWriter) Header() http.Header {
	return b.w.Header()
}

func (b *bufferedResponseWriter) WriteHeader(code int) {
	if b.wroteHeader {
		return
	}
	b.status = code
	b.wroteHeader = true
}

func (b *bufferedResponseWriter) Write(p []byte) (int, error) {
	if !b.wroteHeader {
		b.WriteHeader(http.StatusOK)
	}
	return b.body.Write(p)
}

func (b *bufferedResponseWriter) flush() {
	b.w.Header().Set("Content-Length", strconv.Itoa(b.body.Len()))
	b.w.WriteHeader(b.status)
	_, _ = b.w.Write(b.body.Bytes())
}
