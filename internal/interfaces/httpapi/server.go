package httpapi

import (
	"net/http"

	"github.com/andybalholm/brotli"
	"github.com/riskibarqy/worldcup-analytics/internal/platform/id"
	"github.com/riskibarqy/worldcup-analytics/internal/platform/logging"
)

type RouterOptions struct {
	CORSAllowedOrigins []string
	CompressionLevel   int
	SwaggerEnabled     bool
	IDs                id.Generator
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if opts.IDs == nil {
		opts.IDs = id.NewUUIDGenerator()
	}
	if opts.CompressionLevel < brotli.BestSpeed || opts.CompressionLevel > brotli.BestCompression {
		opts.CompressionLevel = brotli.DefaultCompression
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerTeamRoutes(mux, handler)
	registerMatchRoutes(mux, handler)
	registerGoalRoutes(mux, handler)
	registerPlayerRoutes(mux, handler)

	return RequestTracing(
		RequestID(opts.IDs,
			RequestLogging(logger,
				CORS(opts.CORSAllowedOrigins,
					Compress(opts.CompressionLevel, recoverPanic(logger, mux)),
				),
			),
		),
	)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
