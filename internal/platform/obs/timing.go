package obs

import (
	"context"
	"log"
	"time"
)

type ctxKey string

// RequestIDKey carries the request id assigned by the HTTP middleware so
// timing lines from nested upstream calls can be tied back to one request.
const RequestIDKey ctxKey = "req_id"

// Time measures one named operation. Defer the returned func with a pointer
// to the caller's error so the log line records how the operation ended:
//
//	defer obs.Time(ctx, "places.Geocode")(&err)
//
// Plan building fans out into several geocode, place-search, and model
// calls per request; these lines are how a slow plan gets attributed.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s dur=%dms err=%v", reqID, name, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s dur=%dms", reqID, name, dur.Milliseconds())
	}
}
