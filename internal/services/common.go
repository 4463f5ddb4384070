package services

import (
	"context"
	"fmt"
	"strconv"

	"travellounge/internal/cache"
	"travellounge/internal/domain"
	"travellounge/internal/realtime"
	"travellounge/internal/utils"
)

// Deps carries what every service shares beyond its repositories.
type Deps struct {
	Cache     *cache.Store
	Publisher realtime.Publisher
	RequestID string
}

func (d Deps) cache() *cache.Store {
	if d.Cache != nil {
		return d.Cache
	}
	return cache.Public()
}

// invalidate drops cached public reads after an admin write.
func (d Deps) invalidate() {
	d.cache().Clear()
}

func (d Deps) publish(eventType string, payload any) {
	if d.Publisher == nil {
		return
	}
	d.Publisher.Publish(realtime.Event{Type: eventType, Payload: payload})
}

func (d Deps) log(module, action, format string, args ...any) {
	utils.LogEvent(d.RequestID, module, action, fmt.Sprintf(format, args...))
}

// remember caches a public read under key.
func remember[T any](d Deps, key string, load func() (T, error)) (T, error) {
	return cache.Remember(d.cache(), key, load)
}

func requireID(field string, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: field, Msg: "invalid id"}
	}
	return nil
}

// wrap keeps domain errors and wraps everything else as internal.
func wrap(err error) error {
	return domain.Internal(err)
}

// ctxErr lets long loops stop when the client is gone.
func ctxErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return domain.InternalError{Msg: "request cancelled", Err: err}
	}
	return nil
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
