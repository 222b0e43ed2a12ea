package cache

import (
	"context"

	"go.uber.org/zap"
)

// GetOrFetch implementa el patrón cache-aside para consultas de lectura:
// derive key → lookup → hit (decodifica y devuelve) o miss (ejecuta la
// consulta autoritativa, puebla la caché con TTL fijo y devuelve).
//
// La caché nunca es fatal: si el lookup falla se degrada a consulta directa
// (y se omite también la escritura posterior), si el Set falla solo se
// registra un warning. Los errores de fetch sí se propagan sin tocar.
//
// No hay single-flight: dos misses concurrentes para la misma key ejecutan
// la consulta dos veces y escriben dos veces; last-write-wins con TTL fijo.
func GetOrFetch[T any](
	ctx context.Context,
	c Cache,
	key string,
	ttlSecs int,
	log *zap.Logger,
	fetch func(ctx context.Context) (T, error),
) (T, error) {
	var zero T

	degraded := c == nil
	if !degraded {
		var cached T
		hit, err := c.Get(ctx, key, &cached)
		switch {
		case err != nil:
			// Caché no disponible: consulta directa sin lectura ni escritura.
			degraded = true
			log.Warn("⚠️ Cache no disponible, consulta directa",
				zap.String("key", key),
				zap.Error(err))
		case hit:
			log.Debug("✅ Cache HIT", zap.String("key", key))
			return cached, nil
		default:
			log.Debug("🚫 Cache MISS", zap.String("key", key))
		}
	}

	val, err := fetch(ctx)
	if err != nil {
		return zero, err
	}

	if !degraded {
		if err := c.Set(ctx, key, val, ttlSecs); err != nil {
			log.Warn("⚠️ Cache update failed",
				zap.String("key", key),
				zap.Error(err))
		}
	}

	return val, nil
}
