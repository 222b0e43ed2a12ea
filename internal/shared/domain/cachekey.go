package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ---------------- Derivación de claves de caché ----------------

// CacheKey deriva la clave "<kind>:<hash>" de un listado a partir de sus
// campos normalizados. Cada entidad concatena sus filtros, orden y paginación
// en un orden fijo; aquí solo se hace el join y el digest.
//
// La función es pura: dos especificaciones iguales (incluyendo filtros
// ausentes representados como "") producen siempre la misma clave. El texto
// crudo del usuario nunca va en la clave, el hash acota la longitud y evita
// inyección de delimitadores.
func CacheKey(kind string, fields ...string) string {
	digest := xxhash.Sum64String(strings.Join(fields, "|"))
	return fmt.Sprintf("%s:%016x", kind, digest)
}

// StrOrEmpty normaliza un filtro ausente a "" para la derivación de claves.
func StrOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
