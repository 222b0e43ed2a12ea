package logger

import (
	"go.uber.org/zap"
)

// New construye el logger estructurado de la aplicación. Se devuelve en vez
// de guardarse en estado global: cada componente lo recibe explícitamente.
func New() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "json" // Logs estructurados en JSON
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.MessageKey = "msg"
	cfg.EncoderConfig.LevelKey = "level"
	cfg.EncoderConfig.CallerKey = "caller"

	return cfg.Build()
}
