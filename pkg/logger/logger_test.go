package logger_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/negocio-api/pkg/config"
	"github.com/tu-usuario/negocio-api/pkg/logger"
)

func TestNew_NivelDesdeConfig(t *testing.T) {
	l := logger.New(config.AppConfig{Env: "production", LogLevel: "debug"})
	assert.Equal(t, zerolog.DebugLevel, l.Zerolog().GetLevel())
}

// Un nivel no reconocido (o vacío) cae en info.
func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	for _, level := range []string{"", "verboso", "INFO "} {
		l := logger.New(config.AppConfig{Env: "production", LogLevel: level})
		assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel(), "nivel %q", level)
	}
}
