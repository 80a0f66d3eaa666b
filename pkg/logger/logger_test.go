package logger_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/gardops/gardops-api/pkg/logger"
)

func TestNew_AgregaCampoService(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "gardops-api"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arranque")

	assert.Contains(t, buf.String(), `"service":"gardops-api"`)
}

func TestNew_SinServiceNoAgregaCampo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("arranque")

	assert.NotContains(t, buf.String(), `"service"`)
}

func TestNew_NivelDesconocidoCaeEnInfo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "verboso"})

	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())
}
