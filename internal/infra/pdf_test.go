package infra

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mausoftSistemas/sistema-crt/internal/model"
)

func TestTruncarCortaPorRunas(t *testing.T) {
	assert.Equal(t, "corto", truncar("corto", 40))

	largo := strings.Repeat("Capacitación ", 5) // 65 runes, accent cycling positions
	got := truncar(largo, 40)
	assert.Equal(t, 40, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
	// Every rune must still be valid; a byte-level cut would leave a broken one.
	for _, r := range got {
		assert.NotEqual(t, '�', r)
	}
}

func TestGenerarReporteVencimientos(t *testing.T) {
	ayer := time.Now().AddDate(0, 0, -1)
	docs := []model.Documento{
		{
			Nombre:           strings.Repeat("Capacitación anual de seguridad e higiene ", 2),
			FechaVencimiento: &ayer,
			Empresa:          &model.Empresa{Nombre: "Compañía SA"},
			Categoria:        &model.Categoria{Nombre: "Capacitación"},
		},
		{Nombre: "Sin datos"},
	}

	var buf bytes.Buffer
	assert.NoError(t, GenerarReporteVencimientos(docs, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
