package worker

// aviso_worker.go
// Processes expiry notice jobs from QueueAvisos: every notice is mailed to all
// ADMIN users so nobody misses a document about to expire.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mausoftSistemas/sistema-crt/internal/model"
	"github.com/mausoftSistemas/sistema-crt/internal/repository"
)

// AvisoJobPayload is the job envelope sent to QueueAvisos.
type AvisoJobPayload struct {
	DocumentoID      string `json:"documento_id"`
	Nombre           string `json:"nombre"`
	Empresa          string `json:"empresa,omitempty"`
	FechaVencimiento string `json:"fecha_vencimiento"` // 02/01/2006
}

// Mailer is the subset of the SMTP client the worker needs.
type Mailer interface {
	Enviar(to []string, subject, body string) error
}

type AvisoWorker struct {
	mailer   Mailer
	usuarios repository.UsuarioRepository
}

func NewAvisoWorker(mailer Mailer, usuarios repository.UsuarioRepository) *AvisoWorker {
	return &AvisoWorker{mailer: mailer, usuarios: usuarios}
}

func (w *AvisoWorker) Process(ctx context.Context, job Job) {
	var payload AvisoJobPayload
	if err := json.Unmarshal(job.Payload, &payload); err != nil {
		log.Error().Err(err).Msg("aviso_worker: invalid payload")
		return
	}

	admins, err := w.usuarios.ListarPorRol(ctx, model.RolAdmin)
	if err != nil {
		log.Error().Err(err).Msg("aviso_worker: could not list admins")
		return
	}
	if len(admins) == 0 {
		log.Warn().Msg("aviso_worker: no admin users to notify")
		return
	}

	to := make([]string, 0, len(admins))
	for _, u := range admins {
		to = append(to, u.Email)
	}

	subject := fmt.Sprintf("Documento por vencer: %s", payload.Nombre)
	body := fmt.Sprintf("El documento %q vence el %s.", payload.Nombre, payload.FechaVencimiento)
	if payload.Empresa != "" {
		body = fmt.Sprintf("El documento %q de la empresa %s vence el %s.",
			payload.Nombre, payload.Empresa, payload.FechaVencimiento)
	}

	if err := w.mailer.Enviar(to, subject, body); err != nil {
		log.Error().Err(err).Str("documento_id", payload.DocumentoID).Msg("aviso_worker: failed to send email")
		return
	}
	log.Info().Str("documento_id", payload.DocumentoID).Int("destinatarios", len(to)).
		Msg("aviso_worker: aviso enviado")
}
