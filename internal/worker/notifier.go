package worker

// notifier.go
// Daily scan for documents whose expiration falls inside the notice window.
// Each hit becomes an aviso job; the worker pool does the actual mailing.

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mausoftSistemas/sistema-crt/internal/repository"
)

type Notifier struct {
	documentos repository.DocumentoRepository
	dispatcher *Dispatcher
	avisoDias  int
}

func NewNotifier(documentos repository.DocumentoRepository, dispatcher *Dispatcher, avisoDias int) *Notifier {
	return &Notifier{documentos: documentos, dispatcher: dispatcher, avisoDias: avisoDias}
}

// Run scans once at startup and then every 24 hours until ctx is cancelled.
func (n *Notifier) Run(ctx context.Context) {
	n.scan(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("notifier shutting down")
			return
		case <-ticker.C:
			n.scan(ctx)
		}
	}
}

func (n *Notifier) scan(ctx context.Context) {
	limite := time.Now().AddDate(0, 0, n.avisoDias)
	docs, err := n.documentos.VencenAntesDe(ctx, limite)
	if err != nil {
		log.Error().Err(err).Msg("notifier: scan failed")
		return
	}

	for _, d := range docs {
		payload := AvisoJobPayload{
			DocumentoID: d.ID.String(),
			Nombre:      d.Nombre,
		}
		if d.Empresa != nil {
			payload.Empresa = d.Empresa.Nombre
		}
		if d.FechaVencimiento != nil {
			payload.FechaVencimiento = d.FechaVencimiento.Format("02/01/2006")
		}
		if err := n.dispatcher.EnqueueAviso(ctx, payload); err != nil {
			log.Error().Err(err).Str("documento_id", payload.DocumentoID).Msg("notifier: enqueue failed")
		}
	}

	log.Info().Int("documentos", len(docs)).Msg("notifier: scan completed")
}
