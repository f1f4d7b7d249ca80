// Package audit envuelve cada flujo de escritura con su entrada en la bitácora de administración.
package audit

import (
	"context"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
	"github.com/jhoicas/evcharge-admin-api/internal/domain/repository"
	"github.com/jhoicas/evcharge-admin-api/pkg/logger"
)

// Entry describe la acción auditada: texto para el camino exitoso y para el fallido.
type Entry struct {
	AdminID int64
	CPOID   *int64
	Success string
	Failure string
}

// Outcome resultado que un flujo reporta cuando terminó sin error.
type Outcome struct {
	skip   bool
	failed bool
	action string
}

// Success registra el texto de éxito de la entrada.
func Success() Outcome { return Outcome{} }

// SuccessAs registra éxito con un texto distinto al de la entrada.
func SuccessAs(action string) Outcome { return Outcome{action: action} }

// Failed registra el texto de fallo sin que el flujo devuelva error.
func Failed() Outcome { return Outcome{failed: true} }

// Skip no escribe bitácora.
func Skip() Outcome { return Outcome{skip: true} }

// Recorder escribe las entradas de bitácora.
type Recorder struct {
	repo repository.AuditRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.AuditRepository, log *logger.Logger) *Recorder {
	if log == nil {
		log = logger.Nop()
	}
	return &Recorder{repo: repo, log: log}
}

// Run ejecuta fn y audita éxito o fallo. El error original se devuelve sin cambios;
// un fallo al escribir la bitácora solo se registra en el log.
func Run[T any](ctx context.Context, r *Recorder, e Entry, fn func(ctx context.Context) (T, error)) (T, error) {
	return RunWithOutcome(ctx, r, e, func(ctx context.Context) (T, Outcome, error) {
		v, err := fn(ctx)
		return v, Success(), err
	})
}

// RunWithOutcome como Run, pero fn decide qué se audita cuando no hay error.
func RunWithOutcome[T any](ctx context.Context, r *Recorder, e Entry, fn func(ctx context.Context) (T, Outcome, error)) (T, error) {
	v, outcome, err := fn(ctx)
	if err != nil {
		r.write(ctx, e, e.Failure, entity.AuditRemarkFailed, err)
		return v, err
	}
	switch {
	case outcome.skip:
	case outcome.failed:
		r.write(ctx, e, e.Failure, entity.AuditRemarkFailed, nil)
	default:
		action := e.Success
		if outcome.action != "" {
			action = outcome.action
		}
		r.write(ctx, e, action, entity.AuditRemarkSuccess, nil)
	}
	return v, nil
}

func (r *Recorder) write(ctx context.Context, e Entry, action, remarks string, cause error) {
	// La bitácora debe escribirse aunque la petición haya sido cancelada.
	ctx = context.WithoutCancel(ctx)
	err := r.repo.Record(ctx, entity.AuditTrail{
		AdminID: e.AdminID,
		CPOID:   e.CPOID,
		Action:  action,
		Remarks: remarks,
	})
	if err != nil {
		ev := r.log.Warn().Err(err).Int64("admin_id", e.AdminID).Str("action", action).Str("remarks", remarks)
		if cause != nil {
			ev = ev.AnErr("cause", cause)
		}
		ev.Msg("no se pudo escribir la bitácora")
	}
}
