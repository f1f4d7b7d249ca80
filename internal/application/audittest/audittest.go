// Package audittest provee una bitácora en memoria para los tests de los casos de uso.
package audittest

import (
	"context"
	"sync"

	"github.com/jhoicas/evcharge-admin-api/internal/domain/entity"
)

// Repo implementación en memoria de repository.AuditRepository.
type Repo struct {
	mu      sync.Mutex
	Entries []entity.AuditTrail
	Err     error
}

// Record guarda la entrada (o devuelve Err si está definido).
func (r *Repo) Record(_ context.Context, e entity.AuditTrail) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.Entries = append(r.Entries, e)
	return nil
}

// Lines devuelve "acción/remarks" por entrada.
func (r *Repo) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.Entries {
		out = append(out, e.Action+"/"+e.Remarks)
	}
	return out
}
