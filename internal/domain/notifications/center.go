package notifications

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"cattle-farm-manager/internal/domain/herds"
	"cattle-farm-manager/internal/domain/pastures"
	"cattle-farm-manager/internal/ports/changefeed"

	"go.uber.org/zap"
)

var ErrNotFound = errors.New("notification not found")

// Source entrega los datos de una cuenta y la fecha de hoy.
// rotation.Service la implementa.
type Source interface {
	Snapshot(ctx context.Context, ownerID string) ([]pastures.Pasture, []herds.Herd, error)
	Today() time.Time
}

// Center es dueño de un Registry por cuenta y los mantiene al día
// escuchando los cambios de potreros y rebaños.
type Center struct {
	src  Source
	feed changefeed.Feed
	log  *zap.Logger

	mu         sync.Mutex
	registries map[string]*Registry
}

func NewCenter(src Source, feed changefeed.Feed, log *zap.Logger) *Center {
	if log == nil {
		log = zap.NewNop()
	}
	return &Center{
		src:        src,
		feed:       feed,
		log:        log,
		registries: map[string]*Registry{},
	}
}

// Start suscribe el centro a las colecciones observadas. Cada cambio dispara
// una pasada de Reconcile para la cuenta dueña del documento.
func (c *Center) Start(ctx context.Context) error {
	if c.feed == nil {
		return nil
	}
	for _, col := range []string{changefeed.CollectionPastures, changefeed.CollectionHerds} {
		if err := c.feed.Subscribe(ctx, col, c.onChange); err != nil {
			return err
		}
	}
	return nil
}

func (c *Center) onChange(ch changefeed.Change) {
	if strings.TrimSpace(ch.OwnerID) == "" {
		return
	}
	// el callback no trae contexto propio
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := c.Refresh(ctx, ch.OwnerID); err != nil {
		c.log.Error("notifications refresh failed",
			zap.String("owner_id", ch.OwnerID),
			zap.String("collection", ch.Collection),
			zap.Error(err),
		)
	}
}

// Refresh reevalúa la cuenta completa.
func (c *Center) Refresh(ctx context.Context, ownerID string) error {
	ps, hs, err := c.src.Snapshot(ctx, ownerID)
	if err != nil {
		return err
	}
	reg, _ := c.registry(ownerID)
	added, removed := Reconcile(reg, c.src.Today(), ps, hs)
	if added > 0 || removed > 0 {
		c.log.Debug("notifications reconciled",
			zap.String("owner_id", ownerID),
			zap.Int("added", added),
			zap.Int("removed", removed),
			zap.Int("live", reg.Len()),
		)
	}
	return nil
}

// List hace una pasada de evaluación con la fecha de hoy y devuelve las
// alertas vivas de la cuenta. Así una alerta que vence con el paso de los
// días aparece aunque no haya cambios en potreros ni rebaños.
func (c *Center) List(ctx context.Context, ownerID string) ([]Notification, error) {
	reg, created := c.registry(ownerID)
	if err := c.Refresh(ctx, ownerID); err != nil {
		if created {
			c.forget(ownerID)
		}
		return nil, err
	}
	return reg.List(), nil
}

// Dismiss descarta una alerta hasta la siguiente pasada de evaluación.
// Una cuenta sin registro todavía no tiene alertas que descartar.
func (c *Center) Dismiss(ownerID, id string) error {
	reg, ok := c.lookup(ownerID)
	if !ok || !reg.Remove(id) {
		return ErrNotFound
	}
	return nil
}

func (c *Center) lookup(ownerID string) (*Registry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	reg, ok := c.registries[ownerID]
	return reg, ok
}

func (c *Center) registry(ownerID string) (*Registry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if reg, ok := c.registries[ownerID]; ok {
		return reg, false
	}
	reg := NewRegistry()
	c.registries[ownerID] = reg
	return reg, true
}

func (c *Center) forget(ownerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.registries, ownerID)
}
