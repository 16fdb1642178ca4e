//go:build unit || integration

package fakes

import (
	"context"
	"sync"

	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/readmodel"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type Catalog struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*readmodel.ResourceRM
	Loads   int
}

func NewCatalog(entries ...*readmodel.ResourceRM) *Catalog {
	c := &Catalog{entries: map[uuid.UUID]*readmodel.ResourceRM{}}
	for _, e := range entries {
		c.entries[e.ID] = e
	}
	return c
}

var _ shared.CatalogReader = (*Catalog)(nil)

func (c *Catalog) ResourceCatalog(_ context.Context, resourceID uuid.UUID) (*readmodel.ResourceRM, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Loads++

	e, ok := c.entries[resourceID]
	if !ok {
		return nil, errs.Wrapf(errs.ErrResourceNotFound, "id %s", resourceID)
	}
	cp := *e
	return &cp, nil
}

type Publisher struct {
	mu      sync.Mutex
	Changes []shared.StatusChange
	Err     error
}

var _ shared.EventPublisher = (*Publisher)(nil)

func (p *Publisher) PublishStatusChanges(_ context.Context, changes []shared.StatusChange) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.Changes = append(p.Changes, changes...)
	return nil
}
