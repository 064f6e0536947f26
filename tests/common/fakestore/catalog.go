//go:build unit

package fakestore

import (
	"cmp"
	"context"
	"slices"

	"pet-scheduler/internal/domain/pet"
	"pet-scheduler/internal/domain/resource"
	"pet-scheduler/internal/domain/service"
	"pet-scheduler/internal/usecase/queries"
)

// Catalog read stores share the Store's lock and state.

func (s *Store) ServiceReads() queries.ServiceReadStore   { return serviceReads{s} }
func (s *Store) ResourceReads() queries.ResourceReadStore { return resourceReads{s} }
func (s *Store) PetReads() queries.PetReadStore           { return petReads{s} }

// Service returns the stored service, or nil.
func (s *Store) Service(id int64) *service.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.services[id]
}

type serviceReads struct{ s *Store }

func (r serviceReads) FindByID(_ context.Context, id int64) (*queries.ServiceView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	svc, ok := r.s.st.services[id]
	if !ok {
		return nil, notFound("service")
	}
	return serviceView(svc), nil
}

func (r serviceReads) FindActive(context.Context) ([]*queries.ServiceView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*queries.ServiceView
	for _, svc := range r.s.st.services {
		if svc.Active() {
			out = append(out, serviceView(svc))
		}
	}
	slices.SortFunc(out, func(a, b *queries.ServiceView) int { return cmp.Compare(a.Name, b.Name) })
	return out, nil
}

func serviceView(svc *service.Service) *queries.ServiceView {
	return &queries.ServiceView{
		ID:              svc.ID(),
		Name:            svc.Name(),
		PriceCents:      svc.PriceCents(),
		DurationMinutes: svc.DurationMinutes(),
		Active:          svc.Active(),
		CreatedAt:       svc.CreatedAt(),
		UpdatedAt:       svc.UpdatedAt(),
	}
}

type resourceReads struct{ s *Store }

func (r resourceReads) FindByID(_ context.Context, id int64) (*queries.ResourceView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res, ok := r.s.st.resources[id]
	if !ok {
		return nil, notFound("resource")
	}
	return resourceView(res), nil
}

func (r resourceReads) FindAll(context.Context) ([]*queries.ResourceView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*queries.ResourceView, 0, len(r.s.st.resources))
	for _, res := range r.s.st.resources {
		out = append(out, resourceView(res))
	}
	slices.SortFunc(out, func(a, b *queries.ResourceView) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func resourceView(res *resource.Resource) *queries.ResourceView {
	return &queries.ResourceView{ID: res.ID(), Name: res.Name(), CreatedAt: res.CreatedAt(), UpdatedAt: res.UpdatedAt()}
}

type petReads struct{ s *Store }

func (r petReads) FindByID(_ context.Context, id int64) (*queries.PetView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.st.pets[id]
	if !ok {
		return nil, notFound("pet")
	}
	return petView(p), nil
}

func (r petReads) FindAll(context.Context) ([]*queries.PetView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*queries.PetView, 0, len(r.s.st.pets))
	for _, p := range r.s.st.pets {
		out = append(out, petView(p))
	}
	slices.SortFunc(out, func(a, b *queries.PetView) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func petView(p *pet.Pet) *queries.PetView {
	d := p.Details()
	return &queries.PetView{
		ID:        p.ID(),
		Name:      p.Name(),
		Breed:     p.Breed(),
		OwnerName: p.OwnerName(),
		Phone:     p.Phone(),
		PhotoURL:  d.PhotoURL,
		Color:     d.Color,
		Weight:    d.Weight,
		Age:       d.Age,
		Chip:      d.Chip,
		BirthDate: d.BirthDate,
		CreatedAt: p.CreatedAt(),
	}
}
