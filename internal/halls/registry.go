// Package halls holds the registry of template halls that events are
// instantiated from.
package halls

import (
	"sort"

	"hall-booker/internal/models"
)

// Registry maps hall names ("Hall-1") to template halls. Templates are never
// booked; events receive their own copy via models.NewEvent.
type Registry struct {
	halls map[string]*models.Hall
}

func NewRegistry() *Registry {
	return &Registry{halls: make(map[string]*models.Hall)}
}

// Default returns the five halls every session starts with.
func Default() *Registry {
	r := NewRegistry()
	r.Add("Hall-1", models.NewHall("1", 5))
	r.Add("Hall-2", models.NewHall("2", 5))
	r.Add("Hall-3", models.NewHall("3", 5))
	r.Add("Hall-4", models.NewHall("4", 10))
	r.Add("Hall-5", models.NewHall("5", 1))
	return r
}

func (r *Registry) Add(name string, hall *models.Hall) {
	r.halls[name] = hall
}

// ByName returns the template hall registered under name.
func (r *Registry) ByName(name string) (*models.Hall, error) {
	hall, ok := r.halls[name]
	if !ok {
		return nil, models.ErrNoSuchHall
	}
	return hall, nil
}

// Names lists registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.halls))
	for name := range r.halls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
