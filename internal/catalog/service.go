package catalog

import (
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/Armvda11/Epic7-sub000/internal/keys"
)

// ErrNotFound is returned when a requested hero or boss does not exist.
var ErrNotFound = errors.New("hero not found")

// Store is the narrow read-only contract the catalog needs from the
// persistence layer.
type Store interface {
	GetHeroesByIDs(ids []uint) ([]Hero, error)
	GetBossByID(id uint) (*Hero, error)
	GetEquipmentForHeroes(heroIDs []uint) (map[uint][]Equipment, error)
}

// Bundle is everything needed to build participants for one side.
type Bundle struct {
	Heroes    []Hero
	Equipment map[uint][]Equipment
}

// Service provides read-only catalog lookups. Concurrent loads of the
// same hero set are deduplicated so a matchmaking burst issues each
// query once.
type Service struct {
	store Store
	group singleflight.Group
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// HeroBundle loads the heroes with the given ids plus their equipped
// items. Missing ids surface as the store's not-found error.
func (s *Service) HeroBundle(ids []uint) (*Bundle, error) {
	v, err, _ := s.group.Do("heroes:"+keys.HeroSetKey(ids), func() (interface{}, error) {
		heroes, err := s.store.GetHeroesByIDs(ids)
		if err != nil {
			return nil, err
		}
		equipment, err := s.store.GetEquipmentForHeroes(ids)
		if err != nil {
			return nil, err
		}
		return &Bundle{Heroes: heroes, Equipment: equipment}, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Bundle), nil
}

// Boss loads a scripted encounter template by id.
func (s *Service) Boss(id uint) (*Hero, error) {
	return s.store.GetBossByID(id)
}
