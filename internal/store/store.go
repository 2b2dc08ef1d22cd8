package store

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/pebble"

	"tradeworker/internal/models"
)

// Store хранит идентификаторы последнего созданного брекета. Оба поля
// пишутся одной записью, чтобы читатель не увидел пару из разных заявок.
type Store interface {
	Highlight() (models.Highlight, bool, error)
	SetHighlight(h models.Highlight) error
	Close() error
}

const highlightKey = "hl:last"

type Pebble struct {
	db *pebble.DB
}

func OpenPebble(path string) (*Pebble, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("Не удалось открыть хранилище: %w", err)
	}
	return &Pebble{db: db}, nil
}

func (s *Pebble) Close() error { return s.db.Close() }

func (s *Pebble) SetHighlight(h models.Highlight) error {
	val, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("Не удалось сериализовать запись: %w", err)
	}
	if err := s.db.Set([]byte(highlightKey), val, pebble.Sync); err != nil {
		return fmt.Errorf("Не удалось записать в хранилище: %w", err)
	}
	return nil
}

func (s *Pebble) Highlight() (models.Highlight, bool, error) {
	val, closer, err := s.db.Get([]byte(highlightKey))
	if err != nil {
		if err == pebble.ErrNotFound {
			return models.Highlight{}, false, nil
		}
		return models.Highlight{}, false, fmt.Errorf("Не удалось прочитать из хранилища: %w", err)
	}
	defer closer.Close()

	var h models.Highlight
	if err := json.Unmarshal(val, &h); err != nil {
		return models.Highlight{}, false, fmt.Errorf("Не удалось разобрать запись: %w", err)
	}
	return h, true, nil
}
