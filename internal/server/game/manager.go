package game

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"shanks/internal/checkers"
	"shanks/internal/engine"
)

var ErrGameNotFound = errors.New("game not found")

type Manager struct {
	mu        sync.RWMutex
	games     map[string]*Game
	searchCfg engine.SearchConfig
}

// NewManager creates an empty registry; every game's engines use cfg.
func NewManager(cfg engine.SearchConfig) *Manager {
	return &Manager{
		games:     make(map[string]*Game),
		searchCfg: cfg,
	}
}

// NewGame registers a game from the standard opening.
func (m *Manager) NewGame() *Game {
	return m.add(checkers.NewDefaultBoard())
}

// NewGameFrom registers a game from an encoded position.
func (m *Manager) NewGameFrom(position string) (*Game, error) {
	board, err := checkers.DecodeBoard(position)
	if err != nil {
		return nil, err
	}
	return m.add(board), nil
}

func (m *Manager) add(board *checkers.Board) *Game {
	g := newGame(uuid.NewString(), board, m.searchCfg)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return g
}

func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}

// IDs lists the registered game ids in sorted order.
func (m *Manager) IDs() []string {
	m.mu.RLock()
	ids := maps.Keys(m.games)
	m.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
