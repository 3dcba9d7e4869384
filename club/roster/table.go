// Package roster persists the club's CSV-backed datasets: the player
// roster table and the lifetime team record summary.
package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"sync"

	"fc-ssoa-api/club/models"
)

// csvHeader is the column layout of the roster table. The last column
// is derived (goals + assists) and recomputed on every write.
var csvHeader = []string{"position", "number", "name", "goals", "assists", "points"}

// Table is the durable player store. All reads come from the in-memory
// map; every mutation rewrites the whole backing file, so a crash loses
// nothing that was acknowledged.
type Table struct {
	mu      sync.RWMutex
	path    string
	players map[string]models.Player
}

// Open loads the roster table from path. A missing or malformed file is
// a startup error: the caller is expected to abort rather than run with
// an empty roster.
//
// defaultMatches seeds the matches_played counter for loaded rows; the
// roster file does not carry that column, so bulk-loaded players are
// assumed to have played the club's full record.
func Open(path string, defaultMatches int) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster table: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read roster table: %w", err)
	}

	t := &Table{
		path:    path,
		players: make(map[string]models.Player),
	}

	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 5 {
			return nil, fmt.Errorf("roster table row %d: expected at least 5 columns, got %d", i+1, len(row))
		}

		name := row[2]
		if name == "" {
			continue
		}

		p := models.Player{
			ID:            name,
			Name:          name,
			Position:      models.PositionFromCode(row[0]),
			Goals:         atoiOrZero(row[3]),
			Assists:       atoiOrZero(row[4]),
			MatchesPlayed: defaultMatches,
		}
		if n, err := strconv.Atoi(row[1]); err == nil {
			p.JerseyNumber = &n
		}
		t.players[name] = p
	}

	return t, nil
}

// Close flushes the roster one final time.
func (t *Table) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.flushLocked()
}

// All returns the roster in no particular order; callers sort.
func (t *Table) All() []models.Player {
	t.mu.RLock()
	defer t.mu.RUnlock()

	players := make([]models.Player, 0, len(t.players))
	for _, p := range t.players {
		players = append(players, p)
	}
	return players
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.players)
}

func (t *Table) Get(name string) (models.Player, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	p, ok := t.players[name]
	if !ok {
		return models.Player{}, models.ErrNotFound
	}
	return p, nil
}

// Put inserts or overwrites the player keyed by its name and persists
// the table.
func (t *Table) Put(p models.Player) (models.Player, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p.ID = p.Name
	t.players[p.Name] = p

	if err := t.flushLocked(); err != nil {
		return models.Player{}, err
	}
	return p, nil
}

// Delete removes the named player. The bool reports whether a removal
// actually occurred.
func (t *Table) Delete(name string) (bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.players[name]; !ok {
		return false, nil
	}
	delete(t.players, name)

	if err := t.flushLocked(); err != nil {
		return false, err
	}
	return true, nil
}

// AddStats adds goal and assist deltas to the named player's cumulative
// counters. Deltas may be zero.
func (t *Table) AddStats(name string, goals, assists int) (models.Player, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.players[name]
	if !ok {
		return models.Player{}, models.ErrNotFound
	}

	p.Goals += goals
	p.Assists += assists
	t.players[name] = p

	if err := t.flushLocked(); err != nil {
		return models.Player{}, err
	}
	return p, nil
}

// flushLocked rewrites the whole backing file. Rows are written in name
// order so the file diffs cleanly between edits. Callers must hold mu.
func (t *Table) flushLocked() error {
	names := make([]string, 0, len(t.players))
	for name := range t.players {
		names = append(names, name)
	}
	sort.Strings(names)

	f, err := os.Create(t.path)
	if err != nil {
		return fmt.Errorf("write roster table: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, name := range names {
		p := t.players[name]
		number := ""
		if p.JerseyNumber != nil {
			number = strconv.Itoa(*p.JerseyNumber)
		}
		row := []string{
			p.Position.Code(),
			number,
			p.Name,
			strconv.Itoa(p.Goals),
			strconv.Itoa(p.Assists),
			strconv.Itoa(p.Goals + p.Assists),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
