package taxonomy

import (
	"encoding/json"
	"log"
	"os"

	"github.com/carbocation/pfx"
)

// Lookuper fetches a taxonomy entry by organism id. *Client satisfies it;
// tests substitute a fake.
type Lookuper interface {
	Lookup(organismID string) (Entry, error)
}

// Store is a JSON-file-backed map of organism id to taxonomy entry.
type Store struct {
	Path    string
	Entries map[string]Entry
}

// Open loads the store backing file at path. A missing file yields an empty
// store rather than an error, so the first run starts from nothing.
func Open(path string) (*Store, error) {
	s := &Store{Path: path, Entries: make(map[string]Entry)}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Println("No taxonomy store found; initializing a new one at", path)
		return s, nil
	} else if err != nil {
		return nil, pfx.Err(err)
	}

	if err := json.Unmarshal(data, &s.Entries); err != nil {
		return nil, pfx.Err(err)
	}

	log.Printf("Loaded taxonomy store with %d organisms from %s\n", len(s.Entries), path)
	return s, nil
}

// Save writes the store to its backing file.
func (s *Store) Save() error {
	b, err := json.MarshalIndent(s.Entries, "", "  ")
	if err != nil {
		return pfx.Err(err)
	}

	if err := os.WriteFile(s.Path, b, 0o644); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// Get returns the entry for an organism id, if present.
func (s *Store) Get(organismID string) (Entry, bool) {
	entry, ok := s.Entries[organismID]
	return entry, ok
}

// Put inserts or replaces the entry for an organism id.
func (s *Store) Put(organismID string, entry Entry) {
	s.Entries[organismID] = entry
}

// Len is the number of organisms in the store.
func (s *Store) Len() int {
	return len(s.Entries)
}

// Populate walks organism ids, fetching entries not already in the store.
// The store is saved every saveInterval new entries and once at the end, so
// an interrupted run loses at most one batch of lookups.
func (s *Store) Populate(organismIDs []string, client Lookuper, saveInterval int) error {
	if saveInterval < 1 {
		saveInterval = 1
	}

	log.Printf("Populating taxonomy store from %d sequence entries\n", len(organismIDs))

	added := 0
	prevSaved := 0
	for _, organismID := range organismIDs {
		if _, ok := s.Entries[organismID]; ok {
			continue
		}

		entry, err := client.Lookup(organismID)
		if err != nil {
			return pfx.Err(err)
		}
		s.Entries[organismID] = entry
		added++

		if added > prevSaved && added%saveInterval == 0 {
			if err := s.Save(); err != nil {
				return err
			}
			log.Printf("%d organisms added to the taxonomy store\n", added-prevSaved)
			prevSaved = added
		}
	}

	if err := s.Save(); err != nil {
		return err
	}

	log.Printf("%d organisms added to the taxonomy store\n", added)
	log.Printf("Taxonomy store contains %d total organisms\n", len(s.Entries))

	return nil
}
