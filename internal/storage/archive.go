// Package storage persists finished session summaries to a local bbolt
// file, independent of the explicit JSON stat exports.
package storage

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"

	"github.com/Nicolas2912/ChessCoordinateTraining/internal/game"
)

const (
	// sessionsBucket holds one record per finished game, keyed by sequence.
	sessionsBucket = "sessions"

	// metaBucket tracks bookkeeping values.
	metaBucket = "meta"

	// countKey stores the total number of archived sessions.
	countKey = "count"
)

// Record is one archived session.
type Record struct {
	Summary   game.Summary `json:"summary"`
	Timestamp int64        `json:"timestamp"`
}

// Archive is an append-only store of session records.
type Archive struct {
	db       *bbolt.DB
	path     string
	count    uint64
	isClosed bool
}

// Open creates or opens the archive at path, creating parent directories
// as needed.
func Open(path string) (*Archive, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create archive directory: %w", err)
		}
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{
		Timeout: 5 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists([]byte(sessionsBucket)); err != nil {
			return fmt.Errorf("create sessions bucket: %w", err)
		}
		if _, err := tx.CreateBucketIfNotExists([]byte(metaBucket)); err != nil {
			return fmt.Errorf("create meta bucket: %w", err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	archive := &Archive{db: db, path: path}

	count, err := archive.Count()
	if err != nil {
		db.Close()
		return nil, err
	}
	archive.count = count

	return archive, nil
}

// Append stores one finished session, stamped with the current time.
func (a *Archive) Append(summary game.Summary) error {
	if a.isClosed {
		return fmt.Errorf("archive is closed")
	}

	record := Record{
		Summary:   summary,
		Timestamp: time.Now().Unix(),
	}
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}

	err = a.db.Update(func(tx *bbolt.Tx) error {
		sessions := tx.Bucket([]byte(sessionsBucket))
		if sessions == nil {
			return fmt.Errorf("sessions bucket not found")
		}

		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, a.count)
		if err := sessions.Put(key, data); err != nil {
			return fmt.Errorf("store session: %w", err)
		}

		meta := tx.Bucket([]byte(metaBucket))
		countValue := make([]byte, 8)
		binary.BigEndian.PutUint64(countValue, a.count+1)
		return meta.Put([]byte(countKey), countValue)
	})
	if err != nil {
		return err
	}

	a.count++
	return nil
}

// Count returns the number of archived sessions.
func (a *Archive) Count() (uint64, error) {
	if a.isClosed {
		return 0, fmt.Errorf("archive is closed")
	}

	var count uint64
	err := a.db.View(func(tx *bbolt.Tx) error {
		meta := tx.Bucket([]byte(metaBucket))
		if meta == nil {
			return fmt.Errorf("meta bucket not found")
		}
		if value := meta.Get([]byte(countKey)); value != nil {
			count = binary.BigEndian.Uint64(value)
		}
		return nil
	})
	return count, err
}

// Recent returns up to n most recent records, oldest first.
func (a *Archive) Recent(n int) ([]Record, error) {
	if a.isClosed {
		return nil, fmt.Errorf("archive is closed")
	}

	var records []Record
	err := a.db.View(func(tx *bbolt.Tx) error {
		sessions := tx.Bucket([]byte(sessionsBucket))
		if sessions == nil {
			return fmt.Errorf("sessions bucket not found")
		}

		cursor := sessions.Cursor()
		skipped := 0
		if total := sessions.Stats().KeyN; total > n {
			skipped = total - n
		}
		for k, v := cursor.First(); k != nil; k, v = cursor.Next() {
			if skipped > 0 {
				skipped--
				continue
			}
			var record Record
			if err := json.Unmarshal(v, &record); err != nil {
				return fmt.Errorf("unmarshal session record: %w", err)
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Close releases the underlying database. Safe to call more than once.
func (a *Archive) Close() error {
	if a.isClosed {
		return nil
	}
	a.isClosed = true
	return a.db.Close()
}
