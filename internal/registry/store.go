// Copyright 2026 GasGuard Engineering
// SPDX-License-Identifier: Apache-2.0

// Package registry stores named custom Config presets in a local sqlite
// database, so tuned limit sets can be shared between analyze runs. It
// stores configurations only, never analysis results.
package registry

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gasguard/gasguard/internal/costmodel"
	"github.com/gasguard/gasguard/internal/errors"
)

// PresetInfo describes a stored preset without its full config payload.
type PresetInfo struct {
	Name      string    `json:"name"`
	Version   string    `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

type Store struct {
	conn *sql.DB
}

// Open opens (and if needed creates) the preset store at path. An empty
// path defaults to ~/.gasguard/presets.db.
func Open(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".gasguard", "presets.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	store := &Store{conn: conn}
	if err := store.init(); err != nil {
		conn.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS presets (
		name TEXT PRIMARY KEY,
		version TEXT NOT NULL,
		config TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	`
	_, err := s.conn.Exec(query)
	return err
}

// Save validates and stores cfg under name, replacing any existing preset
// with that name.
func (s *Store) Save(name string, cfg costmodel.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(cfg)
	if err != nil {
		return errors.WrapMarshalFailed(err)
	}

	query := "INSERT OR REPLACE INTO presets (name, version, config, created_at) VALUES (?, ?, ?, ?)"
	_, err = s.conn.Exec(query, name, cfg.Version, string(payload), time.Now().UTC())
	return err
}

// Load returns the preset stored under name.
func (s *Store) Load(name string) (costmodel.Config, error) {
	var payload string
	err := s.conn.QueryRow("SELECT config FROM presets WHERE name = ?", name).Scan(&payload)
	if err == sql.ErrNoRows {
		return costmodel.Config{}, errors.WrapPresetNotFound(name)
	}
	if err != nil {
		return costmodel.Config{}, err
	}

	var cfg costmodel.Config
	if err := json.Unmarshal([]byte(payload), &cfg); err != nil {
		return costmodel.Config{}, errors.WrapUnmarshalFailed(err, payload)
	}
	return cfg, nil
}

// List returns all stored presets, newest first.
func (s *Store) List() ([]PresetInfo, error) {
	rows, err := s.conn.Query("SELECT name, version, created_at FROM presets ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []PresetInfo
	for rows.Next() {
		var info PresetInfo
		if err := rows.Scan(&info.Name, &info.Version, &info.CreatedAt); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Delete removes the preset stored under name.
func (s *Store) Delete(name string) error {
	res, err := s.conn.Exec("DELETE FROM presets WHERE name = ?", name)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errors.WrapPresetNotFound(name)
	}
	return nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}
