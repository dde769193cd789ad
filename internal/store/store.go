package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// User is one assignee's bookkeeping record. Closed, RiskAccepted and
// TaskClosed count the current reporting period; Debt carries across periods
// and is never reset.
type User struct {
	Name         string `json:"name"`
	Norm         int    `json:"norm"`
	Closed       int    `json:"closed"`
	RiskAccepted int    `json:"risk_accepted"`
	TaskClosed   int    `json:"task_closed"`
	Debt         int    `json:"debt"`
	Tasks        []int  `json:"tasks"`
}

func (u *User) HasTask(id int) bool {
	for _, t := range u.Tasks {
		if t == id {
			return true
		}
	}
	return false
}

func (u *User) AddTask(id int) {
	u.Tasks = append(u.Tasks, id)
}

// RemoveTask deletes id from the user's task list, preserving order, and
// reports whether it was present.
func (u *User) RemoveTask(id int) bool {
	for i, t := range u.Tasks {
		if t == id {
			u.Tasks = append(u.Tasks[:i], u.Tasks[i+1:]...)
			return true
		}
	}
	return false
}

// Store is the whole task-assignment state: one JSON object mapping user id
// to record, read once at startup and written back wholesale.
type Store struct {
	Users map[string]*User
	path  string
}

// Load reads the state file. A missing or malformed file is an error the
// operator has to fix; there is no recovery path.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	users := make(map[string]*User)
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse tasks file %s: %w", path, err)
	}
	return &Store{Users: users, path: path}, nil
}

// Save writes the full map back, via a temp file renamed over the original so
// a crash mid-write cannot leave a truncated document.
func (s *Store) Save() error {
	data, err := json.MarshalIndent(s.Users, "", "    ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}
	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write tasks file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write tasks file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write tasks file: %w", err)
	}
	return nil
}

// ResetPeriodCounters zeroes the per-period counters for every user so the
// next reporting window starts clean. Debt is kept.
func (s *Store) ResetPeriodCounters() {
	for _, u := range s.Users {
		u.Closed = 0
		u.RiskAccepted = 0
		u.TaskClosed = 0
	}
}

// SortedIDs returns user ids in a stable order for deterministic reports.
func (s *Store) SortedIDs() []string {
	ids := make([]string, 0, len(s.Users))
	for id := range s.Users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
