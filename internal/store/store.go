package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Vizzilnt/Protracker1/internal/logger"
	"github.com/Vizzilnt/Protracker1/internal/models"
)

const (
	tasksFile = "tasks.json"
	todosFile = "todos.json"
	usersFile = "users.json"
	stateFile = "state.json"
)

// Storage persists each collection as a JSON file under BaseDir. Every
// mutation is a full read-modify-write of one file; the mutex serializes those
// cycles so concurrent callers cannot interleave them.
type Storage struct {
	BaseDir string
	mu      sync.Mutex
}

func NewStorage(baseDir string) *Storage {
	os.MkdirAll(baseDir, 0755)
	return &Storage{BaseDir: baseDir}
}

// load reads path into out. A missing or unparseable file leaves out at its
// zero value: stored data that cannot be read is treated as empty, not fatal.
func (s *Storage) load(path string, out any) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("unreadable data file, starting empty", zap.String("path", path), zap.Error(err))
		}
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Warn("corrupt data file, starting empty", zap.String("path", path), zap.Error(err))
	}
}

func (s *Storage) save(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (s *Storage) path(name string) string {
	return filepath.Join(s.BaseDir, name)
}

func (s *Storage) LoadTasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := []models.Task{}
	s.load(s.path(tasksFile), &tasks)
	return tasks
}

func (s *Storage) SaveTasks(tasks []models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(s.path(tasksFile), tasks)
}

func (s *Storage) LoadToDos() []models.ToDoItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos := []models.ToDoItem{}
	s.load(s.path(todosFile), &todos)
	return todos
}

func (s *Storage) SaveToDos(todos []models.ToDoItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(s.path(todosFile), todos)
}

func (s *Storage) LoadUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := []models.User{}
	s.load(s.path(usersFile), &users)
	return users
}

func (s *Storage) SaveUsers(users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(s.path(usersFile), users)
}

func (s *Storage) LoadState() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	var state models.AppState
	s.load(s.path(stateFile), &state)
	return state
}

func (s *Storage) SaveState(state models.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(s.path(stateFile), state)
}

// DataFiles returns the files a backup archive should contain. Missing files
// are skipped so a fresh install still produces a valid archive.
func (s *Storage) DataFiles() []string {
	names := []string{tasksFile, todosFile, usersFile, stateFile}
	paths := make([]string, 0, len(names))
	for _, name := range names {
		p := s.path(name)
		if _, err := os.Stat(p); err == nil {
			paths = append(paths, p)
		}
	}
	return paths
}
