package config

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Manager holds configuration as a nested map addressed with dot notation,
// e.g. "logging.level".
type Manager struct {
	config map[string]any
	mu     sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		config: make(map[string]any),
	}
}

// Load replaces the whole configuration tree.
func (m *Manager) Load(data map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if data == nil {
		data = make(map[string]any)
	}
	m.config = data
}

func (m *Manager) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	setNested(m.config, key, value)
}

// Get returns nil when the key does not exist.
func (m *Manager) Get(key string) any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return getNested(m.config, key)
}

func (m *Manager) GetString(key string) string {
	value := m.Get(key)
	if value == nil {
		return ""
	}
	if str, ok := value.(string); ok {
		return str
	}
	return fmt.Sprintf("%v", value)
}

// GetStringDefault returns fallback for missing or empty keys.
func (m *Manager) GetStringDefault(key, fallback string) string {
	if s := m.GetString(key); s != "" {
		return s
	}
	return fallback
}

func (m *Manager) GetInt(key string) int {
	switch v := m.Get(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(strings.TrimSpace(v))
		return n
	}
	return 0
}

func (m *Manager) GetBool(key string) bool {
	switch v := m.Get(key).(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	}
	return false
}

func (m *Manager) Has(key string) bool {
	return m.Get(key) != nil
}

func getNested(data map[string]any, key string) any {
	if key == "" {
		return nil
	}

	var current any = data
	for _, part := range strings.Split(key, ".") {
		c, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		if current, ok = c[part]; !ok {
			return nil
		}
	}

	return current
}

func setNested(data map[string]any, key string, value any) {
	if key == "" {
		return
	}

	parts := strings.Split(key, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}

var (
	globalManager *Manager
	globalMu      sync.Mutex
)

// SetGlobal installs m as the process-wide manager.
func SetGlobal(m *Manager) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalManager = m
}

// GetGlobal returns the process-wide manager, creating an empty one on first use.
func GetGlobal() *Manager {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalManager == nil {
		globalManager = NewManager()
	}
	return globalManager
}
