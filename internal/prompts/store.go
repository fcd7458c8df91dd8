package prompts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Prompt keys. All four are always present after a load or reset.
const (
	KeyCategorization   = "categorization"
	KeyActionExtraction = "action_extraction"
	KeySummarization    = "summarization"
	KeyAutoReply        = "auto_reply"
)

// Keys lists the canonical prompt keys in display order
var Keys = []string{KeyCategorization, KeyActionExtraction, KeySummarization, KeyAutoReply}

// Defaults returns the canonical prompt set
func Defaults() map[string]string {
	return map[string]string{
		KeyCategorization:   "Categorize this email into one of these categories: Important, Newsletter, Spam, To-Do. To-Do emails must include a direct request requiring user action. Respond with only the category name.",
		KeyActionExtraction: "Extract actionable tasks from this email. Look for requests, deadlines, and required actions. Respond in JSON format with tasks array containing task, deadline, and priority.",
		KeySummarization:    "Provide a concise 2-3 sentence summary of this email focusing on the main purpose and key points. Highlight any required actions or decisions.",
		KeyAutoReply:        "Draft a polite and professional email reply. Keep it brief (3-4 sentences max), address the main points, and maintain a helpful tone. Do not make promises you can't keep.",
	}
}

// Store persists the prompt set as a single JSON file and keeps an
// in-process copy. Single-user: no locking, last write wins.
type Store struct {
	path  string
	cache map[string]string
}

// DefaultPath returns the prompts file location under the config dir
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "sift", "prompts.json"), nil
}

// New creates a store backed by path. If no file exists yet it writes the
// canonical defaults, so a later Load never sees a missing file.
func New(path string) (*Store, error) {
	s := &Store{path: path, cache: map[string]string{}}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.Save(Defaults()); err != nil {
			return s, fmt.Errorf("initializing prompts file: %w", err)
		}
		return s, nil
	}

	if _, err := s.Load(); err != nil {
		return s, err
	}
	return s, nil
}

// Load reads the persisted set into the cache. On failure it returns the
// error and an empty mapping; it never fabricates defaults here.
func (s *Store) Load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.cache = map[string]string{}
		return map[string]string{}, fmt.Errorf("loading prompts: %w", err)
	}

	var set map[string]string
	if err := json.Unmarshal(data, &set); err != nil {
		s.cache = map[string]string{}
		return map[string]string{}, fmt.Errorf("loading prompts: %w", err)
	}

	s.cache = set
	return copySet(set), nil
}

// Save overwrites the persisted set. The cache is replaced only after the
// write succeeds, so callers never observe a mix of old and new values.
func (s *Store) Save(set map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("saving prompts: %w", err)
	}

	data, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return fmt.Errorf("saving prompts: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("saving prompts: %w", err)
	}

	s.cache = copySet(set)
	return nil
}

// Get returns the cached value for key, or "" if absent
func (s *Store) Get(key string) string {
	return s.cache[key]
}

// All returns a copy of the cached set
func (s *Store) All() map[string]string {
	return copySet(s.cache)
}

// Update sets one key and persists the whole set
func (s *Store) Update(key, value string) error {
	set := copySet(s.cache)
	set[key] = value
	return s.Save(set)
}

// ResetToDefaults persists the canonical set, replacing any prior content
func (s *Store) ResetToDefaults() error {
	return s.Save(Defaults())
}

// Path returns the backing file location
func (s *Store) Path() string {
	return s.path
}

func copySet(set map[string]string) map[string]string {
	out := make(map[string]string, len(set))
	for k, v := range set {
		out[k] = v
	}
	return out
}
