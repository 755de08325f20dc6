package repo

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Config is the repository's dotted key-value store (user.name, user.email,
// remote.<name>.url, ...), persisted as a deterministic sorted text file:
// one "key = value" line per entry. This is the Config component from
// spec.md §4.14.
type Config struct {
	path   string
	values map[string]string
}

func newConfig(metaDir string) *Config {
	return &Config{path: filepath.Join(metaDir, "config"), values: map[string]string{}}
}

// loadConfig reads the config file, tolerating a missing file as empty.
func loadConfig(metaDir string) (*Config, error) {
	c := newConfig(metaDir)
	f, err := os.Open(c.path) //nolint:gosec // path is repo-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, newErr(KindIOFault, "loadConfig", c.path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		c.values[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, newErr(KindIOFault, "loadConfig", c.path, err)
	}
	return c, nil
}

// Get returns the value for key and whether it is set.
func (c *Config) Get(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Set assigns key = value and persists the config.
func (c *Config) Set(key, value string) error {
	c.values[key] = value
	return c.save()
}

// Unset removes key and persists the config.
func (c *Config) Unset(key string) error {
	delete(c.values, key)
	return c.save()
}

func (c *Config) save() error {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b bytes.Buffer
	for _, k := range keys {
		fmt.Fprintf(&b, "%s = %s\n", k, c.values[k])
	}
	return writeFileAtomic(c.path, b.Bytes())
}

// Remotes returns remote name -> url for every remote.<name>.url entry.
func (c *Config) Remotes() map[string]string {
	out := map[string]string{}
	for k, v := range c.values {
		if name, ok := strings.CutPrefix(k, "remote."); ok {
			if n, ok := strings.CutSuffix(name, ".url"); ok {
				out[n] = v
			}
		}
	}
	return out
}

// AddRemote sets remote.<name>.url, failing if the remote already exists.
func (c *Config) AddRemote(name, url string) error {
	key := "remote." + name + ".url"
	if _, ok := c.values[key]; ok {
		return newErr(KindAlreadyExists, "AddRemote", name, nil)
	}
	return c.Set(key, url)
}

// RemoveRemote deletes remote.<name>.url, failing if it does not exist.
func (c *Config) RemoveRemote(name string) error {
	key := "remote." + name + ".url"
	if _, ok := c.values[key]; !ok {
		return newErr(KindNotFound, "RemoveRemote", name, nil)
	}
	return c.Unset(key)
}

// Identity returns the author/committer "Name <email>" pair, falling back to
// built-in defaults when user.name/user.email are unset, per spec.md §6.
func (c *Config) Identity() (name, email string) {
	name, ok := c.Get("user.name")
	if !ok || name == "" {
		name = "pygit"
	}
	email, ok = c.Get("user.email")
	if !ok || email == "" {
		email = "pygit@localhost"
	}
	return name, email
}
