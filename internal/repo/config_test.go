package repo

import "testing"

func TestConfigGetSetUnset(t *testing.T) {
	c, err := loadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if _, ok := c.Get("user.name"); ok {
		t.Error("expected user.name unset on fresh config")
	}
	if err := c.Set("user.name", "Ada"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	if got, ok := c.Get("user.name"); !ok || got != "Ada" {
		t.Errorf("Get() = (%q, %v), want (Ada, true)", got, ok)
	}
	if err := c.Unset("user.name"); err != nil {
		t.Fatalf("Unset() error: %v", err)
	}
	if _, ok := c.Get("user.name"); ok {
		t.Error("expected user.name unset after Unset()")
	}
}

func TestConfigPersistsAcrossLoad(t *testing.T) {
	dir := t.TempDir()
	c1, err := loadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := c1.Set("user.email", "ada@example.com"); err != nil {
		t.Fatal(err)
	}

	c2, err := loadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := c2.Get("user.email"); !ok || got != "ada@example.com" {
		t.Errorf("Get() after reload = (%q, %v)", got, ok)
	}
}

func TestConfigSaveIsSortedAndDeterministic(t *testing.T) {
	dir := t.TempDir()
	c, err := loadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set("zeta", "1"); err != nil {
		t.Fatal(err)
	}
	if err := c.Set("alpha", "2"); err != nil {
		t.Fatal(err)
	}

	c2, err := loadConfig(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := c2.Get("alpha"); got != "2" {
		t.Errorf("alpha = %q, want 2", got)
	}
	if got, _ := c2.Get("zeta"); got != "1" {
		t.Errorf("zeta = %q, want 1", got)
	}
}

func TestConfigRemotes(t *testing.T) {
	c, err := loadConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.AddRemote("origin", "file:///tmp/repo"); err != nil {
		t.Fatalf("AddRemote() error: %v", err)
	}
	if err := c.AddRemote("origin", "file:///tmp/other"); err == nil {
		t.Error("expected error re-adding an existing remote")
	}

	remotes := c.Remotes()
	if remotes["origin"] != "file:///tmp/repo" {
		t.Errorf("Remotes() = %v", remotes)
	}

	if err := c.RemoveRemote("origin"); err != nil {
		t.Fatalf("RemoveRemote() error: %v", err)
	}
	if err := c.RemoveRemote("origin"); err == nil {
		t.Error("expected error removing an already-removed remote")
	}
}

func TestConfigIdentityDefaults(t *testing.T) {
	c, err := loadConfig(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	name, email := c.Identity()
	if name != "pygit" || email != "pygit@localhost" {
		t.Errorf("Identity() = (%q, %q), want defaults", name, email)
	}

	if err := c.Set("user.name", "Ada"); err != nil {
		t.Fatal(err)
	}
	if err := c.Set("user.email", "ada@example.com"); err != nil {
		t.Fatal(err)
	}
	name, email = c.Identity()
	if name != "Ada" || email != "ada@example.com" {
		t.Errorf("Identity() = (%q, %q), want configured values", name, email)
	}
}
