// Package profiles locates browser history databases across OS user
// accounts and browser profiles. All discovery is best-effort: a missing
// or unreadable directory skips that user/browser pair and never aborts
// the wider scan.
package profiles

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"aiscout/logger"

	"github.com/djherbis/times"
)

// Supported browser identifiers.
const (
	Chrome  = "Chrome"
	Edge    = "Edge"
	Firefox = "Firefox"
	Safari  = "Safari"
)

// Supported returns the browsers this build knows how to locate.
func Supported() []string {
	return []string{Chrome, Edge, Firefox, Safari}
}

// UserContext is one local account whose browser data may be scanned.
type UserContext struct {
	Username string
	HomeDir  string
}

// Location is one discovered browser profile. HistoryPath existed at
// discovery time; readers re-check before use since the file may vanish
// or change underneath us.
type Location struct {
	Username    string
	Profile     string
	HistoryPath string
	Modified    time.Time // zero when the filesystem would not say
}

// Locate returns every discoverable history database for the given
// browser. With allUsers it walks every local account's home directory,
// otherwise only the invoking user's.
func Locate(browser string, allUsers bool) []Location {
	var users []UserContext
	if allUsers {
		users = LocalUsers()
	} else if u, ok := CurrentUser(); ok {
		users = []UserContext{u}
	}

	var locs []Location
	for _, u := range users {
		base, ok := browserBase(browser, u.HomeDir)
		if !ok {
			// Unsupported OS/browser pair: empty result, not an error.
			continue
		}
		switch browser {
		case Chrome, Edge:
			locs = append(locs, chromiumProfiles(u, base)...)
		case Firefox:
			locs = append(locs, firefoxProfiles(u, base)...)
		case Safari:
			locs = append(locs, safariLocation(u, base)...)
		}
	}
	return locs
}

// chromiumProfiles enumerates Default plus every "Profile N" directory.
// Chrome and Edge share the same on-disk schema.
func chromiumProfiles(u UserContext, base string) []Location {
	entries, err := os.ReadDir(base)
	if err != nil {
		logger.Debugf("cannot read %s for %s: %v", base, u.Username, err)
		return nil
	}
	var locs []Location
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if name != "Default" && !strings.HasPrefix(name, "Profile ") {
			continue
		}
		historyPath := filepath.Join(base, name, "History")
		if info, err := os.Stat(historyPath); err == nil && !info.IsDir() {
			locs = append(locs, newLocation(u.Username, name, historyPath))
		}
	}
	return locs
}

// firefoxProfiles enumerates the randomly named profile directories under
// the profiles root; a directory is a profile if it holds places.sqlite.
func firefoxProfiles(u UserContext, base string) []Location {
	entries, err := os.ReadDir(base)
	if err != nil {
		logger.Debugf("cannot read %s for %s: %v", base, u.Username, err)
		return nil
	}
	var locs []Location
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		historyPath := filepath.Join(base, e.Name(), "places.sqlite")
		if info, err := os.Stat(historyPath); err == nil && !info.IsDir() {
			locs = append(locs, newLocation(u.Username, e.Name(), historyPath))
		}
	}
	return locs
}

// safariLocation checks the single fixed Safari history path. An
// unreadable ~/Library/Safari means the process lacks Full Disk Access.
func safariLocation(u UserContext, base string) []Location {
	if _, err := os.ReadDir(base); err != nil {
		logger.Debugf("cannot read %s for %s (missing Full Disk Access?): %v", base, u.Username, err)
		return nil
	}
	historyPath := filepath.Join(base, "History.db")
	if info, err := os.Stat(historyPath); err != nil || info.IsDir() {
		return nil
	}
	return []Location{newLocation(u.Username, "Safari", historyPath)}
}

func newLocation(username, profile, historyPath string) Location {
	loc := Location{Username: username, Profile: profile, HistoryPath: historyPath}
	if spec, err := times.Stat(historyPath); err == nil {
		loc.Modified = spec.ModTime()
	}
	return loc
}

// CurrentUser resolves the invoking user's account from the environment.
func CurrentUser() (UserContext, bool) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return UserContext{}, false
	}
	name := ""
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	if name == "" {
		name = filepath.Base(home)
	}
	return UserContext{Username: name, HomeDir: home}, true
}

// LocalUsers enumerates all local accounts with home directories, for
// allUsers scans and for the CLI capability query.
func LocalUsers() []UserContext {
	var users []UserContext
	for _, root := range userRoots() {
		users = append(users, usersUnderRoot(root)...)
	}
	users = append(users, extraUsers()...)
	return users
}

func usersUnderRoot(root string) []UserContext {
	entries, err := os.ReadDir(root)
	if err != nil {
		logger.Debugf("cannot enumerate users under %s: %v", root, err)
		return nil
	}
	var users []UserContext
	for _, e := range entries {
		if !e.IsDir() || excludedAccount(e.Name()) {
			continue
		}
		users = append(users, UserContext{
			Username: e.Name(),
			HomeDir:  filepath.Join(root, e.Name()),
		})
	}
	return users
}
