package profiles

import "path/filepath"

func userRoots() []string {
	return []string{"/Users"}
}

func extraUsers() []UserContext {
	return nil
}

func excludedAccount(name string) bool {
	return name == "Shared" || name == "Guest"
}

func browserBase(browser, home string) (string, bool) {
	switch browser {
	case Chrome:
		return filepath.Join(home, "Library", "Application Support", "Google", "Chrome"), true
	case Edge:
		return filepath.Join(home, "Library", "Application Support", "Microsoft Edge"), true
	case Firefox:
		return filepath.Join(home, "Library", "Application Support", "Firefox", "Profiles"), true
	case Safari:
		return filepath.Join(home, "Library", "Safari"), true
	}
	return "", false
}
