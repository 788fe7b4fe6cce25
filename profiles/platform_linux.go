package profiles

import "path/filepath"

func userRoots() []string {
	return []string{"/home"}
}

// root's home lives outside /home.
func extraUsers() []UserContext {
	return []UserContext{{Username: "root", HomeDir: "/root"}}
}

func excludedAccount(string) bool {
	return false
}

func browserBase(browser, home string) (string, bool) {
	switch browser {
	case Chrome:
		return filepath.Join(home, ".config", "google-chrome"), true
	case Edge:
		return filepath.Join(home, ".config", "microsoft-edge"), true
	case Firefox:
		return filepath.Join(home, ".mozilla", "firefox"), true
	}
	// Safari does not exist on Linux.
	return "", false
}
