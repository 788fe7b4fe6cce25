package profiles

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// userRoots probes every drive letter for a Users directory so allUsers
// scans cover accounts homed on secondary drives.
func userRoots() []string {
	var roots []string
	for letter := 'A'; letter <= 'Z'; letter++ {
		root := fmt.Sprintf("%c:\\Users", letter)
		if info, err := os.Stat(root); err == nil && info.IsDir() {
			roots = append(roots, root)
		}
	}
	return roots
}

func extraUsers() []UserContext {
	return nil
}

func excludedAccount(name string) bool {
	if strings.HasSuffix(name, ".") {
		return true
	}
	switch strings.ToLower(name) {
	case "public", "default", "default user", "all users":
		return true
	}
	return false
}

func browserBase(browser, home string) (string, bool) {
	switch browser {
	case Chrome:
		return filepath.Join(home, "AppData", "Local", "Google", "Chrome", "User Data"), true
	case Edge:
		return filepath.Join(home, "AppData", "Local", "Microsoft", "Edge", "User Data"), true
	case Firefox:
		return filepath.Join(home, "AppData", "Roaming", "Mozilla", "Firefox", "Profiles"), true
	}
	// Safari has not shipped on Windows since 2012.
	return "", false
}
