// Package sysinfo supplies the machine identity stamped on reports and a
// best-effort view of running browser processes.
package sysinfo

import (
	"os"
	"runtime"
	"strings"

	"aiscout/logger"
	"aiscout/profiles"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/process"
)

type Machine struct {
	Hostname string
	Platform string
}

// GetMachine identifies the scanned host, falling back to the bare
// hostname and GOOS when the host probe fails.
func GetMachine() Machine {
	m := Machine{Platform: runtime.GOOS}
	if name, err := os.Hostname(); err == nil {
		m.Hostname = name
	}
	info, err := host.Info()
	if err != nil {
		logger.Debugf("host probe failed: %v", err)
		return m
	}
	if info.Hostname != "" {
		m.Hostname = info.Hostname
	}
	if info.Platform != "" {
		m.Platform = strings.TrimSpace(info.Platform + " " + info.PlatformVersion)
	}
	return m
}

// Browser process names per family, matched against the executable name.
var browserProcesses = map[string][]string{
	profiles.Chrome:  {"chrome", "chromium"},
	profiles.Edge:    {"msedge"},
	profiles.Firefox: {"firefox"},
	profiles.Safari:  {"safari"},
}

// RunningBrowsers reports which known browsers currently have processes.
// A running browser keeps its history database locked, which the reader's
// temp-copy strategy handles; this only feeds an advisory log line.
func RunningBrowsers() map[string]bool {
	running := make(map[string]bool)
	procs, err := process.Processes()
	if err != nil {
		logger.Debugf("process enumeration failed: %v", err)
		return running
	}
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		running[matchBrowser(name)] = true
	}
	delete(running, "")
	return running
}

func matchBrowser(procName string) string {
	lowered := strings.ToLower(strings.TrimSuffix(procName, ".exe"))
	for browser, names := range browserProcesses {
		for _, n := range names {
			if lowered == n {
				return browser
			}
		}
	}
	return ""
}
