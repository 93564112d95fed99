package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains the application directory layout. All paths are relative
// to the executable directory, never the current working directory, so the
// tool behaves the same wherever it is launched from.
//
// Directory structure:
//
//	<exe dir>/
//	  ├── data/
//	  │   ├── inbox/     (uploaded/.txt shortage reports)
//	  │   └── reports/   (generated workbooks and csv files)
//	  └── logs/          (application logs)
type Paths struct {
	ExecutableDir string
	DataDir       string
	InboxDir      string
	ReportsDir    string
	LogsDir       string
}

// GetPaths returns the application paths relative to the executable
// location.
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}
	return pathsUnder(filepath.Dir(exe)), nil
}

func pathsUnder(exeDir string) *Paths {
	dataDir := filepath.Join(exeDir, "data")
	return &Paths{
		ExecutableDir: exeDir,
		DataDir:       dataDir,
		InboxDir:      filepath.Join(dataDir, "inbox"),
		ReportsDir:    filepath.Join(dataDir, "reports"),
		LogsDir:       filepath.Join(exeDir, "logs"),
	}
}

// EnsureDirectories creates the directory layout when missing.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.DataDir, p.InboxDir, p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// GetReportPath returns the full path for a generated report file.
func (p *Paths) GetReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// GetLogPath returns the full path for a log file.
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
