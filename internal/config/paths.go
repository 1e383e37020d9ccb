package config

import "path/filepath"

// RosterCandidates lists the default roster locations in lookup order:
// the project root first, then the working directory.
func (c Config) RosterCandidates() []string {
	root := c.root()
	return []string{
		filepath.Join(root, RosterFileName),
		RosterFileName,
	}
}

// OutputPath is where the player id table is written.
func (c Config) OutputPath() string {
	return filepath.Join(c.root(), OutputFileName)
}

func (c Config) root() string {
	if c.ProjectRoot == "" {
		return defaultProjectRoot
	}
	return c.ProjectRoot
}
