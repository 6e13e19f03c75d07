package composer

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/roach88/boxcar/internal/project"
)

// LockFile is written to the project root after a successful run.
const LockFile = ".boxcar.toml"

// Lock records how a project was composed. It carries no timestamps so two
// identical runs produce identical lock files.
type Lock struct {
	Recipe       string   `toml:"recipe"`
	App          string   `toml:"app"`
	SkipBundle   bool     `toml:"skip_bundle"`
	Modules      []string `toml:"modules"`
	Capabilities []string `toml:"capabilities"`
}

// LockFor builds the lock for the modules applied so far in cc.
func LockFor(cc *Context) Lock {
	return Lock{
		Recipe:       cc.Recipe,
		App:          cc.AppName,
		SkipBundle:   cc.SkipBundle,
		Modules:      cc.AppliedModules(),
		Capabilities: cc.Capabilities(),
	}
}

// WriteLock writes lock to the tree, replacing any previous lock file.
func WriteLock(tree *project.Tree, lock Lock) error {
	data, err := toml.Marshal(lock)
	if err != nil {
		return fmt.Errorf("encode lock: %w", err)
	}
	return tree.CreateFile(LockFile, string(data), true)
}

// ReadLock reads the lock file from the tree.
func ReadLock(tree *project.Tree) (Lock, error) {
	var lock Lock
	content, err := tree.Read(LockFile)
	if err != nil {
		return lock, err
	}
	if err := toml.Unmarshal([]byte(content), &lock); err != nil {
		return lock, fmt.Errorf("decode %s: %w", LockFile, err)
	}
	return lock, nil
}
