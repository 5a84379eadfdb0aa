package publish

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/termapps/publisher/internal/messages"
)

var (
	lockWaitTimeout = 30 * time.Second
	lockPollEvery   = 100 * time.Millisecond
	lockSleep       = time.Sleep
)

// LockPath is the advisory lock file guarding the workspace root. It sits next
// to Root so Cleanup can remove Root while the lock is held.
func (p *Pipeline) LockPath() string {
	return filepath.Clean(p.Root) + ".lock"
}

// Lock takes an exclusive lock on the workspace root so concurrent runs sharing
// a workdir do not reset each other's workspaces. It waits up to
// lockWaitTimeout for another holder. The returned func releases the lock.
func (p *Pipeline) Lock() (func(), error) {
	path := p.LockPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf(messages.PublishLockFmt, path, err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf(messages.PublishLockFmt, path, err)
	}

	deadline := time.Now().Add(lockWaitTimeout)
	for {
		locked, err := tryLock(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf(messages.PublishLockFmt, path, err)
		}
		if locked {
			break
		}
		if time.Now().After(deadline) {
			_ = file.Close()
			return nil, fmt.Errorf(messages.PublishLockTimeoutFmt, lockWaitTimeout, p.Root)
		}
		p.logger().Debug("waiting for workspace lock", "path", path)
		lockSleep(lockPollEvery)
	}

	return func() {
		_ = unlock(file)
		_ = file.Close()
	}, nil
}
