package credentials

import (
	"context"
	"fmt"
	"log"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the keyring whenever its backing file is written or
// recreated, until ctx is cancelled. It blocks, so it is typically run in
// its own goroutine. Keyrings backed by the environment have nothing to
// watch and return immediately.
func (k *Keyring) Watch(ctx context.Context) error {
	if k.path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(k.path); err != nil {
		return fmt.Errorf("failed to watch API keys file %s: %w", k.path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors replace rather than rewrite, so watch for Create too.
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := k.Reload(); err != nil {
				log.Printf("credentials: reload of %s failed, keeping previous keys: %v", k.path, err)
				continue
			}
			log.Printf("credentials: reloaded %d API keys from %s", k.Len(), k.path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("credentials: watcher error: %v", err)
		}
	}
}
