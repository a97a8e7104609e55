package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchService re-runs an action whenever the graph-dump manifest changes.
type WatchService struct {
	manifestPath string
	ui           UICallback
}

// NewWatchService creates a watcher for the given manifest path.
func NewWatchService(manifestPath string, ui UICallback) *WatchService {
	return &WatchService{manifestPath: manifestPath, ui: ui}
}

// Watch blocks, watching the manifest file and triggering callback on each
// settled change. Rapid successive writes (build tools often rewrite the
// dump in chunks) are debounced.
func (s *WatchService) Watch(callback func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(s.manifestPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.manifestPath, err)
	}

	// Also watch the directory for when the file is deleted/recreated
	manifestDir := filepath.Dir(s.manifestPath)
	if err := watcher.Add(manifestDir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", manifestDir, err)
	}

	fmt.Printf("Watching for changes to %s...\n", s.manifestPath)
	fmt.Println("Press Ctrl+C to stop")

	var debounceTimer *time.Timer
	const debounceDelay = 1 * time.Second

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Name != s.manifestPath {
				continue
			}

			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}

				debounceTimer = time.AfterFunc(debounceDelay, func() {
					fmt.Printf("\nDetected change to %s\n", filepath.Base(s.manifestPath))

					if _, err := os.Stat(s.manifestPath); err != nil {
						s.ui.ShowWarning("File Not Found", "Manifest was deleted or is inaccessible")
						return
					}

					if err := callback(); err != nil {
						s.ui.ShowError("Export Failed", err.Error())
					} else {
						s.ui.ShowSuccess("Report updated")
					}

					fmt.Println("\nStill watching for changes...")
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watch error: %v\n", err)
		}
	}
}
