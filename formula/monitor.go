package formula

import (
	"context"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/jsphweid/scalechords/chord"
	"github.com/jsphweid/scalechords/constants"
	"go.uber.org/zap"
)

// Watch reloads the formula file at path whenever it is written and passes
// the new table to onChange. Bursts of events are debounced. A file that
// fails to load is logged and skipped; the caller keeps its previous table.
// Watch blocks until ctx is done.
func Watch(ctx context.Context, log *zap.Logger, path string, onChange func(*chord.Formulas)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// editors often replace the file, so watch its directory
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	target := filepath.Clean(path)
	debounced := debounce.New(constants.ReloadDebounceMillis * time.Millisecond)
	reload := func() {
		// a debounced call can land after Watch has returned
		if ctx.Err() != nil {
			return
		}
		formulas, err := Load(path)
		if err != nil {
			log.Warn("formula reload failed", zap.String("path", path), zap.Error(err))
			return
		}
		log.Info("formulas reloaded", zap.String("path", path), zap.Int("count", formulas.Len()))
		onChange(formulas)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debug("formula file changed", zap.String("event", event.String()))
			debounced(reload)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("formula watcher error", zap.Error(err))
		}
	}
}
