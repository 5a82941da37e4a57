package generate

import (
	"github.com/fsnotify/fsnotify"

	"github.com/tegimeki/dbc-data/internal/selection"
)

// Watch re-runs the pipeline whenever the DBC file or the selection config
// changes on disk, calling onResult after every run (including the first).
// It blocks until stop is closed.
func Watch(configPath string, cfg *selection.Config, stop <-chan struct{}, onResult func(*Result, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(configPath); err != nil {
		return err
	}
	if err := w.Add(cfg.DBCFile); err != nil {
		return err
	}

	run := func() { onResult(Run(cfg)) }
	run()

	for {
		select {
		case <-stop:
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				run()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			onResult(nil, err)
		}
	}
}
