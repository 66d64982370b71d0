package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dshills/richcursor/internal/config/watcher"
	"github.com/dshills/richcursor/internal/logging"
)

// watch runs fn once, then again after every change to one of paths, until
// interrupted. Empty paths are skipped.
func watch(log *logging.Logger, paths []string, fn func() error) error {
	w, err := watcher.New(
		watcher.WithDebounce(150*time.Millisecond),
		watcher.WithErrorHandler(func(err error) {
			log.Warn("watch error: %v", err)
		}),
	)
	if err != nil {
		return err
	}
	defer w.Close()

	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := w.Watch(p); err != nil {
			return err
		}
		log.Debug("watching %s", p)
	}

	changes := make(chan watcher.Event, 1)
	w.OnChange(func(e watcher.Event) {
		select {
		case changes <- e:
		default:
		}
	})

	if err := fn(); err != nil {
		return err
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	for {
		select {
		case <-signals:
			return nil
		case e := <-changes:
			log.Info("%s %s", e.Path, e.Op)
			if err := fn(); err != nil {
				return err
			}
		}
	}
}
