package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"maptojson/internal/config"
	"maptojson/internal/export"
	"maptojson/internal/level"
	"maptojson/internal/names"
	"maptojson/internal/persistence/history"
	"maptojson/internal/persistence/snapshot"
	"maptojson/internal/plugin"
	"maptojson/internal/watch"
)

func main() {
	var (
		levelPath  = flag.String("level", "", "level snapshot (.snap.zst) to export")
		outPath    = flag.String("out", "", "destination JSON file (default: <level name>.json in the last used folder)")
		configPath = flag.String("config", "", "maptojson.yaml (optional)")
		namesPath  = flag.String("names", "", "names.yaml overriding the built-in name tables (optional)")
		dbPath     = flag.String("db", "", "export history database (overrides history_db)")
		watchFlag  = flag.Bool("watch", false, "re-export whenever the level snapshot changes")
		showHist   = flag.Bool("history", false, "print recent exports as JSON lines and exit")
		limit      = flag.Int("limit", 20, "number of entries for -history")
	)
	flag.Parse()

	logger := log.New(os.Stderr, "[maptojson] ", log.LstdFlags|log.Lmicroseconds)

	if !plugin.Compatible() {
		logger.Fatalf("%s is not supported by this host", plugin.Name())
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	if *namesPath != "" {
		cfg.NamesFile = *namesPath
	}
	if *dbPath != "" {
		cfg.HistoryDB = *dbPath
	}

	ctx, cancel := signalContext()
	defer cancel()

	var hist *history.SQLiteHistory
	if cfg.HistoryDB != "" {
		hist, err = history.OpenSQLite(cfg.HistoryDB)
		if err != nil {
			logger.Fatalf("open history: %v", err)
		}
		defer hist.Close()
	}

	if *showHist {
		if hist == nil {
			fmt.Fprintln(os.Stderr, "-history needs -db or history_db in the config")
			os.Exit(2)
		}
		entries, err := hist.Recent(ctx, *limit)
		if err != nil {
			logger.Fatalf("history: %v", err)
		}
		for _, e := range entries {
			printJSON(e)
		}
		return
	}

	if *levelPath == "" {
		fmt.Fprintln(os.Stderr, "missing -level")
		flag.Usage()
		os.Exit(2)
	}

	tables, err := cfg.Names()
	if err != nil {
		logger.Fatalf("load names: %v", err)
	}
	logger.Printf("names digest=%s", shortDigest(tables))

	p := plugin.New(&cliHost{out: *outPath, logger: logger}, cfg.Settings(), export.New(tables, cfg.ExportOptions()))
	if hist != nil {
		p.WithRecorder(hist)
	}

	if err := exportOnce(ctx, p, *levelPath, logger); err != nil && !*watchFlag {
		os.Exit(1)
	}
	if !*watchFlag {
		return
	}

	w, err := watch.NewWatcher(*levelPath, cfg.WatchDebounce())
	if err != nil {
		logger.Fatalf("watch: %v", err)
	}
	defer w.Close()
	logger.Printf("watching %s", *levelPath)

	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-w.Events:
			if !ok {
				return
			}
			_ = exportOnce(ctx, p, path, logger)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Printf("watch: %v", err)
		}
	}
}

func exportOnce(ctx context.Context, p *plugin.Plugin, path string, logger *log.Logger) error {
	snap, err := snapshot.Read(path)
	if err != nil {
		logger.Printf("read snapshot: %v", err)
		return err
	}
	lvl := snap.Level
	res, err := p.Run(ctx, plugin.SessionFunc(func() level.Level { return lvl }))
	switch {
	case err != nil && res.Path != "":
		// The file is written; only the history entry is missing.
		logger.Printf("%v", err)
		return nil
	case errors.Is(err, plugin.ErrCancelled):
		logger.Printf("export cancelled")
		return nil
	case err != nil:
		var pe *plugin.PanicError
		if errors.As(err, &pe) {
			logger.Printf("%s", pe.Stack)
		}
		return err
	}
	return nil
}

func shortDigest(t *names.Tables) string {
	if len(t.Digest) > 12 {
		return t.Digest[:12]
	}
	return t.Digest
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-ch
		cancel()
	}()
	return ctx, cancel
}
