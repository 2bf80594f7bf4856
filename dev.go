package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/howeyc/fsnotify"

	"github.com/mkb/i80/machine"
)

type devConfig struct {
	gui   bool
	debug bool
	file  string // program to run and watch
	org   uint16
	sym   string // symbol file; file plus .sym if empty
}

// devMode runs the program and reloads it into the machine whenever
// the file changes, so an assemble-and-rerun cycle needs no restart.
// With cfg.debug it also runs the terminal debugger.
func devMode(cfg devConfig) error {
	file := filepath.Clean(cfg.file)
	symFile := cfg.sym
	if symFile == "" {
		symFile = file + ".sym"
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Watch(filepath.Dir(file)); err != nil {
		return err
	}

	var (
		dbg   *debugger
		state machine.StateFunc
	)
	if cfg.debug {
		dbg = newDebugger()
		state = dbg.StateFunc
	}
	runner := machine.NewRunner(cfg.gui, true, state)
	if dbg != nil {
		dbg.run = runner
		log.SetPrefix("")
		log.SetOutput(dbg.log)
		go func() {
			if err := dbg.Run(); err != nil {
				log.Fatalf("debug: %v", err)
			}
			log.SetOutput(os.Stderr)
			log.SetPrefix("i80: ")
			runner.Debug("exit", 0)
		}()
	}

	mCh := make(chan *machine.Machine)
	go func() {
		started := false
		load := time.After(1 * time.Millisecond)
		for {
			select {
			case <-load:
				log.Printf("dev: load %s", filepath.Base(file))
				m, err := loadMachine(file, cfg.org)
				if err != nil {
					log.Printf("dev: %v", err)
					break
				}
				if dbg != nil {
					syms, err := parseSymbols(symFile)
					if err != nil && !os.IsNotExist(err) {
						log.Printf("dev: reading symbols: %v", err)
					}
					dbg.setSymbols(syms)
				}
				if !started {
					log.Printf("dev: start")
					mCh <- m
					started = true
				} else {
					log.Printf("dev: reset")
					runner.Swap(m)
				}
			case ev := <-watcher.Event:
				if (ev.Name == file || ev.Name == symFile) && !ev.IsAttrib() {
					load = time.After(100 * time.Millisecond)
				}
			case err := <-watcher.Error:
				log.Printf("dev: watcher: %v", err)
			}
		}
	}()
	code := runner.Run(<-mCh)
	return fmt.Errorf("dev: exit code: %d", code)
}
