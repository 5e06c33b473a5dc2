// heaplab — an interactive laboratory for the cycle-aware heap.
//
// Allocate objects, wire references between them, drop handles and watch
// what a collection pass finds. Useful for poking at tracing behavior
// without writing a test.
//
// Configuration (environment, HEAPLAB_ prefix, or ~/.heaplab.yaml):
//
//	HEAPLAB_RECLAIM    reclaim unreachable cycles (default true)
//	HEAPLAB_THRESHOLD  auto-collect once this many cells are live (0 = off)
//	HEAPLAB_HISTORY    history file name (default .heaplab_history)
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"unsafe"

	"github.com/peterh/liner"
	"github.com/spf13/viper"

	"github.com/waywardmonkeys/rquickjs"
	"github.com/waywardmonkeys/rquickjs/internal/collector"
)

const (
	appName = "heaplab"
	prompt  = "gc> "
)

var helpText = `
commands:
  new [name]          allocate an object (auto-named o1, o2, ... if no name)
  link <a> <b> [key]  set a property on a referencing b (key defaults to "ref")
  unlink <a> <key>    delete a property
  drop <name>         release the external handle for name
  ls                  list live cells
  gc                  run a collection pass
  help                show this text
  quit                exit
`

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }

type lab struct {
	rt    *rquickjs.Runtime
	ctx   *rquickjs.Context
	gc    *collector.Collector
	names map[string]rquickjs.Object
	next  int
}

func main() {
	viper.SetEnvPrefix("HEAPLAB")
	viper.AutomaticEnv()
	viper.SetDefault("reclaim", true)
	viper.SetDefault("threshold", 0)
	viper.SetDefault("history", ".heaplab_history")
	viper.SetConfigName(".heaplab")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	_ = viper.ReadInConfig() // optional

	rt := rquickjs.NewRuntime()
	l := &lab{
		rt:    rt,
		ctx:   rt.NewContext(),
		names: map[string]rquickjs.Object{},
	}
	l.gc = collector.New(collector.Options{
		Reclaim:   viper.GetBool("reclaim"),
		Threshold: viper.GetInt("threshold"),
		Logf: func(format string, args ...any) {
			fmt.Println(green(fmt.Sprintf(format, args...)))
		},
	})

	fmt.Printf("%s — reference-counted heap with cycle collection\n", appName)
	fmt.Println("Ctrl+D or 'quit' exits. 'help' lists commands.")

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, viper.GetString("history"))
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if err != nil {
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if line == "quit" || line == ":quit" {
			return
		}
		if msg, err := l.dispatch(strings.Fields(line)); err != nil {
			fmt.Println(red(err.Error()))
		} else if msg != "" {
			fmt.Println(msg)
		}
	}
}

func (l *lab) dispatch(args []string) (string, error) {
	switch args[0] {
	case "new":
		return l.cmdNew(args[1:])
	case "link":
		return l.cmdLink(args[1:])
	case "unlink":
		return l.cmdUnlink(args[1:])
	case "drop":
		return l.cmdDrop(args[1:])
	case "ls":
		return l.cmdLs()
	case "gc":
		return l.cmdGC()
	case "help":
		return strings.TrimLeft(helpText, "\n"), nil
	default:
		return "", fmt.Errorf("unknown command %q (try 'help')", args[0])
	}
}

func (l *lab) cmdNew(args []string) (string, error) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	} else {
		l.next++
		name = fmt.Sprintf("o%d", l.next)
	}
	if _, exists := l.names[name]; exists {
		return "", fmt.Errorf("name %q is taken", name)
	}
	obj := l.ctx.NewObject()
	l.names[name] = obj
	out := fmt.Sprintf("%s = %s", name, obj.AsValue())

	if stats, ran, err := l.gc.MaybeCollect(l.rt); err == nil && ran && stats.Reclaimed > 0 {
		out += fmt.Sprintf(" (auto-gc reclaimed %d)", stats.Reclaimed)
	}
	return out, nil
}

func (l *lab) cmdLink(args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("usage: link <a> <b> [key]")
	}
	a, ok := l.names[args[0]]
	if !ok {
		return "", fmt.Errorf("no object named %q", args[0])
	}
	b, ok := l.names[args[1]]
	if !ok {
		return "", fmt.Errorf("no object named %q", args[1])
	}
	key := "ref"
	if len(args) > 2 {
		key = args[2]
	}
	a.Set(key, b.AsValue())
	return fmt.Sprintf("%s.%s -> %s", args[0], key, args[1]), nil
}

func (l *lab) cmdUnlink(args []string) (string, error) {
	if len(args) < 2 {
		return "", errors.New("usage: unlink <a> <key>")
	}
	a, ok := l.names[args[0]]
	if !ok {
		return "", fmt.Errorf("no object named %q", args[0])
	}
	if !a.Delete(args[1]) {
		return "", fmt.Errorf("%s has no property %q", args[0], args[1])
	}
	return fmt.Sprintf("%s.%s removed", args[0], args[1]), nil
}

func (l *lab) cmdDrop(args []string) (string, error) {
	if len(args) < 1 {
		return "", errors.New("usage: drop <name>")
	}
	obj, ok := l.names[args[0]]
	if !ok {
		return "", fmt.Errorf("no object named %q", args[0])
	}
	delete(l.names, args[0])
	obj.AsValue().Free()
	return fmt.Sprintf("dropped handle %s (%d cells live)", args[0], l.rt.LiveCount()), nil
}

func (l *lab) cmdLs() (string, error) {
	cells := l.rt.Cells()
	if len(cells) == 0 {
		return "heap is empty", nil
	}
	byRaw := map[unsafe.Pointer]string{}
	for name, obj := range l.names {
		byRaw[obj.AsValue().Raw()] = name
	}
	lines := make([]string, 0, len(cells))
	for _, v := range cells {
		name := byRaw[v.Raw()]
		if name == "" {
			name = "(no handle)"
		}
		lines = append(lines, fmt.Sprintf("  %-12s %s refs=%d", name, v, v.RefCount()))
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n"), nil
}

func (l *lab) cmdGC() (string, error) {
	stats, err := l.gc.Collect(l.rt)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("pass %d: %d cells, %d edges, %d roots, %d unreachable, %d reclaimed",
		stats.Pass, stats.Cells, stats.Edges, stats.Roots, stats.Unreachable, stats.Reclaimed), nil
}
