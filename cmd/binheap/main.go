package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/codeindex2937/binheap"
	"github.com/codeindex2937/binheap/render"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	cli "gopkg.in/urfave/cli.v1"
)

var (
	logger = zap.NewNop()

	encoderConfig = zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "log heap internals at debug level",
	}
	countFlag = cli.IntFlag{
		Name:  "count",
		Usage: "number of random values to insert",
		Value: 40,
	}
	seedFlag = cli.Int64Flag{
		Name:  "seed",
		Usage: "seed of the value generator",
		Value: 33,
	}
	outFlag = cli.StringFlag{
		Name:  "out",
		Usage: "diagram file to write, geometry of an existing file is kept",
		Value: "binheap.drawio",
	}
)

func newLogger(verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(os.Stderr), level)
	return zap.New(core).Named("binheap")
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "binheap"
	app.Usage = "binomial heap playground"
	app.Flags = []cli.Flag{verboseFlag}
	app.Before = func(c *cli.Context) error {
		logger = newLogger(c.GlobalBool(verboseFlag.Name))
		return nil
	}
	app.After = func(c *cli.Context) error {
		_ = logger.Sync()
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:   "demo",
			Usage:  "replay a scripted sequence of heap operations and print the forest",
			Flags:  []cli.Flag{countFlag, seedFlag},
			Action: demo,
		},
		{
			Name:   "drawio",
			Usage:  "write a draw.io diagram of a random heap",
			Flags:  []cli.Flag{countFlag, seedFlag, outFlag},
			Action: diagram,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printHeap[T any](w io.Writer, title string, h *binheap.Heap[T]) error {
	fmt.Fprintf(w, "\n== %s (%d) ==\n", title, h.Len())
	if h.Len() == 0 {
		fmt.Fprintln(w, "(empty)")
		return nil
	}
	render.WriteRoots(w, h.Root(), nil)
	return render.WriteTree(w, h.Root(), nil)
}

func printIter[T any](w io.Writer, h *binheap.Heap[T]) error {
	it := h.Iter()
	for it.Next() {
		fmt.Fprintf(w, "%v ", it.Value())
	}
	fmt.Fprintln(w)
	return it.Err()
}

func demo(c *cli.Context) error {
	w := c.App.Writer
	opt := binheap.WithLogger(logger)

	keyed := binheap.NewKeyed[string, int](opt)
	for _, e := range []binheap.Entry[string, int]{{Key: "ala", Value: 4}, {Key: "ola", Value: 5}} {
		if _, err := keyed.Add(e.Key, e.Value); err != nil {
			return err
		}
	}
	k, v, _ := keyed.Min()
	logger.Info("keyed heap ready", zap.Int("len", keyed.Len()), zap.String("minKey", k), zap.Int("min", v))

	h := binheap.New[int](opt)
	for i := 0; i <= 40; i++ {
		h.Add(i)
	}
	small, err := h.FindAll(func(i int) bool { return i <= 4 })
	if err != nil {
		return err
	}
	logger.Info("inserted ascending", zap.Int("len", h.Len()), zap.Int("atMost4", len(small)))
	if err := printHeap(w, "0..40", h); err != nil {
		return err
	}
	if err := printIter(w, h); err != nil {
		return err
	}

	h.Remove(3)
	h.RemoveMin()
	if err := printHeap(w, "without 3 and the minimum", h); err != nil {
		return err
	}

	h.Clear()
	for i := 80; i >= 0; i-- {
		h.Add(i)
	}
	if err := printHeap(w, "80..0", h); err != nil {
		return err
	}
	if err := printIter(w, h); err != nil {
		return err
	}

	h.Clear()
	rnd := rand.New(rand.NewSource(c.Int64(seedFlag.Name)))
	count := c.Int(countFlag.Name)
	for i := 0; i < count; i++ {
		h.Add(rnd.Intn(100))
	}
	if err := printHeap(w, "random", h); err != nil {
		return err
	}
	logger.Info("lookup", zap.Bool("has24", h.Contains(24)), zap.Bool("removed20", h.Remove(20)))

	drained := make([]int, 0, h.Len())
	for {
		v, ok := h.PopMin()
		if !ok {
			break
		}
		drained = append(drained, v)
	}
	fmt.Fprintln(w, drained)
	return printHeap(w, "drained", h)
}

func diagram(c *cli.Context) error {
	h := binheap.New[int](binheap.WithLogger(logger))
	rnd := rand.New(rand.NewSource(c.Int64(seedFlag.Name)))
	for i := 0; i < c.Int(countFlag.Name); i++ {
		h.Add(rnd.Intn(100))
	}

	config := render.GetDefaultDrawioConfig()
	config.ExportPath = c.String(outFlag.Name)
	file, err := render.GenerateDrawio(config, h.Root(), nil)
	if err != nil {
		return err
	}
	if err := file.Flush(); err != nil {
		return err
	}
	logger.Info("diagram written", zap.String("path", file.Path), zap.Int("nodes", h.Len()))
	return nil
}
