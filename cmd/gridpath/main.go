// Command gridpath finds shortest 4-directional paths on text grids.
//
// Usage:
//
//	gridpath solve -grid FILE [-config FILE] [-render kind|fcost] [-color] [-start x,y] [-goal x,y]
//	gridpath serve [-config FILE] [-addr :8080]
//
// solve prints the annotated grid and a summary line. Exit status is 0 when
// a path was found, 2 when none exists, 1 on any error.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridio"
	"github.com/katalvlaran/gridpath/server"
)

const (
	exitOK     = 0
	exitError  = 1
	exitNoPath = 2
)

const usage = `usage:
  gridpath solve -grid FILE [-config FILE] [-render kind|fcost] [-color] [-start x,y] [-goal x,y]
  gridpath serve [-config FILE] [-addr :8080]
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitError
	}
	switch args[0] {
	case "solve":
		return solve(args[1:], stdout, stderr)
	case "serve":
		return serve(args[1:], stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	}
	fmt.Fprintf(stderr, "gridpath: unknown command %q\n%s", args[0], usage)
	return exitError
}

// pointFlag parses "x,y" into a config point.
type pointFlag struct{ p **config.Point }

func (f pointFlag) String() string {
	if f.p == nil || *f.p == nil {
		return ""
	}
	return fmt.Sprintf("%d,%d", (*f.p).X, (*f.p).Y)
}

func (f pointFlag) Set(s string) error {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return fmt.Errorf("x: %w", err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return fmt.Errorf("y: %w", err)
	}
	*f.p = &config.Point{X: x, Y: y}
	return nil
}

// loadConfig reads path (when set) and returns Default otherwise.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func solve(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML configuration file")
	gridPath := fs.String("grid", "", "grid file")
	render := fs.String("render", "", "render mode: kind or fcost")
	color := fs.Bool("color", false, "colour the rendered grid")
	var start, goal *config.Point
	fs.Var(pointFlag{&start}, "start", "start cell as x,y (default top-left)")
	fs.Var(pointFlag{&goal}, "goal", "goal cell as x,y (default bottom-right)")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "gridpath: %v\n", err)
		return exitError
	}
	// Flags override the file only when given.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "grid":
			cfg.Grid.Path = *gridPath
		case "render":
			cfg.Render.Mode = *render
		case "color":
			cfg.Render.Color = *color
		case "start":
			cfg.Grid.Start = start
		case "goal":
			cfg.Grid.Goal = goal
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "gridpath: %v\n", err)
		return exitError
	}
	if cfg.Grid.Path == "" {
		fmt.Fprintf(stderr, "gridpath: no grid file (use -grid or grid.path)\n")
		return exitError
	}

	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(stderr, "gridpath: %v\n", err)
		return exitError
	}
	defer log.Sync()

	g, err := gridio.LoadFile(cfg.Grid.Path)
	if err != nil {
		fmt.Fprintf(stderr, "gridpath: %v\n", err)
		return exitError
	}
	opts := append(cfg.SearchOptions(), astar.WithLogger(log))
	res, err := astar.Search(g, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "gridpath: %v\n", err)
		return exitError
	}

	if err := gridio.Render(stdout, g, cfg.RenderOptions()...); err != nil {
		fmt.Fprintf(stderr, "gridpath: %v\n", err)
		return exitError
	}
	if !res.Found {
		fmt.Fprintf(stdout, "no path (expanded %d)\n", res.Expanded)
		return exitNoPath
	}
	fmt.Fprintf(stdout, "path %v\ncost %g expanded %d\n", res.Path, res.Cost, res.Expanded)
	return exitOK
}

func serve(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML configuration file")
	addr := fs.String("addr", "", "listen address (default :8080)")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "gridpath: %v\n", err)
		return exitError
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	log, err := cfg.Logger()
	if err != nil {
		fmt.Fprintf(stderr, "gridpath: %v\n", err)
		return exitError
	}
	defer log.Sync()

	if !cfg.Log.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(server.WithLogger(log)).ListenAndServe(ctx, cfg.Server.Addr); err != nil {
		log.Error("server stopped", zap.Error(err))
		return exitError
	}
	return exitOK
}
