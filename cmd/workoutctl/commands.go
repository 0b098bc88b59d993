package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/ytget/workout-viewer/internal/config"
	"github.com/ytget/workout-viewer/internal/model"
	"github.com/ytget/workout-viewer/internal/storage"
	"github.com/ytget/workout-viewer/internal/workout"
)

const commandTimeout = 30 * time.Second

type cli struct {
	env    *config.Environment
	stdout io.Writer
	stderr io.Writer
}

func (c *cli) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

func (c *cli) workoutsFlag(fs *flag.FlagSet) *string {
	return fs.String("workouts", c.env.WorkoutsFileOr(config.DefaultWorkoutsFile()), "workout library (JSON or YAML)")
}

func (c *cli) dbFlag(fs *flag.FlagSet) *string {
	return fs.String("db", c.env.DBPathOr(config.DefaultDatabasePath()), "training database")
}

func (c *cli) table() *tabwriter.Writer {
	return tabwriter.NewWriter(c.stdout, 0, 0, 2, ' ', 0)
}

func (c *cli) list(args []string) error {
	fs := c.flagSet("list")
	path := c.workoutsFlag(fs)
	order := fs.String("sort", string(model.SortDefault), "order: default, asc, desc, duration_asc, duration_desc")
	minDuration := fs.Int("min", 0, "shortest duration in seconds")
	maxDuration := fs.Int("max", 0, "longest duration in seconds, 0 for no limit")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sortOrder := model.SortOrder(*order)
	if !sortOrder.IsValid() {
		return fmt.Errorf("unknown sort order %q", *order)
	}

	catalog, err := workout.LoadCatalog(*path)
	if err != nil {
		return err
	}

	tw := c.table()
	fmt.Fprintln(tw, "ID\tDURATION\tSTEPS\tNAME")
	for _, w := range catalog.Query(workout.Filter{Min: *minDuration, Max: *maxDuration, Order: sortOrder}) {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", w.ID, model.FormatDuration(w.Duration()), len(w.Steps), w.GetDisplayName())
	}
	return tw.Flush()
}

func (c *cli) scale(args []string) error {
	fs := c.flagSet("scale")
	path := c.workoutsFlag(fs)
	name := fs.String("name", "", "workout name (case-insensitive)")
	id := fs.String("id", "", "workout ID")
	target := fs.Float64("target", 0, "target duration in seconds")
	minutes := fs.Float64("minutes", 0, "target duration in minutes")
	ftp := fs.Int("ftp", c.env.FTPOr(config.DefaultFTP), "functional threshold power in watts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	catalog, err := workout.LoadCatalog(*path)
	if err != nil {
		return err
	}
	w, err := findWorkout(catalog, *id, *name)
	if err != nil {
		return err
	}

	seconds := *target
	if *minutes > 0 {
		adj, ok := workout.AdjusterBounds(w.BaseDuration(), w.BaseDuration(), len(w.Steps))
		if !ok {
			return errors.New("workout has no duration to scale")
		}
		seconds, _ = adj.MinutesToTarget(*minutes)
	}
	if seconds <= 0 {
		seconds = float64(w.BaseDuration())
	}

	scaled := workout.Rescale(&w, seconds)
	writeSteps(c.stdout, scaled, *ftp)

	encoded, err := workout.EncodeOverlay(scaled, *ftp)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.stdout, "\n%s %s\n", workout.OverlayFlag, encoded)
	return nil
}

// findWorkout looks a workout up by ID, then by name
func findWorkout(catalog *workout.Catalog, id, name string) (model.Workout, error) {
	if id != "" {
		if w, ok := catalog.Get(id); ok {
			return w, nil
		}
		return model.Workout{}, fmt.Errorf("no workout with ID %q", id)
	}
	if name == "" {
		return model.Workout{}, errors.New("-name or -id is required")
	}
	for _, w := range catalog.All() {
		if strings.EqualFold(strings.TrimSpace(w.Name), strings.TrimSpace(name)) {
			return w, nil
		}
	}
	return model.Workout{}, fmt.Errorf("no workout named %q", name)
}

func writeSteps(out io.Writer, w *model.Workout, ftp int) {
	fmt.Fprintf(out, "%s: %s (base %s)\n", w.GetDisplayName(), model.FormatDuration(w.Duration()), model.FormatDuration(w.BaseDuration()))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tDURATION\tPOWER\tWATTS")
	for i, step := range w.Steps {
		power := fmt.Sprintf("%d%%", step.StartPower)
		watts := fmt.Sprintf("%d", workout.Watts(step.StartPower, ftp))
		if step.IsRamp() {
			power += fmt.Sprintf("-%d%%", step.EndPower)
			watts += fmt.Sprintf("-%d", workout.Watts(step.EndPower, ftp))
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, model.FormatDuration(step.Duration), power, watts)
	}
	tw.Flush()
}

func (c *cli) decode(args []string) error {
	fs := c.flagSet("decode")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("expected one encoded workout argument")
	}

	decoded, err := workout.DecodeOverlay(fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.stdout, "%s, FTP %d W, %s\n", decoded.Name, decoded.FTP, decoded.Duration())
	tw := c.table()
	fmt.Fprintln(tw, "#\tDURATION\tWATTS")
	for i, seg := range decoded.Segments {
		fmt.Fprintf(tw, "%d\t%s\t%d-%d\n", i+1, seg.Duration, seg.StartWatts, seg.EndWatts)
	}
	return tw.Flush()
}

func (c *cli) openStore(path string) (*storage.Store, context.Context, context.CancelFunc, error) {
	store, err := storage.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	return store, ctx, cancel, nil
}

func (c *cli) files(args []string) error {
	fs := c.flagSet("files")
	dbPath := c.dbFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, ctx, cancel, err := c.openStore(*dbPath)
	if err != nil {
		return err
	}
	defer cancel()
	defer store.Close()

	files, err := store.List(ctx)
	if err != nil {
		return err
	}

	tw := c.table()
	fmt.Fprintln(tw, "ID\tCREATED\tNAME")
	for _, f := range files {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", f.ID, f.CreatedAt.Format(time.RFC3339), f.Name)
	}
	return tw.Flush()
}

func (c *cli) export(args []string) error {
	fs := c.flagSet("export")
	dbPath := c.dbFlag(fs)
	id := fs.Int64("id", 0, "training file ID")
	dir := fs.String("dir", ".", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("-id is required")
	}

	store, ctx, cancel, err := c.openStore(*dbPath)
	if err != nil {
		return err
	}
	defer cancel()
	defer store.Close()

	path, err := store.Export(ctx, *id, *dir)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.stdout, path)
	return nil
}
