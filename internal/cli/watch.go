package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	dayio "github.com/fcollf/dayplan/pkg/io"
	"github.com/fcollf/dayplan/pkg/layout"
	"github.com/fcollf/dayplan/pkg/schedule"
)

// debounceDelay coalesces the burst of filesystem events most editors
// emit for a single save.
const debounceDelay = 150 * time.Millisecond

// watchCommand creates the watch command, which keeps a layout reconciled
// against a day file as it changes on disk.
func (c *CLI) watchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [day.yaml]",
		Short: "Re-reconcile the layout whenever the day file changes",
		Long: `Re-reconcile the layout whenever the day file changes.

The overlap graph is kept alive across reloads and synchronized
incrementally: removed events are detached with their chains bridged,
moved events are detached and re-placed, and new events are placed into
the existing graph. Each pass logs the set of events whose column
assignment changed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWatch(cmd.Context(), args[0])
		},
	}
	return cmd
}

func (c *CLI) runWatch(ctx context.Context, path string) error {
	day, g, err := c.loadAndReconcile(path)
	if err != nil {
		return err
	}
	c.logLayout(day, g)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors that save via rename
	// replace the inode and would silently detach a file watch.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	c.Logger.Infof("Watching %s", path)

	var debounce *time.Timer
	reload := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-reload:
			changed, reloadErr := c.reload(path, g)
			if reloadErr != nil {
				c.Logger.Warnf("reload failed, keeping previous layout: %v", reloadErr)
				continue
			}
			day = changed.day
			if len(changed.ids) == 0 {
				c.Logger.Debug("no layout changes")
				continue
			}
			c.Logger.Infof("Layout changed for %d events: %v", len(changed.ids), changed.ids)
			c.logLayout(day, g)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, _ := filepath.Abs(event.Name)
			if abs != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			c.Logger.Warnf("watch error: %v", watchErr)
		}
	}
}

// reloadResult carries one incremental reconciliation outcome.
type reloadResult struct {
	day *schedule.Day
	ids []string
}

// reload re-reads the day file and reconciles it into the existing graph.
func (c *CLI) reload(path string, g *layout.Graph) (reloadResult, error) {
	load := schedule.LoadFile
	if strings.HasSuffix(path, ".json") {
		load = dayio.ImportJSON
	}
	day, err := load(path)
	if err != nil {
		return reloadResult{}, err
	}
	return reloadResult{day: day, ids: g.Reconcile(day.Items())}, nil
}

// logLayout prints the current assignment at debug level.
func (c *CLI) logLayout(day *schedule.Day, g *layout.Graph) {
	for _, n := range g.Nodes() {
		c.Logger.Debugf("%-20s %s column %d/%d",
			eventTitle(day, n.ID()), n.Span(), n.Index()+1, n.Columns())
	}
}
