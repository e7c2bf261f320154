package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/Chriiiiiss/to-do-lit/internal/config"
	"github.com/Chriiiiiss/to-do-lit/internal/task"
	"github.com/Chriiiiiss/to-do-lit/internal/ui"
)

// tuiCommand launches the interactive checklist.
func tuiCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todolit tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(fs.Args()) > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	svc, cleanup, err := newService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return ui.Run(ctx, svc, cfg)
}

// lsCommand prints tasks in display order.
func lsCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("todolit ls", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc, cleanup, err := newService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	rows := svc.Display()
	if len(rows) == 0 {
		fmt.Println("No tasks.")
		return nil
	}
	for _, t := range rows {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		fmt.Printf("%s %s  %s\n", box, shortID(t.ID), t.Title)
	}
	return nil
}

// addCommand appends a new task.
func addCommand(cfg *config.Config, args []string) error {
	svc, cleanup, err := newService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	added, ok, err := svc.Add(strings.Join(args, " "))
	if !ok {
		return fmt.Errorf("title is empty")
	}
	if err != nil {
		return fmt.Errorf("saving task: %w", err)
	}
	fmt.Printf("Added %s  %s\n", shortID(added.ID), added.Title)
	return nil
}

// toggleCommand flips a task's completed flag immediately. The
// debounce gate only guards the interactive surface; a one-shot
// process has no event loop to wait on.
func toggleCommand(cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: todolit toggle <id>")
	}

	svc, cleanup, err := newService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	t, err := resolveTask(svc.Tasks(), args[0])
	if err != nil {
		return err
	}
	if err := svc.ToggleNow(t.ID); err != nil {
		return fmt.Errorf("saving task: %w", err)
	}

	state := "incomplete"
	if got, ok := task.Find(svc.Tasks(), t.ID); ok && got.Completed {
		state = "completed"
	}
	fmt.Printf("Toggled %s  %s (%s)\n", shortID(t.ID), t.Title, state)
	return nil
}

// rmCommand deletes a task.
func rmCommand(cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: todolit rm <id>")
	}

	svc, cleanup, err := newService(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	t, err := resolveTask(svc.Tasks(), args[0])
	if err != nil {
		return err
	}
	if err := svc.Delete(t.ID); err != nil {
		return fmt.Errorf("saving task: %w", err)
	}
	fmt.Printf("Deleted %s  %s\n", shortID(t.ID), t.Title)
	return nil
}

// resolveTask finds a task by exact id or unique id prefix. The core
// treats unknown ids as silent no-ops; on the CLI surface an
// unresolvable reference is an error instead.
func resolveTask(tasks task.List, ref string) (task.Task, error) {
	if t, ok := task.Find(tasks, ref); ok {
		return t, nil
	}

	var matches task.List
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return task.Task{}, fmt.Errorf("no task matches %q", ref)
	case 1:
		return matches[0], nil
	default:
		return task.Task{}, fmt.Errorf("id %q is ambiguous (%d matches)", ref, len(matches))
	}
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
