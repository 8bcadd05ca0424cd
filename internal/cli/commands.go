package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"mylists/internal/filter"
	"mylists/internal/storage"
)

type opener func() (*app, error)

func newStatsCmd(open opener, now func() time.Time) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the Today, Scheduled, All and Completed counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open()
			if err != nil {
				return err
			}
			defer a.Close()
			tasks, err := a.store.FetchTasks()
			if err != nil {
				return err
			}
			summary := filter.Summarize(tasks, now())
			for _, c := range filter.Categories() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %d\n", c.Title(), summary.Count(c))
			}
			return nil
		},
	}
}

func newListsCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Print every list with its open task count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open()
			if err != nil {
				return err
			}
			defer a.Close()
			lists, err := a.store.FetchLists()
			if err != nil {
				return err
			}
			tasks, err := a.store.FetchTasks()
			if err != nil {
				return err
			}
			counts := map[string]int{}
			for _, t := range filter.Incomplete(tasks) {
				counts[t.ListID]++
			}
			out := cmd.OutOrStdout()
			if len(lists) == 0 {
				fmt.Fprintln(out, "No lists")
				return nil
			}
			for _, l := range lists {
				fmt.Fprintf(out, "%s\t%d\n", l.Name, counts[l.ID])
			}
			return nil
		},
	}
}

func newTasksCmd(open opener, now func() time.Time) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks <list>",
		Short: "Print the tasks of a list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := open()
			if err != nil {
				return err
			}
			defer a.Close()
			lists, err := a.store.FetchLists()
			if err != nil {
				return err
			}
			var list *storage.TaskList
			for i := range lists {
				if strings.EqualFold(lists[i].Name, args[0]) {
					list = &lists[i]
					break
				}
			}
			if list == nil {
				return fmt.Errorf("list %q: %w", args[0], storage.ErrNotFound)
			}
			tasks, err := a.store.FetchTasksForList(list.ID)
			if err != nil {
				return err
			}
			printTasks(cmd.OutOrStdout(), tasks, now())
			return nil
		},
	}
}

func newSearchCmd(open opener, now func() time.Time) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Print open tasks whose title contains query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			if query == "" {
				return fmt.Errorf("query is empty")
			}
			a, err := open()
			if err != nil {
				return err
			}
			defer a.Close()
			tasks, err := a.store.FetchTasks()
			if err != nil {
				return err
			}
			results := filter.Search(tasks, query)
			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintln(out, "No matching tasks")
				if hint, ok := filter.Suggest(tasks, query); ok {
					fmt.Fprintf(out, "Did you mean %q?\n", hint)
				}
				return nil
			}
			printTasks(out, results, now())
			return nil
		},
	}
}

func printTasks(w io.Writer, tasks []storage.Task, now time.Time) {
	for _, t := range tasks {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		line := box + " " + t.Title
		if t.ReminderDate.Valid {
			line += " (" + humanize.RelTime(t.ReminderDate.Time, now, "ago", "from now") + ")"
		}
		fmt.Fprintln(w, line)
	}
}
