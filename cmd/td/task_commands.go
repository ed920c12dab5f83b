package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/taskdeck/taskdeck/internal/editor"
	"github.com/taskdeck/taskdeck/internal/ui"
	"github.com/taskdeck/taskdeck/task"
)

// td add
var addCmd = &cobra.Command{
	Use:   "add [title]",
	Short: "Add a new task",
	Long: `Add a new task.

By default, opens $EDITOR to edit a TOML representation of the task
when running interactively and no add flags are provided. Use --no-edit
to skip the editor, or --edit to force opening the editor even when not
interactive.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

var (
	addDescription string
	addPriority    string
	addCategory    string
	addDueDate     string
	addEdit        bool
	addNoEdit      bool
)

// td edit
var editCmd = &cobra.Command{
	Use:   "edit <id>...",
	Short: "Edit one or more tasks",
	Long: `Edit one or more tasks.

By default, opens $EDITOR to edit a TOML representation of the task
when running interactively and no edit flags are provided (one editor
session per ID). Use --no-edit to skip the editor, or --edit to force
opening the editor even when not interactive.`,
	Aliases: []string{
		"update",
	},
	Args: cobra.MinimumNArgs(1),
	RunE: runEdit,
}

var (
	editTitle       string
	editDescription string
	editPriority    string
	editCategory    string
	editDueDate     string
	editCompleted   bool
	editEdit        bool
	editNoEdit      bool
)

// td done
var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Mark one or more tasks as completed",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDone,
}

// td undo
var undoCmd = &cobra.Command{
	Use:   "undo <id>...",
	Short: "Mark one or more completed tasks as pending again",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runUndo,
}

// td delete
var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete one or more tasks",
	Aliases: []string{
		"rm",
	},
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

// td show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var showJSON bool

// td list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Aliases: []string{
		"ls",
	},
	RunE: runList,
}

var (
	listQuery     string
	listPriority  string
	listCategory  string
	listCompleted bool
	listSort      string
	listOverdue   bool
	listDueSoon   bool
	listJSON      bool
)

func init() {
	rootCmd.AddCommand(addCmd, editCmd, doneCmd, undoCmd, deleteCmd, showCmd, listCmd)
	registerFlagAliases(addCmd, editCmd)

	// add flags
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", string(task.PriorityLow), "Priority (Low, Medium, High)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", string(task.CategoryOther), "Category (Work, Personal, School, Other)")
	addCmd.Flags().StringVar(&addDueDate, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().BoolVarP(&addEdit, "edit", "e", false, "Open $EDITOR (default if interactive and no add flags)")
	addCmd.Flags().BoolVar(&addNoEdit, "no-edit", false, "Do not open $EDITOR")

	// edit flags
	editCmd.Flags().StringVar(&editTitle, "title", "", "New title")
	editCmd.Flags().StringVarP(&editDescription, "description", "d", "", "New description (use '-' to read from stdin)")
	editCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "New priority (Low, Medium, High)")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category (Work, Personal, School, Other)")
	editCmd.Flags().StringVar(&editDueDate, "due", "", "New due date (YYYY-MM-DD, empty to clear)")
	editCmd.Flags().BoolVar(&editCompleted, "completed", false, "Completion state")
	editCmd.Flags().BoolVarP(&editEdit, "edit", "e", false, "Open $EDITOR (default if interactive)")
	editCmd.Flags().BoolVar(&editNoEdit, "no-edit", false, "Do not open $EDITOR")

	// show flags
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")

	// list flags
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "Search title and description")
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "", "Filter by priority (Low, Medium, High)")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category (Work, Personal, School, Other)")
	listCmd.Flags().BoolVarP(&listCompleted, "completed", "a", false, "Include completed tasks")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "none", "Sort order (none, priority, due)")
	listCmd.Flags().BoolVar(&listOverdue, "overdue", false, "Show only overdue tasks")
	listCmd.Flags().BoolVar(&listDueSoon, "due-soon", false, "Show only tasks due within 24 hours")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
}

func runAdd(cmd *cobra.Command, args []string) error {
	desc, err := resolveDescriptionFromStdin(addDescription, os.Stdin)
	if err != nil {
		return err
	}
	addDescription = desc

	title := ""
	if len(args) > 0 {
		title = args[0]
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}

	// Determine whether to open editor:
	// - --edit forces editor
	// - --no-edit skips editor
	// - otherwise, open editor only when no add fields and interactive
	hasAddFlags := title != "" || hasChangedFlags(cmd, "description", "priority", "category", "due")
	useEditor := wantsEditor(addEdit, addNoEdit, hasAddFlags, ui.IsInteractive())

	if useEditor {
		// Pre-populate from args and flags if provided
		data := editor.DefaultCreateData()
		data.Title = title
		if cmd.Flags().Changed("description") {
			data.Description = addDescription
		}
		if cmd.Flags().Changed("priority") {
			data.Priority = addPriority
		}
		if cmd.Flags().Changed("category") {
			data.Category = addCategory
		}
		if cmd.Flags().Changed("due") {
			data.DueDate = addDueDate
		}

		parsed, err := editor.EditTask(data)
		if err != nil {
			return err
		}

		created, err := store.Create(parsed.Title, parsed.ToCreateOptions())
		if err != nil {
			return err
		}
		fmt.Printf("Added task %d: %s\n", created.ID, created.Title)
		return nil
	}

	// Non-editor path: title is required
	if title == "" {
		return fmt.Errorf("title is required (use --edit to open editor)")
	}

	created, err := store.Create(title, task.CreateOptions{
		Description: addDescription,
		Priority:    task.Priority(addPriority),
		Category:    task.Category(addCategory),
		DueDate:     addDueDate,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added task %d: %s\n", created.ID, created.Title)
	return nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	ids, err := parseTaskIDArgs(args)
	if err != nil {
		return err
	}

	desc, err := resolveDescriptionFromStdin(editDescription, os.Stdin)
	if err != nil {
		return err
	}
	editDescription = desc

	store, err := openTaskStore()
	if err != nil {
		return err
	}

	hasFlags := hasChangedFlags(cmd, "title", "description", "priority", "category", "due", "completed")

	useEditor := wantsEditor(editEdit, editNoEdit, hasFlags, ui.IsInteractive())
	if useEditor {
		updatedItems := make([]task.Task, 0, len(ids))
		for _, id := range ids {
			existing, err := store.Show([]int{id})
			if err != nil {
				return err
			}

			// Pre-populate from the existing task, then override
			// with any flags
			data := editor.DataFromTask(&existing[0])
			if cmd.Flags().Changed("title") {
				data.Title = editTitle
			}
			if cmd.Flags().Changed("description") {
				data.Description = editDescription
			}
			if cmd.Flags().Changed("priority") {
				data.Priority = editPriority
			}
			if cmd.Flags().Changed("category") {
				data.Category = editCategory
			}
			if cmd.Flags().Changed("due") {
				data.DueDate = editDueDate
			}
			if cmd.Flags().Changed("completed") {
				data.Completed = editCompleted
			}

			parsed, err := editor.EditTask(data)
			if err != nil {
				return err
			}

			updated, err := store.Update([]int{id}, parsed.ToUpdateOptions())
			if err != nil {
				return err
			}
			updatedItems = append(updatedItems, updated[0])
		}

		printTaskActionResults("Updated", updatedItems)
		return nil
	}

	// Non-editor path: at least one flag is required
	if !hasFlags {
		return fmt.Errorf("at least one edit flag is required (use --edit to open editor)")
	}

	opts := task.UpdateOptions{}

	if cmd.Flags().Changed("title") {
		opts.Title = &editTitle
	}
	if cmd.Flags().Changed("description") {
		opts.Description = &editDescription
	}
	if cmd.Flags().Changed("priority") {
		priority := task.Priority(editPriority)
		opts.Priority = &priority
	}
	if cmd.Flags().Changed("category") {
		category := task.Category(editCategory)
		opts.Category = &category
	}
	if cmd.Flags().Changed("due") {
		opts.DueDate = &editDueDate
	}
	if cmd.Flags().Changed("completed") {
		opts.Completed = &editCompleted
	}

	updated, err := store.Update(ids, opts)
	if err != nil {
		return err
	}

	printTaskActionResults("Updated", updated)
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	return runTaskAction(args, "Completed", func(store *task.Store, ids []int) ([]task.Task, error) {
		return store.Complete(ids)
	})
}

func runUndo(cmd *cobra.Command, args []string) error {
	return runTaskAction(args, "Reopened", func(store *task.Store, ids []int) ([]task.Task, error) {
		return store.Reopen(ids)
	})
}

func runDelete(cmd *cobra.Command, args []string) error {
	return runTaskAction(args, "Deleted", func(store *task.Store, ids []int) ([]task.Task, error) {
		return store.Delete(ids)
	})
}

func runShow(cmd *cobra.Command, args []string) error {
	ids, err := parseTaskIDArgs(args)
	if err != nil {
		return err
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}

	tasks, err := store.Show(ids)
	if err != nil {
		return err
	}

	if showJSON {
		return printJSON(tasks)
	}

	for i, t := range tasks {
		if i > 0 {
			fmt.Println("---")
		}
		printTaskDetail(t, time.Now())
	}
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openTaskStore()
	if err != nil {
		return err
	}

	now := time.Now()

	if listOverdue || listDueSoon {
		return runListDue(store, now)
	}

	opts := task.ViewOptions{
		Query:         listQuery,
		ShowCompleted: listCompleted,
		Sort:          task.SortMode(listSort),
	}
	if listPriority != "" {
		priority := task.Priority(listPriority)
		opts.Priority = &priority
	}
	if listCategory != "" {
		category := task.Category(listCategory)
		opts.Category = &category
	}

	tasks, err := store.List(opts)
	if err != nil {
		return err
	}

	if listJSON {
		return printJSON(tasks)
	}

	if err := printDueSoonBanner(store, now); err != nil {
		return err
	}
	printTaskTable(tasks, now)
	return nil
}

// runListDue handles the --overdue and --due-soon list modes. The two
// flags compose as a union.
func runListDue(store *task.Store, now time.Time) error {
	all, err := store.Load()
	if err != nil {
		return err
	}

	var tasks []task.Task
	seen := make(map[int]bool)
	if listOverdue {
		for _, t := range task.Overdue(all, now) {
			if !seen[t.ID] {
				seen[t.ID] = true
				tasks = append(tasks, t)
			}
		}
	}
	if listDueSoon {
		for _, t := range task.DueSoon(all, now) {
			if !seen[t.ID] {
				seen[t.ID] = true
				tasks = append(tasks, t)
			}
		}
	}

	if listJSON {
		return printJSON(tasks)
	}

	printTaskTable(tasks, now)
	return nil
}

func runTaskAction(args []string, verb string, action func(*task.Store, []int) ([]task.Task, error)) error {
	ids, err := parseTaskIDArgs(args)
	if err != nil {
		return err
	}

	store, err := openTaskStore()
	if err != nil {
		return err
	}

	items, err := action(store, ids)
	if err != nil {
		return err
	}

	printTaskActionResults(verb, items)
	return nil
}

func printTaskActionResults(verb string, items []task.Task) {
	for _, item := range items {
		fmt.Printf("%s task %d: %s\n", verb, item.ID, item.Title)
	}
}
