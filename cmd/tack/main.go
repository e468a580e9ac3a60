package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/maren/tack/internal/app"
	"github.com/maren/tack/internal/board"
	"github.com/maren/tack/internal/config"
	"github.com/maren/tack/internal/model"
	"github.com/maren/tack/internal/ui"
	"github.com/maren/tack/internal/ui/theme"
)

var (
	version = "0.1.0"
)

func main() {
	// Subcommand handling
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "add":
			handleAdd(os.Args[2:])
			return
		case "version":
			fmt.Printf("tack v%s\n", version)
			return
		case "help", "-h", "--help":
			printHelp()
			return
		}
	}

	// Parse flags for TUI mode
	viewFlag := flag.String("view", "board", "Starting view (board, notes)")
	themeFlag := flag.String("theme", "", "Theme name (nord, dracula)")
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	// Run TUI
	if err := runTUI(*viewFlag, *themeFlag, *configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `tack - Notes and a kanban board in your terminal

Usage:
  tack                    Start the TUI
  tack add <task>         Quick add a task to the board
  tack version            Show version
  tack help               Show this help

Quick Add Syntax:
  tack add "Buy groceries"
  tack add "Review PR #work !high due:tomorrow"

  Tags:      #tag          (e.g., #home, #work, #errands)
  Priority:  !low !medium !high !urgent
  Due date:  due:tomorrow due:friday due:2026-01-15

TUI Options:
  --view <name>     Starting view (board, notes)
  --theme <name>    Theme (nord, dracula)
  --config <path>   Config file (default ~/.config/tack/config.yaml)

Keybindings:
  Navigation:   ↑/↓ or j/k    Move cursor
                ←/→ or h/l    Switch column
                g/G           Go to top/bottom

  Board:        a             Add task
                enter         Edit task
                tab           Toggle done
                d             Delete (with confirm)
                p             Cycle priority
                s             Start/pause work timer
                H/L           Move task between columns
                J/K           Reorder within column
                c             Collapse column
                W             Set WIP limit

  Views:        1/2           Board / Notes
                ?             Help
                q             Quit

For more info: https://github.com/maren/tack`

	fmt.Println(help)
}

// handleAdd appends a task to the bottom of the TODO column and exits.
// The whole board document is read, decoded, edited and written back,
// under the same instance lock the TUI takes.
func handleAdd(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: tack add <task>")
		fmt.Fprintln(os.Stderr, "Example: tack add \"Buy groceries #errands !high due:tomorrow\"")
		os.Exit(1)
	}

	text := strings.Join(args, " ")
	task := parseQuickAdd(text)

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	doc, err := application.Store.LoadBoard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading board: %v\n", err)
		os.Exit(1)
	}

	columns := board.Decode(doc)
	if len(columns) == 0 {
		columns = model.DefaultColumns()
	}

	for i := range columns {
		if columns[i].Status != model.StatusTodo {
			continue
		}
		task.Order = len(columns[i].Tasks)
		columns[i].Tasks = append(columns[i].Tasks, task)
		break
	}

	if err := application.Store.SaveBoard(board.Encode(columns)); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving board: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created: %s\n", task.Title)
	if task.DueDate != nil {
		fmt.Printf("Due: %s\n", formatDueDate(*task.DueDate))
	}
	if task.Priority != model.PriorityMedium {
		fmt.Printf("Priority: %s\n", task.Priority)
	}
	if len(task.Tags) > 0 {
		labels := make([]string, len(task.Tags))
		for i, tag := range task.Tags {
			labels[i] = tag.Label
		}
		fmt.Printf("Tags: %s\n", strings.Join(labels, ", "))
	}
}

func parseQuickAdd(text string) model.Task {
	now := time.Now()
	task := model.Task{
		ID:        uuid.New().String(),
		Status:    model.StatusTodo,
		Priority:  model.PriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}

	words := strings.Fields(text)
	var titleParts []string

	for _, word := range words {
		switch {
		// Tags (#home, #work, etc.)
		case strings.HasPrefix(word, "#") && len(word) > 1:
			task.Tags = append(task.Tags, model.Tag{
				Label: strings.TrimPrefix(word, "#"),
				Color: model.TagGray,
			})

		// Priority (!low, !high, etc.)
		case strings.HasPrefix(word, "!"):
			priority := strings.ToLower(strings.TrimPrefix(word, "!"))
			switch priority {
			case "low", "l":
				task.Priority = model.PriorityLow
			case "medium", "med", "m":
				task.Priority = model.PriorityMedium
			case "high", "hi", "h":
				task.Priority = model.PriorityHigh
			case "urgent", "u":
				task.Priority = model.PriorityUrgent
			default:
				titleParts = append(titleParts, word)
			}

		// Due date (due:tomorrow, due:friday, due:2026-01-15)
		case strings.HasPrefix(strings.ToLower(word), "due:"):
			dateStr := strings.TrimPrefix(strings.ToLower(word), "due:")
			if parsed := parseNaturalDate(dateStr); parsed != nil {
				task.DueDate = parsed
			} else {
				titleParts = append(titleParts, word)
			}

		default:
			titleParts = append(titleParts, word)
		}
	}

	task.Title = strings.Join(titleParts, " ")
	return task
}

func parseNaturalDate(s string) *time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	switch strings.ToLower(s) {
	case "today":
		return &today
	case "tomorrow", "tom":
		t := today.AddDate(0, 0, 1)
		return &t
	case "monday", "mon":
		return nextWeekday(time.Monday)
	case "tuesday", "tue":
		return nextWeekday(time.Tuesday)
	case "wednesday", "wed":
		return nextWeekday(time.Wednesday)
	case "thursday", "thu":
		return nextWeekday(time.Thursday)
	case "friday", "fri":
		return nextWeekday(time.Friday)
	case "saturday", "sat":
		return nextWeekday(time.Saturday)
	case "sunday", "sun":
		return nextWeekday(time.Sunday)
	case "nextweek":
		t := today.AddDate(0, 0, 7)
		return &t
	}

	// Try parsing as date
	formats := []string{
		"2006-01-02",
		"01/02/2006",
		"01-02-2006",
		"Jan 2",
		"Jan 2, 2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			// If no year, use current year
			if t.Year() == 0 {
				t = time.Date(now.Year(), t.Month(), t.Day(), 23, 59, 59, 0, now.Location())
			}
			return &t
		}
	}

	return nil
}

func nextWeekday(day time.Weekday) *time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	daysUntil := int(day - now.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	t := today.AddDate(0, 0, daysUntil)
	return &t
}

func formatDueDate(t time.Time) string {
	now := time.Now()

	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return "today"
	}

	tomorrow := now.AddDate(0, 0, 1)
	if t.Year() == tomorrow.Year() && t.YearDay() == tomorrow.YearDay() {
		return "tomorrow"
	}

	if t.Year() == now.Year() {
		return t.Format("Mon, Jan 2")
	}

	return t.Format("Jan 2, 2006")
}

func runTUI(startView, themeName, configPath string) error {
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Flags override config
	if themeName == "" {
		themeName = cfg.Theme
	}
	if t, ok := theme.ByName(themeName); ok {
		theme.SetTheme(t)
	}

	application, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer application.Close()

	view := ui.ViewBoard
	if startView == "notes" {
		view = ui.ViewNotes
	}

	p := tea.NewProgram(
		ui.NewRootModel(application, view),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
