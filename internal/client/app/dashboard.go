package app

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/dailyjournal-app/daily-journal/internal/client/api"
)

// dashboardState mirrors what the web dashboard kept in component state:
// the fetched entry list and the selected filter date. Drafts live in the
// prompts themselves.
type dashboardState struct {
	entries    []api.Entry
	filterDate string // YYYY-MM-DD, empty = no filter
}

// filtered applies the client-side date filter: an entry matches when its
// date, truncated to the calendar day in the viewer's local time zone,
// equals the selected date.
func (s *dashboardState) filtered() []api.Entry {
	if s.filterDate == "" {
		return s.entries
	}
	matched := make([]api.Entry, 0)
	for _, entry := range s.entries {
		if entry.Date.Local().Format("2006-01-02") == s.filterDate {
			matched = append(matched, entry)
		}
	}
	return matched
}

// runDashboard is the authenticated view. It returns true when the user
// asked to quit the app entirely, false when the session ended (logout or
// rejected token) and the anonymous view should take over.
func (a *App) runDashboard(ctx context.Context) bool {
	state := &dashboardState{}
	if !a.refetch(ctx, state) {
		a.endSession()
		return false
	}

	for {
		a.renderEntries(state)
		a.io.Println("commands: (a)dd, (e)dit, (d)elete, (f)ilter, (c)lear filter, (r)efresh, (l)ogout, (q)uit")
		cmd, err := a.io.ReadInput("> ")
		if err != nil {
			return true
		}

		sessionAlive := true
		switch cmd {
		case "a", "add":
			sessionAlive = a.addEntry(ctx, state)
		case "e", "edit":
			sessionAlive = a.editEntry(ctx, state)
		case "d", "delete":
			sessionAlive = a.deleteEntry(ctx, state)
		case "f", "filter":
			a.setFilter(state)
		case "c", "clear":
			state.filterDate = ""
		case "r", "refresh":
			sessionAlive = a.refetch(ctx, state)
		case "l", "logout":
			a.endSession()
			a.io.Println("Logged out.")
			return false
		case "q", "quit", "exit":
			return true
		default:
			a.io.Println("Unknown command")
		}

		if !sessionAlive {
			a.endSession()
			return false
		}
	}
}

func (a *App) renderEntries(state *dashboardState) {
	a.io.Println("")
	a.io.Println("📒 My Journal Entries")
	if state.filterDate != "" {
		a.io.Printf("(filtered by date: %s)\n", state.filterDate)
	}

	entries := state.filtered()
	if len(entries) == 0 {
		a.io.Println("No entries found.")
		return
	}
	for i, entry := range entries {
		a.io.Printf("%d) %s\n", i+1, entry.Content)
		a.io.Printf("   Mood: %s | Date: %s\n", entry.Mood, entry.Date.Local().Format("Jan 2, 2006 3:04 PM"))
	}
}

// refetch reloads the full list from the server. Called after every
// successful mutation so the view always shows server state. Returns false
// only when the session died.
func (a *App) refetch(ctx context.Context, state *dashboardState) bool {
	entries, err := a.api.ListEntries(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			a.io.Println("Session expired, please log in again.")
			return false
		}
		a.io.Printf("Failed to fetch entries: %v\n", err)
		return true
	}
	state.entries = entries
	return true
}

func (a *App) addEntry(ctx context.Context, state *dashboardState) bool {
	content, err := a.io.ReadInput("Write your journal entry: ")
	if err != nil {
		return true
	}
	if strings.TrimSpace(content) == "" {
		a.io.Println("Content is required")
		return true
	}
	mood, err := a.io.ReadInput("Mood (e.g. happy, sad): ")
	if err != nil {
		return true
	}
	if strings.TrimSpace(mood) == "" {
		a.io.Println("Mood is required")
		return true
	}

	if _, err := a.api.CreateEntry(ctx, api.EntryRequest{Content: content, Mood: mood}); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			a.io.Println("Session expired, please log in again.")
			return false
		}
		a.io.Printf("Failed to add entry: %v\n", err)
		return true
	}
	return a.refetch(ctx, state)
}

func (a *App) editEntry(ctx context.Context, state *dashboardState) bool {
	entry, ok := a.pickEntry(state)
	if !ok {
		return true
	}

	// Prefill behavior: empty input keeps the current value, like the edit
	// form opening with the entry's values already in place.
	a.io.Printf("Current content: %s\n", entry.Content)
	content, err := a.io.ReadInput("New content (empty keeps current): ")
	if err != nil {
		return true
	}
	if strings.TrimSpace(content) == "" {
		content = entry.Content
	}

	a.io.Printf("Current mood: %s\n", entry.Mood)
	mood, err := a.io.ReadInput("New mood (empty keeps current): ")
	if err != nil {
		return true
	}
	if strings.TrimSpace(mood) == "" {
		mood = entry.Mood
	}

	if _, err := a.api.UpdateEntry(ctx, entry.ID, api.EntryRequest{Content: content, Mood: mood}); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			a.io.Println("Session expired, please log in again.")
			return false
		}
		a.io.Printf("Failed to update entry: %v\n", err)
		return true
	}
	return a.refetch(ctx, state)
}

func (a *App) deleteEntry(ctx context.Context, state *dashboardState) bool {
	entry, ok := a.pickEntry(state)
	if !ok {
		return true
	}

	confirm, err := a.io.ReadInput("Are you sure you want to delete this entry? (y/N): ")
	if err != nil {
		return true
	}
	if confirm != "y" && confirm != "yes" {
		a.io.Println("Delete cancelled")
		return true
	}

	if err := a.api.DeleteEntry(ctx, entry.ID); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			a.io.Println("Session expired, please log in again.")
			return false
		}
		a.io.Printf("Failed to delete entry: %v\n", err)
		return true
	}
	return a.refetch(ctx, state)
}

func (a *App) setFilter(state *dashboardState) {
	input, err := a.io.ReadInput("Filter by date (YYYY-MM-DD): ")
	if err != nil {
		return
	}
	if input == "" {
		state.filterDate = ""
		return
	}
	if _, err := time.Parse("2006-01-02", input); err != nil {
		a.io.Println("Invalid date, expected YYYY-MM-DD")
		return
	}
	state.filterDate = input
}

// pickEntry asks for an entry number out of the currently displayed
// (filtered) list.
func (a *App) pickEntry(state *dashboardState) (api.Entry, bool) {
	entries := state.filtered()
	if len(entries) == 0 {
		a.io.Println("No entries found.")
		return api.Entry{}, false
	}

	input, err := a.io.ReadInput("Entry number: ")
	if err != nil {
		return api.Entry{}, false
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(entries) {
		a.io.Println("Invalid entry number")
		return api.Entry{}, false
	}
	return entries[n-1], true
}
