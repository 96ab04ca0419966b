package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/guitarlab/fretboard/internal/domain"
	"github.com/guitarlab/fretboard/internal/services"
	"github.com/guitarlab/fretboard/internal/theme"
)

// HistoryCmd lists recent practice sessions
type HistoryCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Number of sessions to show" default:"10"`
}

// historyEntry is the JSON shape of a practice session
type historyEntry struct {
	BPM        int       `json:"bpm"`
	DurationMS int64     `json:"duration_ms"`
	ID         string    `json:"id"`
	Mode       string    `json:"mode"`
	Prompts    int       `json:"prompts"`
	StartedAt  time.Time `json:"started_at"`
	TopNote    string    `json:"top_note"`
}

// Run executes the history command
func (h *HistoryCmd) Run(cli *CLI) error {
	historyService, err := cli.Container.HistoryService()
	if err != nil {
		return fmt.Errorf("failed to open practice history: %w", err)
	}

	sessions, err := historyService.Recent(context.Background(), h.Limit)
	if err != nil {
		return err
	}

	if h.Format == "json" {
		return writeHistoryJSON(os.Stdout, sessions)
	}
	writeHistoryTable(os.Stdout, sessions)
	return nil
}

func writeHistoryJSON(w io.Writer, sessions []domain.PracticeSession) error {
	entries := make([]historyEntry, len(sessions))
	for i, s := range sessions {
		entries[i] = historyEntry{
			BPM:        s.BPM,
			DurationMS: s.Duration().Milliseconds(),
			ID:         s.ID,
			Mode:       string(s.Mode),
			Prompts:    len(s.Prompts),
			StartedAt:  s.StartedAt,
			TopNote:    s.TopNote(),
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func writeHistoryTable(w io.Writer, sessions []domain.PracticeSession) {
	fmt.Fprintln(w, theme.TitleStyle.Render("Practice History"))

	if len(sessions) == 0 {
		fmt.Fprintln(w, theme.HintStyle.Render("No practice sessions yet. Run a drill to start one."))
		return
	}

	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		rows[i] = []string{
			s.StartedAt.Local().Format("2006-01-02 15:04"),
			string(s.Mode),
			formatBPM(s.BPM),
			formatDuration(s.Duration()),
			strconv.Itoa(len(s.Prompts)),
			s.TopNote(),
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(theme.TableBorderStyle).
		Headers("STARTED", "MODE", "BPM", "DURATION", "PROMPTS", "TOP NOTE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return theme.TableHeaderStyle
			case col == 1 && row >= 0 && row < len(rows):
				return theme.ModeStyle(rows[row][1]).Padding(0, 1)
			default:
				return theme.TableCellStyle
			}
		})
	fmt.Fprintln(w, t.Render())

	summary := services.Summarize(sessions)
	fmt.Fprintln(w, theme.HintStyle.Render(fmt.Sprintf("Total: %d sessions, %d prompts, %s practiced",
		summary.Sessions, summary.Prompts, formatDuration(summary.TotalTime))))
}

func formatBPM(bpm int) string {
	if bpm == 0 {
		return "-"
	}
	return strconv.Itoa(bpm)
}

// formatDuration prints whole seconds, e.g. "4m05s"
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d / time.Minute)
	seconds := int((d % time.Minute) / time.Second)
	if minutes == 0 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm%02ds", minutes, seconds)
}
