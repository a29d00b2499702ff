package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"curiona-admin/internal/models"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"

	dateLayout = "2006-01-02"
)

// render writes v as JSON or YAML, or calls table for the default format.
func render(w io.Writer, format string, v any, tableFn func(io.Writer)) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		tableFn(w)
		return nil
	}
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func pageFooter(w io.Writer, total, page, pages int) {
	fmt.Fprintf(w, "page %d of %d, %d total\n", page, max(pages, 1), total)
}

func renderStatistics(w io.Writer, stats *models.Statistics) {
	t := newTable(w)
	t.SetTitle("Platform statistics")
	t.AppendHeader(table.Row{"Metric", "Count"})
	t.AppendRows([]table.Row{
		{"Registered users", stats.User.UsersRegisteredCount},
		{"Roadmaps generated", stats.Roadmap.RoadmapsGeneratedCount},
		{"Roadmaps ongoing", stats.Roadmap.RoadmapsOngoingCount},
		{"Roadmaps finished", stats.Roadmap.RoadmapsFinishedCount},
	})
	t.Render()
}

func renderUsers(w io.Writer, list *models.FilteredList[models.Account]) {
	if len(list.Items) == 0 {
		fmt.Fprintln(w, "No users found.")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Name", "Email", "Method", "Roadmaps", "Admin", "Suspended", "Joined"})
	for _, a := range list.Items {
		t.AppendRow(table.Row{a.ID, a.Name, a.Email, a.Method, a.TotalRoadmaps, yesNo(a.IsAdmin), yesNo(a.IsSuspended), date(a.JoinedAt)})
	}
	t.Render()
	pageFooter(w, list.Total, list.CurrentPage, list.TotalPages)
}

func renderUser(w io.Writer, a *models.Account) {
	t := newTable(w)
	t.SetTitle("%s", a.Name)
	t.AppendRows([]table.Row{
		{"ID", a.ID},
		{"Email", a.Email},
		{"Method", a.Method},
		{"Admin", yesNo(a.IsAdmin)},
		{"Suspended", yesNo(a.IsSuspended)},
		{"Roadmaps", a.TotalRoadmaps},
		{"Joined", date(a.JoinedAt)},
	})
	t.Render()

	if a.Roadmaps == nil || len(a.Roadmaps.Items) == 0 {
		return
	}

	rt := newTable(w)
	rt.AppendHeader(table.Row{"ID", "Title", "Progress", "Finished", "Created"})
	for _, r := range a.Roadmaps.Items {
		progress := "-"
		finished := "-"
		if r.Progression != nil {
			progress = fmt.Sprintf("%d/%d (%.0f%%)", r.Progression.FinishedTopics, r.Progression.TotalTopics, r.Progression.CompletionPercentage)
			finished = yesNo(r.Progression.IsFinished)
		}
		rt.AppendRow(table.Row{r.ID, r.Title, progress, finished, date(r.CreatedAt)})
	}
	rt.Render()
	pageFooter(w, a.Roadmaps.Total, a.Roadmaps.CurrentPage, a.Roadmaps.TotalPages)
}

func renderRoadmaps(w io.Writer, list *models.FilteredList[models.RoadmapSummary]) {
	if len(list.Items) == 0 {
		fmt.Fprintln(w, "No roadmaps found.")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"ID", "Title", "Creator", "Topics", "Bookmarks", "Skill level", "Created"})
	for _, r := range list.Items {
		creator := "-"
		if r.Creator != nil {
			creator = r.Creator.Name
		}
		t.AppendRow(table.Row{r.ID, r.Title, creator, r.TotalTopics, r.TotalBookmarks, r.PersonalizationOptions.SkillLevel, date(r.CreatedAt)})
	}
	t.Render()
	pageFooter(w, list.Total, list.CurrentPage, list.TotalPages)
}

func renderRoadmap(w io.Writer, r *models.Roadmap) {
	opts := r.PersonalizationOptions

	t := newTable(w)
	t.SetTitle("%s", r.Title)
	t.AppendRows([]table.Row{
		{"ID", r.ID},
		{"Slug", r.Slug},
		{"Skill level", opts.SkillLevel},
		{"Daily time", durationText(opts.DailyTimeAvailability)},
		{"Total duration", durationText(opts.TotalDuration)},
		{"Topics", models.CountTopics(r.Topics)},
		{"Bookmarks", r.TotalBookmarks},
		{"Created", date(r.CreatedAt)},
	})
	t.Render()

	if len(r.Topics) > 0 {
		fmt.Fprintln(w, "Topics:")
		writeTopics(w, r.Topics, 1)
	}
}

func writeTopics(w io.Writer, topics []models.Topic, depth int) {
	for _, topic := range topics {
		fmt.Fprintf(w, "%s%d. %s\n", strings.Repeat("  ", depth), topic.Order, topic.Title)
		writeTopics(w, topic.Subtopics, depth+1)
	}
}

func durationText(d models.Duration) string {
	if d.Value == 0 {
		return "-"
	}
	return strconv.Itoa(d.Value) + " " + d.Unit
}

func renderRatings(w io.Writer, list *models.FilteredList[models.Rating]) {
	if len(list.Items) == 0 {
		fmt.Fprintln(w, "No ratings yet.")
		return
	}

	t := newTable(w)
	t.AppendHeader(table.Row{"User", "Rating", "Progress", "Comment", "Date"})
	for _, r := range list.Items {
		progress := fmt.Sprintf("%d/%d", r.ProgressionTotalFinishedTopics, r.ProgressionTotalTopics)
		t.AppendRow(table.Row{r.User.Name, strings.Repeat("*", r.Rating), progress, r.Comment, date(r.CreatedAt)})
	}
	t.Render()
	pageFooter(w, list.Total, list.CurrentPage, list.TotalPages)
}
