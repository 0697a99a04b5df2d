package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/study-coordinator/internal/domain"
	"github.com/phrazzld/study-coordinator/internal/store"
)

// printer accumulates lines and writes them in one call.
type printer struct {
	styles Styles
	sb     strings.Builder
}

func newPrinter(w io.Writer) *printer {
	return &printer{styles: NewStyles(w)}
}

func (p *printer) line(s string) {
	p.sb.WriteString(s)
	p.sb.WriteByte('\n')
}

func (p *printer) heading(s string) {
	p.line(p.styles.Heading.Render(s))
}

func (p *printer) field(label, value string) {
	p.line(p.styles.Label.Render(label+":") + " " + value)
}

func (p *printer) muted(s string) {
	p.line(p.styles.Muted.Render(s))
}

func (p *printer) flush(w io.Writer) error {
	_, err := io.WriteString(w, p.sb.String())
	return err
}

// WriteUserDirectory lists the id and username of every user.
func WriteUserDirectory(w io.Writer, users []*domain.User) error {
	p := newPrinter(w)
	p.heading("User IDs and Usernames:")
	for _, u := range users {
		p.line(fmt.Sprintf("ID: %d - Username: %s", u.ID, u.Username))
	}
	return p.flush(w)
}

// WriteGroups lists the group names, numbered from 1.
func WriteGroups(w io.Writer, groups []*domain.StudyGroup) error {
	p := newPrinter(w)
	if len(groups) == 0 {
		p.muted("No study groups found.")
		return p.flush(w)
	}

	p.heading("Study Groups:")
	for i, g := range groups {
		p.line(fmt.Sprintf("%d. %s", i+1, g.Name))
	}
	return p.flush(w)
}

// WriteGroupDetails shows a group's name, description and member usernames.
func WriteGroupDetails(w io.Writer, group *domain.StudyGroup, members []*domain.User) error {
	p := newPrinter(w)
	p.field("Group Name", group.Name)
	p.field("Group Description", group.Description)
	p.line(p.styles.Label.Render("Group Members:"))
	for _, m := range members {
		p.line("- " + m.Username)
	}
	return p.flush(w)
}

// WriteSessions lists the titles of a group's sessions.
// The empty message is written once, only when there are no sessions.
func WriteSessions(w io.Writer, groupName string, sessions []*domain.Session) error {
	titles := make([]string, len(sessions))
	for i, s := range sessions {
		titles[i] = s.Title
	}
	return writeGroupListing(w, "Sessions", groupName, "Title", titles,
		"Your group doesn't have any session.")
}

// WriteResources lists the titles of a group's resources.
func WriteResources(w io.Writer, groupName string, resources []*domain.Resource) error {
	titles := make([]string, len(resources))
	for i, r := range resources {
		titles[i] = r.Title
	}
	return writeGroupListing(w, "Resources", groupName, "Title", titles,
		"Your group doesn't have any resources.")
}

// WriteDiscussions lists a group's discussion topics with their comments.
func WriteDiscussions(w io.Writer, groupName string, discussions []*domain.Discussion) error {
	p := newPrinter(w)
	p.heading("Discussions for group " + groupName + ":")
	if len(discussions) == 0 {
		p.muted("Your group doesn't have any discussions")
		return p.flush(w)
	}
	for _, d := range discussions {
		writeDiscussion(p, d)
	}
	return p.flush(w)
}

func writeGroupListing(w io.Writer, kind, groupName, label string, keys []string, empty string) error {
	p := newPrinter(w)
	p.heading(kind + " for group " + groupName + ":")
	if len(keys) == 0 {
		p.muted(empty)
		return p.flush(w)
	}
	for _, k := range keys {
		p.field(label, k)
	}
	return p.flush(w)
}

// WriteSession shows all fields of one session.
func WriteSession(w io.Writer, s *domain.Session) error {
	p := newPrinter(w)
	p.field("Title", s.Title)
	p.field("Date", s.Date)
	p.field("Description", s.Description)
	return p.flush(w)
}

// WriteResource shows all fields of one resource.
func WriteResource(w io.Writer, r *domain.Resource) error {
	p := newPrinter(w)
	p.field("Title", r.Title)
	p.field("Description", r.Description)
	p.field("Link", r.Link)
	return p.flush(w)
}

// WriteDiscussion shows one discussion and its comments.
func WriteDiscussion(w io.Writer, d *domain.Discussion) error {
	p := newPrinter(w)
	writeDiscussion(p, d)
	return p.flush(w)
}

func writeDiscussion(p *printer, d *domain.Discussion) {
	p.field("Topic", d.Topic)
	p.line(p.styles.Label.Render("Comments:"))
	if len(d.Comments) == 0 {
		p.muted("(no comments yet)")
	}
	for _, c := range d.Comments {
		if c.Author == "" {
			p.line("- " + c.Text)
			continue
		}
		p.line("- " + c.Author + " : " + c.Text)
	}
}

// WriteLoadReport writes one line per collection describing how it was loaded.
func WriteLoadReport(w io.Writer, results []store.LoadResult) error {
	p := newPrinter(w)
	for _, r := range results {
		switch r.Status {
		case store.LoadStatusLoaded:
			p.line(fmt.Sprintf("%s: loaded %d from %s", r.Collection, r.Count, r.Path))
		case store.LoadStatusMissing:
			p.line(p.styles.Warning.Render(fmt.Sprintf("%s: %s does not exist, starting empty", r.Collection, r.Path)))
		default:
			p.line(p.styles.Error.Render(fmt.Sprintf("%s: invalid data format in %s, starting empty", r.Collection, r.Path)))
		}
	}
	return p.flush(w)
}
