package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"sabha/internal/roster"
)

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Interactive roster console (admin)",
	Long: `Open an interactive console over the membership roster.

The roster is loaded once and filtered locally; edits and deletes are
committed to the backend first and applied to the local view only on
success. Type "help" inside the console for the command list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession()
		if err != nil {
			return err
		}
		console := &rosterConsole{
			table: roster.NewTable(backendClient()),
			token: sess.AccessToken,
			out:   cmd.OutOrStdout(),
		}
		return console.run(cmd.Context())
	},
}

type rosterConsole struct {
	table *roster.Table
	token string
	out   io.Writer
}

func (c *rosterConsole) run(ctx context.Context) error {
	if err := c.table.Load(ctx, c.token); err != nil {
		return fmt.Errorf("load roster: %w", err)
	}
	color.Cyan("Loaded %d members. Type \"help\" for commands.", c.table.Size())
	c.printPage()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(c.out, "roster> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit", "q":
			return nil
		case "help":
			c.printHelp()
		case "list", "ls":
			c.printPage()
		case "search":
			c.table.SetSearch(strings.Join(args, " "))
			c.printPage()
		case "gender":
			g := roster.GenderAll
			if len(args) > 0 {
				g = args[0]
			}
			c.table.SetGender(g)
			c.printPage()
		case "filter":
			if len(args) < 1 {
				c.printFilters()
				continue
			}
			c.table.SetFieldFilter(args[0], strings.Join(args[1:], " "))
			c.printPage()
		case "clear":
			c.table.ClearFilters()
			c.printPage()
		case "page":
			if len(args) != 1 {
				color.Red("usage: page <n>")
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				color.Red("usage: page <n>")
				continue
			}
			c.table.SetPage(n)
			c.printPage()
		case "rows":
			if len(args) != 1 {
				color.Red("usage: rows <n>  (one of %v)", roster.RowsPerPageOptions)
				continue
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || c.table.SetRows(n) != nil {
				color.Red("rows must be one of %v", roster.RowsPerPageOptions)
				continue
			}
			c.printPage()
		case "show":
			if len(args) != 1 {
				color.Red("usage: show <id>")
				continue
			}
			c.printEntry(args[0])
		case "edit":
			if len(args) < 3 {
				color.Red("usage: edit <id> <field> <value>")
				continue
			}
			c.edit(ctx, args[0], args[1], strings.Join(args[2:], " "))
		case "delete", "del":
			if len(args) != 1 {
				color.Red("usage: delete <id>")
				continue
			}
			c.delete(ctx, scanner, args[0])
		case "export":
			path := roster.CSVFileName
			if len(args) > 0 {
				path = args[0]
			}
			c.export(path)
		case "reload":
			if err := c.table.Load(ctx, c.token); err != nil {
				color.Red("reload failed: %v", err)
				continue
			}
			color.Cyan("Reloaded %d members.", c.table.Size())
			c.printPage()
		default:
			color.Red("unknown command %q, type \"help\"", cmd)
		}
	}
}

func (c *rosterConsole) printHelp() {
	fmt.Fprint(c.out, `Commands:
  list                     show the current page
  search <text>            case-insensitive search across all fields
  gender <g>               keep only entries with this gender ("gender" alone resets)
  filter <field> <text>    per-field substring filter ("filter" alone lists active ones)
  clear                    drop search, gender and field filters
  page <n>                 go to page n
  rows <n>                 rows per page (5, 10, 20 or 50)
  show <id>                print one member in full
  edit <id> <field> <val>  update one field and save
  delete <id>              delete a member (asks for confirmation)
  export [file]            write the filtered view as CSV (default users.csv)
  reload                   refetch the roster from the backend
  quit                     leave the console
`)
}

// rosterColumns is the compact column set shown by the console; the full
// record is available via "show" and in CSV exports.
var rosterColumns = []string{"ID", "Name", "Email", "Phone", "Gender", "District"}

func (c *rosterConsole) printPage() {
	page, pager := c.table.CurrentPage()

	tw := tablewriter.NewWriter(c.out)
	tw.SetHeader(rosterColumns)
	for _, e := range page {
		tw.Append([]string{e.ID, e.Name, e.Email, e.PhoneNumber, e.Gender, e.District})
	}
	tw.Render()

	filtered := len(c.table.View())
	fmt.Fprintf(c.out, "page %d/%d, %d of %d members match\n",
		pager.Page, c.table.PageCount(), filtered, c.table.Size())
}

func (c *rosterConsole) printFilters() {
	f := c.table.FilterState()
	fmt.Fprintf(c.out, "search: %q\ngender: %s\n", f.Search, f.Gender)
	for field, pattern := range f.Fields {
		fmt.Fprintf(c.out, "filter: %s ~ %q\n", field, pattern)
	}
}

func (c *rosterConsole) printEntry(id string) {
	for _, e := range c.table.View() {
		if e.ID != id {
			continue
		}
		tw := tablewriter.NewWriter(c.out)
		tw.SetHeader([]string{"Field", "Value"})
		tw.Append([]string{"id", e.ID})
		for _, name := range roster.Attributes {
			v, _ := e.Field(name)
			if name == "date_of_birth" {
				v = roster.FormatDMY(v)
			}
			tw.Append([]string{name, v})
		}
		tw.Render()
		return
	}
	color.Red("no member %q in the current view", id)
}

func (c *rosterConsole) edit(ctx context.Context, id, field, value string) {
	var entry roster.Entry
	found := false
	for _, e := range c.table.View() {
		if e.ID == id {
			entry, found = e, true
			break
		}
	}
	if !found {
		color.Red("no member %q in the current view", id)
		return
	}
	if !entry.SetField(field, value) {
		color.Red("unknown field %q, valid fields: %s", field, strings.Join(roster.Attributes, ", "))
		return
	}
	if err := c.table.Save(ctx, c.token, entry); err != nil {
		color.Red("save failed: %v", err)
		return
	}
	color.Green("Saved %s.", id)
}

func (c *rosterConsole) delete(ctx context.Context, scanner *bufio.Scanner, id string) {
	fmt.Fprint(c.out, "Are you sure you want to delete this user? (y/N) ")
	if !scanner.Scan() {
		return
	}
	if answer := strings.ToLower(strings.TrimSpace(scanner.Text())); answer != "y" && answer != "yes" {
		fmt.Fprintln(c.out, "Cancelled.")
		return
	}
	if err := c.table.Delete(ctx, c.token, id); err != nil {
		color.Red("delete failed: %v", err)
		return
	}
	color.Green("Deleted %s.", id)
}

func (c *rosterConsole) export(path string) {
	if err := os.WriteFile(path, c.table.ExportCSV(), 0o644); err != nil {
		color.Red("export failed: %v", err)
		return
	}
	color.Green("Wrote %d filtered members to %s.", len(c.table.View()), path)
}
