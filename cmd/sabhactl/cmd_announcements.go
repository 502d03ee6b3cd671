package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sabha/internal/announce"
)

var announcementsCmd = &cobra.Command{
	Use:     "announcements",
	Aliases: []string{"ann"},
	Short:   "Interactive announcements console",
	Long: `Open an interactive console over the community announcements board.

Everyone can read the board; posting, editing and deleting need the admin
role. Type "help" inside the console for the command list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := loadSession()
		if err != nil {
			return err
		}
		console := &announceConsole{
			board: announce.NewBoard(backendClient()),
			token: sess.AccessToken,
			in:    cmd.InOrStdin(),
			out:   cmd.OutOrStdout(),
		}
		return console.run(cmd.Context())
	},
}

type announceConsole struct {
	board *announce.Board
	token string
	in    io.Reader
	out   io.Writer
}

func (c *announceConsole) run(ctx context.Context) error {
	if err := c.board.Load(ctx, c.token); err != nil {
		return fmt.Errorf("load announcements: %w", err)
	}
	if err := c.board.RefreshRole(ctx, c.token); err != nil {
		color.Yellow("role check failed, console is read-only: %v", err)
	}
	c.printBoard()

	scanner := bufio.NewScanner(c.in)
	for {
		fmt.Fprint(c.out, "announcements> ")
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
			c.printBoard()
		case "post":
			c.post(ctx, scanner, strings.Join(args, " "))
		case "edit":
			if len(args) != 1 {
				color.Red("usage: edit <id>")
				continue
			}
			c.edit(ctx, scanner, args[0])
		case "delete", "del":
			if len(args) != 1 {
				color.Red("usage: delete <id>")
				continue
			}
			c.delete(ctx, scanner, args[0])
		case "reload":
			if err := c.board.Load(ctx, c.token); err != nil {
				color.Red("reload failed: %v", err)
				continue
			}
			c.printBoard()
		default:
			color.Red("unknown command %q, type \"help\"", cmd)
		}
	}
}

func (c *announceConsole) printHelp() {
	fmt.Fprint(c.out, `Commands:
  list               show the board
  post <title>       post a new announcement (admin; prompts for content)
  edit <id>          update title and content (admin; empty input keeps current)
  delete <id>        delete an announcement (admin; asks for confirmation)
  reload             refetch the board from the backend
  quit               leave the console
`)
}

func (c *announceConsole) printBoard() {
	items := c.board.Items()
	if len(items) == 0 {
		fmt.Fprintln(c.out, "No announcements.")
		return
	}
	for _, a := range items {
		fmt.Fprintf(c.out, "[%s] %s (%s)\n", a.ID, a.Title, a.CreatedAt)
		fmt.Fprintln(c.out, a.Content)
		if a.AuthorEmail != "" {
			fmt.Fprintf(c.out, "(%s)\n", a.AuthorEmail)
		}
		fmt.Fprintln(c.out)
	}
}

func (c *announceConsole) prompt(scanner *bufio.Scanner, label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func (c *announceConsole) requireAdmin() bool {
	if c.board.IsAdmin() {
		return true
	}
	color.Red("the admin role is required for this command")
	return false
}

func (c *announceConsole) post(ctx context.Context, scanner *bufio.Scanner, title string) {
	if !c.requireAdmin() {
		return
	}
	if title == "" {
		var ok bool
		if title, ok = c.prompt(scanner, "Title: "); !ok || title == "" {
			color.Red("a title is required")
			return
		}
	}
	content, ok := c.prompt(scanner, "Content: ")
	if !ok || content == "" {
		color.Red("content is required")
		return
	}
	created, err := c.board.Create(ctx, c.token, title, content)
	if err != nil {
		color.Red("post failed: %v", err)
		return
	}
	color.Green("Posted %s.", created.ID)
}

func (c *announceConsole) edit(ctx context.Context, scanner *bufio.Scanner, id string) {
	if !c.requireAdmin() {
		return
	}
	var current announce.Announcement
	found := false
	for _, a := range c.board.Items() {
		if a.ID == id {
			current, found = a, true
			break
		}
	}
	if !found {
		color.Red("no announcement %q on the board", id)
		return
	}
	title, ok := c.prompt(scanner, fmt.Sprintf("Title [%s]: ", current.Title))
	if !ok {
		return
	}
	if title == "" {
		title = current.Title
	}
	content, ok := c.prompt(scanner, "Content (empty keeps current): ")
	if !ok {
		return
	}
	if content == "" {
		content = current.Content
	}
	if err := c.board.Update(ctx, c.token, id, title, content); err != nil {
		color.Red("update failed: %v", err)
		return
	}
	color.Green("Updated %s.", id)
}

func (c *announceConsole) delete(ctx context.Context, scanner *bufio.Scanner, id string) {
	if !c.requireAdmin() {
		return
	}
	answer, ok := c.prompt(scanner, "Are you sure you want to delete this announcement? (y/N) ")
	if !ok {
		return
	}
	if answer = strings.ToLower(answer); answer != "y" && answer != "yes" {
		fmt.Fprintln(c.out, "Cancelled.")
		return
	}
	if err := c.board.Delete(ctx, c.token, id); err != nil {
		color.Red("delete failed: %v", err)
		return
	}
	color.Green("Deleted %s.", id)
}
