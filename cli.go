package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"menu-qr/qr"
	"menu-qr/services"
)

const usage = `usage:
  menuqr                      interactive shell
  menuqr list                 show the menu
  menuqr add <dish> <price>   add a dish
  menuqr remove <dish>        remove a dish
  menuqr payload              print the QR text
  menuqr export [path]        write the QR image
  menuqr migrate              create the menu table`

// App forwards user actions to the MenuStore and turns errors into notices.
type App struct {
	Store  *services.MenuStore
	Enc    qr.Encoder
	Output string
	Out    io.Writer
	Err    io.Writer
}

// Run executes one subcommand, or the shell when args is empty. It returns
// the process exit code.
func (a *App) Run(ctx context.Context, args []string, in io.Reader) int {
	if len(args) == 0 || args[0] == "shell" {
		a.Shell(ctx, in)
		return 0
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "add":
		if len(rest) != 2 {
			fmt.Fprintln(a.Err, usage)
			return 2
		}
	case "remove":
		if len(rest) != 1 {
			fmt.Fprintln(a.Err, usage)
			return 2
		}
	case "export":
		if len(rest) > 1 {
			fmt.Fprintln(a.Err, usage)
			return 2
		}
	case "list", "payload":
	default:
		fmt.Fprintln(a.Err, usage)
		return 2
	}
	if !a.dispatch(ctx, cmd, rest) {
		return 1
	}
	return 0
}

// Shell reads commands line by line until EOF or "quit". Failures are
// reported and the loop continues.
func (a *App) Shell(ctx context.Context, in io.Reader) {
	fmt.Fprintln(a.Out, `commands: add <dish> <price>, remove <dish>, list, payload, qr [path], quit`)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, rest := strings.ToLower(fields[0]), fields[1:]
		switch cmd {
		case "quit", "exit":
			return
		case "add":
			// the last word is the price, everything before it is the dish
			if len(rest) < 2 {
				fmt.Fprintln(a.Err, "Please enter the dish name and price.")
				continue
			}
			rest = []string{strings.Join(rest[:len(rest)-1], " "), rest[len(rest)-1]}
		case "remove":
			if len(rest) == 0 {
				continue // nothing selected
			}
			rest = []string{strings.Join(rest, " ")}
		case "qr":
			cmd = "export"
		case "list", "payload", "export":
		default:
			fmt.Fprintf(a.Err, "unknown command %q\n", cmd)
			continue
		}
		a.dispatch(ctx, cmd, rest)
	}
}

func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "add":
		e, err := a.Store.Add(ctx, args[0], args[1])
		if err != nil {
			a.notify(err)
			return false
		}
		fmt.Fprintf(a.Out, "Added %s - $%s\n", e.Dish, e.Price)
		a.printGrid()
	case "remove":
		err := a.Store.Remove(ctx, args[0])
		if err != nil && !errors.Is(err, services.ErrNotFound) {
			a.notify(err)
			return false
		}
		a.printGrid()
	case "list":
		a.printGrid()
	case "payload":
		fmt.Fprintln(a.Out, services.RenderPayload(a.Store.Entries()))
	case "export":
		path := a.Output
		if len(args) == 1 {
			path = args[0]
		}
		if err := a.Store.ExportQR(a.Enc, path); err != nil {
			a.notify(err)
			return false
		}
		fmt.Fprintf(a.Out, "QR code generated. Saved as %s\n", path)
	}
	return true
}

func (a *App) printGrid() {
	tw := tabwriter.NewWriter(a.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Dish\tPrice")
	for _, e := range a.Store.Entries() {
		fmt.Fprintf(tw, "%s\t%s\n", e.Dish, e.Price)
	}
	tw.Flush()
}

func (a *App) notify(err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		fmt.Fprintln(a.Err, "Please enter the dish name and price.")
	case errors.Is(err, services.ErrDuplicate):
		fmt.Fprintln(a.Err, "This dish is already on the menu.")
	case errors.Is(err, qr.ErrEncoding), errors.Is(err, qr.ErrIO):
		fmt.Fprintln(a.Err, "Could not generate QR code:", err)
	default:
		fmt.Fprintln(a.Err, "Error:", err)
	}
}
