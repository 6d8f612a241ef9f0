package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cliApp := newApp(stdout, stderr)
	err := cliApp.RunContext(ctx, args)
	if err == nil {
		return 0
	}

	if exit, ok := err.(cli.ExitCoder); ok {
		if msg := exit.Error(); msg != "" {
			fmt.Fprintln(stderr, msg)
		}
		return exit.ExitCode()
	}
	fmt.Fprintln(stderr, errorLine(err))
	return exitCode(err)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "bracketeering",
		Usage:     "score bracket predictions against tournament results",
		Writer:    stdout,
		ErrWriter: stderr,
		// exit status is decided by run, never inside the library
		ExitErrHandler: func(*cli.Context, error) {},
		OnUsageError:   onUsageError,
		Action:         rootAction,
		Commands: []*cli.Command{
			newScoreCommand(),
			newValidateCommand(),
		},
	}
}

func onUsageError(_ *cli.Context, err error, _ bool) error {
	return &usageError{msg: err.Error()}
}

// rootAction runs when no command matched. A bare FOLDER is a usage error,
// never a help lookup.
func rootAction(c *cli.Context) error {
	if c.NArg() == 0 {
		if err := cli.ShowAppHelp(c); err != nil {
			return err
		}
		return &usageError{msg: "missing command: score or validate"}
	}
	arg := c.Args().First()
	return &usageError{msg: fmt.Sprintf("unknown command %q, try \"%s score %s\"", arg, c.App.Name, arg)}
}
