package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	echoapi "github.com/Radiyassin/login-campus-connect/apps/api/echo"
	"github.com/Radiyassin/login-campus-connect/core"
	"github.com/Radiyassin/login-campus-connect/core/project"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf     *core.Config
	provider core.AuthProvider
	out      io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  token -email EMAIL -role student|professor - sign in and print an API token")
	fmt.Fprintln(cli.out, "  gpa GRADE... - print the GPA average of letter grades")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	tokenEmail := tokenCmd.String("email", "", "The user's email. The password will be prompted next.")
	tokenRole := tokenCmd.String("role", core.RoleStudent, "The dashboard to sign in to: student or professor.")

	switch args[1] {
	case "token":
		if err := tokenCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *tokenEmail == "" {
			tokenCmd.Usage()
			return errHelp
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			tokenCmd.Usage()
			return errHelp
		}
		return cli.token(*tokenEmail, string(pwd), *tokenRole)
	case "gpa":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.gpa(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func (cli *commandLine) token(email, pwd, role string) error {
	ident, err := cli.provider.Authenticate(context.Background(), core.Credentials{Email: email, Password: pwd, Role: role})
	if err != nil {
		return err
	}
	token, err := echoapi.GenerateToken(cli.conf, echoapi.NewClaims(cli.conf, ident))
	if err != nil {
		return err
	}
	fmt.Fprintln(cli.out, token)
	return nil
}

func (cli *commandLine) gpa(grades []string) error {
	for i, g := range grades {
		grades[i] = core.CleanString(g)
		if !project.IsLetterGrade(grades[i]) {
			return fmt.Errorf("invalid grade %q", g)
		}
	}
	avg, _ := project.AverageGPA(grades)
	fmt.Fprintf(cli.out, "%.1f\n", avg)
	return nil
}
