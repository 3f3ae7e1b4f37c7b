package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/spec-kit/autoassess-client/internal/domain"
	"github.com/spec-kit/autoassess-client/internal/identity"
)

var errNoStudentSession = errors.New("no student session; run autoassess student login")

func (cli *commandLine) printStudentUsage() {
	fmt.Println("Usage:")
	fmt.Println("  autoassess student login -roll ROLL -dob YYYY-MM-DD")
	fmt.Println("  autoassess student assignments                     - list assignments with status")
	fmt.Println("  autoassess student assignment -assignment ID       - assignment detail")
	fmt.Println("  autoassess student run -assignment ID -file PATH   - run code against samples")
	fmt.Println("  autoassess student submit -assignment ID -file PATH")
	fmt.Println("  autoassess student result -assignment ID           - own graded result")
	fmt.Println("  autoassess student analyze -assignment ID          - AI review")
	fmt.Println("  autoassess student profile                         - show profile")
	fmt.Println("  autoassess student update-profile -name N -dob D -code C")
	fmt.Println("  autoassess student change-dob -roll R -dob D -code C")
}

func (cli *commandLine) runStudent(ctx context.Context, args []string) error {
	if len(args) < 1 {
		cli.printStudentUsage()
		return errHelp
	}

	switch args[0] {
	case "login":
		return cli.studentLogin(ctx, args[1:])
	case "assignments":
		assignments, err := cli.client.StudentAssignments(ctx)
		if err != nil {
			return err
		}
		return cli.printJSON(assignments)
	case "assignment":
		return cli.studentAssignment(ctx, args[1:])
	case "run":
		return cli.studentRun(ctx, args[1:])
	case "submit":
		return cli.studentSubmit(ctx, args[1:])
	case "result":
		return cli.studentResult(ctx, args[1:])
	case "analyze":
		return cli.studentAnalyze(ctx, args[1:])
	case "profile":
		profile, err := cli.client.StudentProfile(ctx)
		if err != nil {
			return err
		}
		return cli.printJSON(profile)
	case "update-profile":
		return cli.studentUpdateProfile(ctx, args[1:])
	case "change-dob":
		return cli.studentChangeDOB(ctx, args[1:])
	default:
		cli.printStudentUsage()
		return errHelp
	}
}

// studentRoll recovers the student identity by decoding the subject
// claim out of the stored token. A malformed or absent token reads as
// "not logged in".
func (cli *commandLine) studentRoll(ctx context.Context) (string, error) {
	token, ok := cli.store.Get(ctx, domain.RoleStudent)
	if !ok {
		return "", errNoStudentSession
	}
	id, err := identity.Decode(token)
	if err != nil {
		return "", errNoStudentSession
	}
	return id.Subject, nil
}

func (cli *commandLine) studentLogin(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("login", flag.ExitOnError)
	roll := cmd.Int("roll", 0, "roll number")
	dob := cmd.String("dob", "", "date of birth")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *roll == 0 || *dob == "" {
		cmd.Usage()
		return errHelp
	}

	token, err := cli.client.LoginStudent(ctx, *roll, *dob)
	if err != nil {
		return err
	}
	cli.store.Set(ctx, domain.RoleStudent, token.AccessToken)
	fmt.Println("logged in")
	return nil
}

func (cli *commandLine) studentAssignment(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("assignment", flag.ExitOnError)
	assignmentID := cmd.Int("assignment", 0, "assignment id")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *assignmentID == 0 {
		cmd.Usage()
		return errHelp
	}

	roll, err := cli.studentRoll(ctx)
	if err != nil {
		return err
	}

	detail, err := cli.client.StudentAssignment(ctx, *assignmentID, roll)
	if err != nil {
		return err
	}
	return cli.printJSON(detail)
}

func (cli *commandLine) studentRun(ctx context.Context, args []string) error {
	roll, assignmentID, code, err := cli.parseCodeArgs(ctx, "run", args)
	if err != nil {
		return err
	}

	run, err := cli.client.RunCode(ctx, roll, assignmentID, code)
	if err != nil {
		return err
	}
	return cli.printJSON(run)
}

func (cli *commandLine) studentSubmit(ctx context.Context, args []string) error {
	roll, assignmentID, code, err := cli.parseCodeArgs(ctx, "submit", args)
	if err != nil {
		return err
	}

	result, err := cli.client.SubmitSolution(ctx, roll, assignmentID, code)
	if err != nil {
		return err
	}
	return cli.printJSON(result)
}

func (cli *commandLine) parseCodeArgs(ctx context.Context, name string, args []string) (roll, assignmentID int, code string, err error) {
	cmd := flag.NewFlagSet(name, flag.ExitOnError)
	assignment := cmd.Int("assignment", 0, "assignment id")
	path := cmd.String("file", "", "solution source file")
	if err = cmd.Parse(args); err != nil {
		return 0, 0, "", err
	}
	if *assignment == 0 || *path == "" {
		cmd.Usage()
		return 0, 0, "", errHelp
	}

	rollStr, err := cli.studentRoll(ctx)
	if err != nil {
		return 0, 0, "", err
	}
	roll, err = strconv.Atoi(rollStr)
	if err != nil {
		return 0, 0, "", errNoStudentSession
	}

	source, err := os.ReadFile(*path)
	if err != nil {
		return 0, 0, "", err
	}
	return roll, *assignment, string(source), nil
}

func (cli *commandLine) studentResult(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("result", flag.ExitOnError)
	assignmentID := cmd.Int("assignment", 0, "assignment id")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *assignmentID == 0 {
		cmd.Usage()
		return errHelp
	}

	roll, err := cli.studentRoll(ctx)
	if err != nil {
		return err
	}

	result, err := cli.client.StudentResult(ctx, *assignmentID, roll)
	if err != nil {
		return err
	}
	return cli.printJSON(result)
}

func (cli *commandLine) studentAnalyze(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("analyze", flag.ExitOnError)
	assignmentID := cmd.Int("assignment", 0, "assignment id")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *assignmentID == 0 {
		cmd.Usage()
		return errHelp
	}

	roll, err := cli.studentRoll(ctx)
	if err != nil {
		return err
	}

	analysis, err := cli.client.StudentAnalysis(ctx, *assignmentID, roll)
	if err != nil {
		return err
	}
	return cli.printJSON(analysis)
}

func (cli *commandLine) studentUpdateProfile(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("update-profile", flag.ExitOnError)
	name := cmd.String("name", "", "display name")
	dob := cmd.String("dob", "", "new date of birth")
	code := cmd.String("code", "", "one-time code")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *name == "" && *dob == "" {
		cmd.Usage()
		return errHelp
	}

	if err := cli.client.UpdateStudentProfile(ctx, *name, *dob, *code); err != nil {
		return err
	}
	fmt.Println("profile updated")
	return nil
}

func (cli *commandLine) studentChangeDOB(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("change-dob", flag.ExitOnError)
	roll := cmd.Int("roll", 0, "roll number")
	dob := cmd.String("dob", "", "new date of birth")
	code := cmd.String("code", "", "one-time code")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *roll == 0 || *dob == "" || *code == "" {
		cmd.Usage()
		return errHelp
	}

	if err := cli.client.ChangeDOB(ctx, *roll, *dob, *code); err != nil {
		return err
	}
	fmt.Println("date of birth updated")
	return nil
}
