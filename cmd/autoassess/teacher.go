package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/spec-kit/autoassess-client/internal/domain"
)

var readPasswordFunc = term.ReadPassword // mockable

func (cli *commandLine) printTeacherUsage() {
	fmt.Println("Usage:")
	fmt.Println("  autoassess teacher login -username USERNAME        - log in (password prompted)")
	fmt.Println("  autoassess teacher logout                          - end the session")
	fmt.Println("  autoassess teacher status                          - show session state")
	fmt.Println("  autoassess teacher generate -topic T [-difficulty D] [-n N]")
	fmt.Println("  autoassess teacher generate-text -text T [-difficulty D] [-n N]")
	fmt.Println("  autoassess teacher generate-file -file PATH [-difficulty D] [-n N]")
	fmt.Println("  autoassess teacher packages                        - list question packages")
	fmt.Println("  autoassess teacher assignments                     - list assignments")
	fmt.Println("  autoassess teacher create-assignment -name NAME -packages 1,2,3")
	fmt.Println("  autoassess teacher results -assignment ID          - list graded submissions")
	fmt.Println("  autoassess teacher release -assignment ID [-alpha A] [-beta B] [-gamma G]")
	fmt.Println("  autoassess teacher analyze -submission ID          - AI review of a submission")
	fmt.Println("  autoassess teacher codes                           - list one-time reset codes")
	fmt.Println("  autoassess teacher stats                           - dashboard summary")
}

func (cli *commandLine) runTeacher(ctx context.Context, args []string) error {
	if len(args) < 1 {
		cli.printTeacherUsage()
		return errHelp
	}

	switch args[0] {
	case "login":
		return cli.teacherLogin(ctx, args[1:])
	case "logout":
		cli.session.Logout(ctx)
		fmt.Println("logged out")
		return nil
	case "status":
		return cli.printJSON(map[string]bool{"is_authenticated": cli.session.IsAuthenticated()})
	}

	// Every remaining teacher command renders protected content.
	if err := cli.guard.Require(); err != nil {
		return err
	}

	switch args[0] {
	case "generate":
		return cli.teacherGenerate(ctx, args[1:])
	case "generate-text":
		return cli.teacherGenerateText(ctx, args[1:])
	case "generate-file":
		return cli.teacherGenerateFile(ctx, args[1:])
	case "packages":
		packages, err := cli.client.Packages(ctx)
		if err != nil {
			return err
		}
		return cli.printJSON(packages)
	case "assignments":
		assignments, err := cli.client.Assignments(ctx)
		if err != nil {
			return err
		}
		return cli.printJSON(assignments)
	case "create-assignment":
		return cli.teacherCreateAssignment(ctx, args[1:])
	case "results":
		return cli.teacherResults(ctx, args[1:])
	case "release":
		return cli.teacherRelease(ctx, args[1:])
	case "analyze":
		return cli.teacherAnalyze(ctx, args[1:])
	case "codes":
		codes, err := cli.client.Codes(ctx)
		if err != nil {
			return err
		}
		return cli.printJSON(codes)
	case "stats":
		stats, err := cli.client.Stats(ctx)
		if err != nil {
			return err
		}
		return cli.printJSON(stats)
	default:
		cli.printTeacherUsage()
		return errHelp
	}
}

func (cli *commandLine) teacherLogin(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("login", flag.ExitOnError)
	username := cmd.String("username", "", "teacher username")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		cmd.Usage()
		return errHelp
	}

	fmt.Print("Enter password: ")
	pwd, err := readPasswordFunc(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return err
	}

	token, err := cli.client.LoginTeacher(ctx, *username, string(pwd))
	if err != nil {
		return err
	}
	cli.session.Login(ctx, token.AccessToken)
	fmt.Println("logged in")
	return nil
}

func (cli *commandLine) teacherGenerate(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("generate", flag.ExitOnError)
	topic := cmd.String("topic", "", "question topic")
	difficulty := cmd.String("difficulty", "medium", "easy|medium|hard")
	n := cmd.Int("n", 5, "number of questions")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *topic == "" {
		cmd.Usage()
		return errHelp
	}

	packages, err := cli.client.GenerateQuestions(ctx, *topic, *difficulty, *n)
	if err != nil {
		return err
	}
	return cli.printJSON(packages)
}

func (cli *commandLine) teacherGenerateText(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("generate-text", flag.ExitOnError)
	text := cmd.String("text", "", "source material")
	difficulty := cmd.String("difficulty", "medium", "easy|medium|hard")
	n := cmd.Int("n", 5, "number of questions")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *text == "" {
		cmd.Usage()
		return errHelp
	}

	packages, err := cli.client.GenerateFromText(ctx, *text, *difficulty, *n)
	if err != nil {
		return err
	}
	return cli.printJSON(packages)
}

func (cli *commandLine) teacherGenerateFile(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("generate-file", flag.ExitOnError)
	path := cmd.String("file", "", "document to upload")
	difficulty := cmd.String("difficulty", "medium", "easy|medium|hard")
	n := cmd.Int("n", 5, "number of questions")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *path == "" {
		cmd.Usage()
		return errHelp
	}

	file, err := os.Open(*path)
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck

	packages, err := cli.client.GenerateFromFile(ctx, file.Name(), file, *n, *difficulty)
	if err != nil {
		return err
	}
	return cli.printJSON(packages)
}

func (cli *commandLine) teacherCreateAssignment(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("create-assignment", flag.ExitOnError)
	name := cmd.String("name", "", "assignment name")
	packages := cmd.String("packages", "", "comma-separated package ids")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *name == "" || *packages == "" {
		cmd.Usage()
		return errHelp
	}

	ids, err := parseIDs(*packages)
	if err != nil {
		return err
	}

	assignment, err := cli.client.CreateAssignment(ctx, *name, ids)
	if err != nil {
		return err
	}
	return cli.printJSON(assignment)
}

func (cli *commandLine) teacherResults(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("results", flag.ExitOnError)
	assignmentID := cmd.Int("assignment", 0, "assignment id")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *assignmentID == 0 {
		cmd.Usage()
		return errHelp
	}

	results, err := cli.client.Results(ctx, *assignmentID)
	if err != nil {
		return err
	}
	return cli.printJSON(results)
}

func (cli *commandLine) teacherRelease(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("release", flag.ExitOnError)
	assignmentID := cmd.Int("assignment", 0, "assignment id")
	alpha := cmd.Float64("alpha", cli.cfg.Release.Alpha, "test score weight")
	beta := cmd.Float64("beta", cli.cfg.Release.Beta, "quality score weight")
	gamma := cmd.Float64("gamma", cli.cfg.Release.Gamma, "error penalty scale")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *assignmentID == 0 {
		cmd.Usage()
		return errHelp
	}

	weights := domain.ReleaseWeights{Alpha: *alpha, Beta: *beta, Gamma: *gamma}
	if err := cli.client.ReleaseResults(ctx, *assignmentID, weights); err != nil {
		return err
	}
	fmt.Println("results released")
	return nil
}

func (cli *commandLine) teacherAnalyze(ctx context.Context, args []string) error {
	cmd := flag.NewFlagSet("analyze", flag.ExitOnError)
	submissionID := cmd.Int("submission", 0, "submission id")
	if err := cmd.Parse(args); err != nil {
		return err
	}
	if *submissionID == 0 {
		cmd.Usage()
		return errHelp
	}

	analysis, err := cli.client.CodeAnalysis(ctx, *submissionID)
	if err != nil {
		return err
	}
	return cli.printJSON(analysis)
}

func parseIDs(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid package id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
