package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"biblebee/internal/cli"
	"biblebee/internal/db"
	"biblebee/internal/repository"
	"biblebee/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.biblebee/biblebee.db
	dbPath := os.Getenv("BIBLEBEE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".biblebee", "biblebee.db")
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	households := repository.NewSQLiteHouseholdRepo(database)
	children := repository.NewSQLiteChildRepo(database)
	cycles := repository.NewSQLiteCycleRepo(database)
	divisions := repository.NewSQLiteDivisionRepo(database)
	gradeRules := repository.NewSQLiteGradeRuleRepo(database)
	scriptures := repository.NewSQLiteScriptureRepo(database)
	prompts := repository.NewSQLiteEssayPromptRepo(database)
	enrollments := repository.NewSQLiteEnrollmentRepo(database)
	scriptureAssignments := repository.NewSQLiteScriptureAssignmentRepo(database)
	essayAssignments := repository.NewSQLiteEssayAssignmentRepo(database)
	uow := db.NewUnitOfWork(database)

	// Optional use-case logging for debugging slow rosters.
	var observers []service.UseCaseObserver
	if os.Getenv("BIBLEBEE_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	materializer := service.NewMaterializerService(
		enrollments, children, households, cycles, divisions, scriptures,
		prompts, scriptureAssignments, essayAssignments, uow,
	)

	app := &cli.App{
		Catalog: service.NewCatalogService(cycles, divisions, scriptures, enrollments),
		Progress: service.NewProgressService(
			materializer, enrollments, children, cycles, divisions, gradeRules, scriptures,
			observers...,
		),
		Materializer: materializer,
		Completion:   service.NewCompletionService(uow, observers...),
		Registration: service.NewRegistrationService(
			households, children, cycles, divisions, gradeRules, scriptures, prompts, enrollments,
		),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
