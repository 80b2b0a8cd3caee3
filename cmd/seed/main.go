package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"problem-bank/internal/config"
	"problem-bank/internal/database"
	"problem-bank/internal/domain"
	"problem-bank/internal/logger"
	"problem-bank/internal/repository"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const seedAuthor = "seed@problem-bank.local"

var seedCategories = []string{
	"algorithms",
	"data-structures",
	"databases",
	"networking",
	"operating-systems",
}

func seedProblems() []domain.Problem {
	problems := make([]domain.Problem, 0, 10)
	for i := 1; i <= 10; i++ {
		problems = append(problems, domain.Problem{
			Title:       fmt.Sprintf("Sample Problem %02d", i),
			Description: fmt.Sprintf("Placeholder description for sample problem %d.", i),
			ProblemType: i % 3,
			Difficulty:  i%5 + 1,
			Categories:  seedCategories[i%len(seedCategories)],
			Answer:      "42",
			CreatedBy:   seedAuthor,
		})
	}
	return problems
}

// isConflict reports whether err is a uniqueness conflict, which during
// seeding just means the row is already there.
func isConflict(err error) bool {
	var domainErr *domain.DomainError
	return errors.As(err, &domainErr) && domainErr.Code == domain.CodeConflict
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	categoryRepo := repository.NewCategoryDatabaseAdapter(db)
	problemRepo := repository.NewProblemDatabaseAdapter(db)

	ctx := context.Background()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, name := range seedCategories {
		g.Go(func() error {
			category := &domain.Category{Name: name}
			if err := categoryRepo.SaveCategory(ctx, category); err != nil {
				if isConflict(err) {
					appLogger.Info("Category already seeded", zap.String("name", name))
					return nil
				}
				return err
			}
			appLogger.Info("Seeded category", zap.String("name", name), zap.String("uuid", category.UUID))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		appLogger.Fatal("Failed to seed categories", zap.Error(err))
	}

	g, ctx = errgroup.WithContext(context.Background())
	g.SetLimit(4)
	for _, problem := range seedProblems() {
		g.Go(func() error {
			if err := problemRepo.SaveProblem(ctx, &problem); err != nil {
				if isConflict(err) {
					appLogger.Info("Problem already seeded", zap.String("title", problem.Title))
					return nil
				}
				return err
			}
			appLogger.Info("Seeded problem", zap.String("title", problem.Title), zap.String("uuid", problem.UUID))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		appLogger.Fatal("Failed to seed problems", zap.Error(err))
	}

	appLogger.Info("Seeding completed")
}
