package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	appModels "github.com/yigit/studentrecords/internal/app/models"
	appRepos "github.com/yigit/studentrecords/internal/app/repositories"
)

// DemoStudents are inserted by CreateDemoStudents
var DemoStudents = []appModels.Student{
	{FirstName: "Jane", LastName: "Smith", GroupName: "G2", Role: "Designer", ExpectedSalary: 45000, ExpectedDateOfDefense: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
	{FirstName: "John", LastName: "Doe", GroupName: "G1", Role: "Developer", ExpectedSalary: 50000, ExpectedDateOfDefense: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
	{FirstName: "Aylin", LastName: "Kaya", GroupName: "G1", Role: "Data Analyst", ExpectedSalary: 48000, ExpectedDateOfDefense: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
}

// CreateDemoStudents fills an empty students table with demo records.
// A table that already has rows is left alone.
func CreateDemoStudents(ctx context.Context, repo appRepos.StudentRepository, lgr zerolog.Logger) error {
	existing, err := repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to check existing students: %w", err)
	}
	if len(existing) > 0 {
		lgr.Info().Int("count", len(existing)).Msg("Students already present, skipping demo data")
		return nil
	}

	lgr.Info().Msg("Creating demo students...")
	var finalErr error // To collect potential errors without stopping the process
	for i := range DemoStudents {
		student := DemoStudents[i]
		if _, err := repo.Create(ctx, &student); err != nil {
			lgr.Error().Err(err).Str("firstName", student.FirstName).Msg("Error creating demo student")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int("count", len(DemoStudents)).Msg("Demo students created")
	}
	return finalErr
}
