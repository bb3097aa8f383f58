package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appRepos "github.com/yigit/studentrecords/internal/app/repositories"
)

func TestCreateDemoStudents(t *testing.T) {
	ctx := context.Background()
	repo := appRepos.NewMemoryStudentRepository()

	require.NoError(t, CreateDemoStudents(ctx, repo, zerolog.Nop()))
	students, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, students, len(DemoStudents))
	assert.Equal(t, "Jane", students[0].FirstName)

	// Second run is a no-op
	require.NoError(t, CreateDemoStudents(ctx, repo, zerolog.Nop()))
	students, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, students, len(DemoStudents))
}
