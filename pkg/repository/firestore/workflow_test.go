package firestore_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/issueflow/pkg/repository/firestore"
	"github.com/secmon-lab/issueflow/pkg/repository/testhelper"
)

func TestWorkflowRepository(t *testing.T) {
	projectID, ok := os.LookupEnv("TEST_FIRESTORE_PROJECT_ID")
	if !ok {
		t.Skip("TEST_FIRESTORE_PROJECT_ID is not set")
	}
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	// each run writes under its own root so that runs never see each other's states
	root := "issueflow-test-" + uuid.NewString()
	repo := gt.R1(firestore.New(context.Background(), projectID, databaseID,
		firestore.WithRootCollection(root),
	)).NoError(t)

	testhelper.TestAll(t, repo)
}

func TestToFirestoreID(t *testing.T) {
	valid := map[string]string{
		"owner1/repo1":        "owner1:repo1",
		"example-org/web-app": "example-org:web-app",
		"o/r.go":              "o:r.go",
	}
	for repo, expect := range valid {
		t.Run(repo, func(t *testing.T) {
			gt.V(t, gt.R1(firestore.ToFirestoreID(repo)).NoError(t)).Equal(expect)
		})
	}

	for _, repo := range []string{"", "owner1", "/repo1", "owner1/", "a/b/c", "own:er/repo", "owner/re:po"} {
		t.Run("invalid "+repo, func(t *testing.T) {
			_, err := firestore.ToFirestoreID(repo)
			gt.Error(t, err)
		})
	}
}
