package firestore_test

import (
	"context"
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/quickfolio/quickfolio/pkg/repository/firestore"
	"github.com/quickfolio/quickfolio/pkg/repository/testhelper"
)

func TestFirestoreDeploymentRepository(t *testing.T) {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	if projectID == "" || databaseID == "" {
		t.Skip("Firestore credentials not configured (TEST_FIRESTORE_PROJECT_ID, TEST_FIRESTORE_DATABASE_ID)")
	}

	ctx := context.Background()
	repo, err := firestore.New(ctx, projectID, databaseID)
	gt.NoError(t, err)

	testhelper.TestAll(t, repo)
}
