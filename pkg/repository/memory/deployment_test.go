package memory_test

import (
	"testing"

	"github.com/quickfolio/quickfolio/pkg/repository/memory"
	"github.com/quickfolio/quickfolio/pkg/repository/testhelper"
)

func TestMemoryDeploymentRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}
