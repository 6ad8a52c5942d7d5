package types

type DeployStatus string

const (
	// DeployStatusCreated means the repository was created and the base
	// content is live. Warnings may still be attached.
	DeployStatusCreated DeployStatus = "created"

	// DeployStatusReused means an existing repository was updated instead of
	// created (idempotent-redeploy mode only).
	DeployStatusReused DeployStatus = "reused"

	// DeployStatusPartial means the repository exists and holds the base
	// content, but a later stage (pages activation) failed.
	DeployStatusPartial DeployStatus = "partial"

	DeployStatusFailed DeployStatus = "failed"
)

// DeployStage identifies where in the pipeline a deployment currently is, or
// where it stopped.
type DeployStage string

const (
	StageAuth        DeployStage = "auth"
	StageProvision   DeployStage = "provision"
	StageBasePush    DeployStage = "push_base"
	StagePages       DeployStage = "pages"
	StageContentPush DeployStage = "push_content"
	StageDone        DeployStage = "done"
)
