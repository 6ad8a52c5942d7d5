package types

import "log/slog"

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	InstallationToken   string
	BranchName          string
	CommitSHA           string
	TreeSHA             string
	BlobSHA             string
	ThemeID             string
)

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}

func (x InstallationToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x InstallationToken) String() string {
	return "***********"
}
