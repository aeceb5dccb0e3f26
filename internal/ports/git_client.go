package ports

import "context"

type GitClient interface {
	// ChangedFiles lists paths reported dirty by the working tree, empty on a
	// clean tree.
	ChangedFiles(ctx context.Context) ([]string, error)
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string) error
	Push(ctx context.Context) error
}
