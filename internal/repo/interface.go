package repo

// Identifier generates consistent project IDs.
type Identifier interface {
	// Resolve returns the project identity for the directory.
	// A persisted git_id or workspace_id is returned verbatim.
	// Otherwise the origin remote slug, or failing that the directory name,
	// is hashed into an xxxx-xxxx-xxxx-xxxx token.
	Resolve(dir string) (Identity, error)
}

// Step produces one candidate for the resolution chain.
// A Candidate without a Source and a nil error means the step has nothing to offer.
// A non-nil error is logged by the Resolver and the chain moves on.
type Step func(dir string) (Candidate, error)
