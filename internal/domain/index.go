package domain

// IndexStatus tells whether a create-index call made a new index.
type IndexStatus string

const (
	// IndexCreated means the index did not exist and was created.
	IndexCreated IndexStatus = "created"
	// IndexExisting means the index was already there.
	IndexExisting IndexStatus = "existing"
)
