package linear

// Allow permits every insertion without searching.
type Allow struct{}

// AllowsDuplicates always reports true.
func (Allow) AllowsDuplicates() bool { return true }

// Forbid permits an insertion only when no equal element exists. The
// existence check itself is fused into the indexing policy's
// FindInsertPosition probe; Forbid only flips the engine onto that path.
type Forbid struct{}

// AllowsDuplicates always reports false.
func (Forbid) AllowsDuplicates() bool { return false }
