package service

type validatable[T any] interface {
	*T
	Validate() error
}

// editByKey applies change to a copy of the entity returned by find and,
// only if the copy validates, writes it back over the stored entity. On any
// error the stored entity is left untouched.
//
// Persisting and emitting are left to the caller.
func editByKey[T any, P validatable[T]](find func() (*T, error), change func(P)) (*T, error) {
	current, err := find()
	if err != nil {
		return nil, err
	}

	draft := *current
	change(P(&draft))
	if err := P(&draft).Validate(); err != nil {
		return nil, err
	}

	*current = draft
	return current, nil
}

// set assigns *v to *dst when v is non-nil.
func set(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// previousKey returns the key an entity had before an edit if the edit
// changed it, and "" otherwise.
func previousKey(before, after string) string {
	if before == after {
		return ""
	}
	return before
}
