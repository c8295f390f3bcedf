package database

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*DepartmentRepo
	*RoleRepo
	*EmployeeRepo
}

// NewRepository creates a new Repository instance sharing the given store.
func NewRepository(store *Store) *Repository {
	return &Repository{
		DepartmentRepo: &DepartmentRepo{store: store},
		RoleRepo:       &RoleRepo{store: store},
		EmployeeRepo:   &EmployeeRepo{store: store},
	}
}
