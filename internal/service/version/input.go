package version

import (
	"strings"

	"github.com/heartmarshall/moduleversion/internal/domain"
)

// SavedInput describes a module save reported by the host.
type SavedInput struct {
	Module domain.Module
	IsNew  bool
	// MaxVersions overrides the configured retention limit for this call
	// only. It is not stored: a later Prune or PruneAll applies the
	// configured limit and cuts a longer history back to it.
	MaxVersions *int
}

// Validate checks all fields and collects all errors.
func (i SavedInput) Validate() error {
	var errs []domain.FieldError

	if i.Module.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "module.id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RestoreInput identifies the version to put back onto its module.
type RestoreInput struct {
	VersionID int64
	ModuleID  int64
}

// Validate checks all fields and collects all errors.
func (i RestoreInput) Validate() error {
	var errs []domain.FieldError

	if i.VersionID <= 0 {
		errs = append(errs, domain.FieldError{Field: "version_id", Message: "must be positive"})
	}
	if i.ModuleID <= 0 {
		errs = append(errs, domain.FieldError{Field: "module_id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateModuleID(id int64) error {
	if id <= 0 {
		return domain.NewValidationError("module_id", "must be positive")
	}
	return nil
}

func validateExtensionKey(key domain.ExtensionKey) error {
	var errs []domain.FieldError

	if strings.TrimSpace(key.Kind) == "" {
		errs = append(errs, domain.FieldError{Field: "module", Message: "required"})
	}
	if key.ClientID < 0 {
		errs = append(errs, domain.FieldError{Field: "client_id", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
