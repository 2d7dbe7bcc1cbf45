package version

// RetentionPolicy bounds the number of versions kept per module.
type RetentionPolicy struct {
	// MaxVersions is the configured limit. Values below 1 mean 1.
	MaxVersions int
}

// Limit returns the effective limit, never less than 1.
func (p RetentionPolicy) Limit() int {
	return max(1, p.MaxVersions)
}

// Clamped reports whether the configured limit had to be raised to 1.
func (p RetentionPolicy) Clamped() bool {
	return p.MaxVersions < 1
}

// WithOverride returns the policy to apply for one call. A nil override
// keeps p.
func (p RetentionPolicy) WithOverride(maxVersions *int) RetentionPolicy {
	if maxVersions == nil {
		return p
	}
	return RetentionPolicy{MaxVersions: *maxVersions}
}

// ExcessCount returns how many of the oldest versions must go so that
// currentCount, counted after the latest append, fits the limit. The newest
// version always survives.
func (p RetentionPolicy) ExcessCount(currentCount int) int {
	return max(0, currentCount-p.Limit())
}
