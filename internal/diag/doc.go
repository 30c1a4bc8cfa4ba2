// Package diag defines the diagnostic model shared by all pipeline
// phases.
//
// Codes are partitioned by stage (LEX 1xxx, SYN 2xxx, SEM 3xxx,
// IO 4xxx). Phases hand findings to a Reporter; the standard
// implementation appends to a Bag, which preserves insertion order,
// enforces a capacity limit, and never aborts a run early — acceptance
// of a program is simply a bag with zero errors.
package diag
