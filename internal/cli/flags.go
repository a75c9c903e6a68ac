package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"biblebee/internal/app"
	"biblebee/internal/domain"
)

// bucketFlag is a pflag.Value for the --status filter, validating on set.
type bucketFlag struct {
	bucket domain.ProgressBucket
}

var _ pflag.Value = (*bucketFlag)(nil)

func (f *bucketFlag) String() string { return string(f.bucket) }
func (f *bucketFlag) Type() string   { return "status" }

func (f *bucketFlag) Set(s string) error {
	switch domain.ProgressBucket(s) {
	case domain.BucketNotStarted, domain.BucketInProgress, domain.BucketComplete:
		f.bucket = domain.ProgressBucket(s)
		return nil
	default:
		return fmt.Errorf("unknown status %q (not_started, in_progress, complete)", s)
	}
}

// sortKeyFlag is a pflag.Value for the --sort key.
type sortKeyFlag struct {
	key app.RosterSortKey
}

var _ pflag.Value = (*sortKeyFlag)(nil)

func (f *sortKeyFlag) String() string { return string(f.key) }
func (f *sortKeyFlag) Type() string   { return "sort" }

func (f *sortKeyFlag) Set(s string) error {
	switch app.RosterSortKey(s) {
	case app.SortByName, app.SortByDivision, app.SortByStatus:
		f.key = app.RosterSortKey(s)
		return nil
	default:
		return fmt.Errorf("unknown sort key %q (name, division, status)", s)
	}
}
