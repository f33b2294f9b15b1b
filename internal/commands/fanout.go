package commands

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ProcessSources runs process for every source concurrently and returns the
// results in input order. The first failure cancels the remaining work.
// Trees are built per source and never shared between goroutines.
func ProcessSources[Result any](ctx context.Context, sources []Source, process func(Source) (Result, error)) ([]Result, error) {
	results := make([]Result, len(sources))
	group, groupContext := errgroup.WithContext(ctx)
	for index, source := range sources {
		index, source := index, source
		group.Go(func() error {
			if contextError := groupContext.Err(); contextError != nil {
				return contextError
			}
			result, processError := process(source)
			if processError != nil {
				return processError
			}
			results[index] = result
			return nil
		})
	}
	if waitError := group.Wait(); waitError != nil {
		return nil, waitError
	}
	return results, nil
}
