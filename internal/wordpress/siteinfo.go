package wordpress

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// GetSiteInfoMCP combines the REST index with the authenticated user. The
// two lookups run concurrently and each one degrades its own part of the
// payload: the call fails only when both do.
func (c *Client) GetSiteInfoMCP(ctx context.Context, _ GetSiteInfoArgs) (SiteInfoResult, error) {
	site := SiteInfo{
		URL:        c.api.SiteURL(),
		Home:       c.api.SiteURL(),
		Namespaces: []string{},
		Authentication: AuthInfo{
			Enabled:  true,
			Username: c.api.Username(),
		},
	}

	var (
		index      rawIndex
		me         rawUser
		indexErr   error
		currentErr error
	)

	// Both lookups always run to completion; each keeps its own error.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		raw, err := c.api.Discover(ctx)
		if err == nil {
			index, err = decodeRecord[rawIndex]("site index", raw)
		}
		indexErr = err
	}()
	go func() {
		defer wg.Done()
		me, currentErr = c.users.GetRef(ctx, "me", editContext())
	}()
	wg.Wait()

	if indexErr == nil {
		site.Name = index.Name
		site.Description = index.Description
		if index.Home != "" {
			site.Home = index.Home
		}
		site.Namespaces = orEmpty(index.Namespaces)
	} else {
		c.logger.Warn("Site discovery failed", "error", indexErr)
	}

	if currentErr == nil {
		site.CurrentUser = projectCurrentUser(me)
	} else {
		c.logger.Warn("Current user lookup failed", "error", currentErr)
	}

	if indexErr != nil && currentErr != nil {
		var merr *multierror.Error
		merr = multierror.Append(merr,
			fmt.Errorf("site discovery: %w", indexErr),
			fmt.Errorf("current user: %w", currentErr))
		merr.ErrorFormat = joinErrors
		return SiteInfoResult{Envelope: Fail(merr), Site: &site}, nil
	}

	return SiteInfoResult{Envelope: OK(""), Site: &site}, nil
}

func joinErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
