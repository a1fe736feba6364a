package main

import (
	"context"
	"fmt"
	"io"

	"github.com/kth-tools/kthprofile/internal/ctxlog"
	"github.com/kth-tools/kthprofile/internal/render"
	"github.com/kth-tools/kthprofile/pkg/client"
	"github.com/kth-tools/kthprofile/pkg/domain"
)

type profileGetter interface {
	GetProfile(ctx context.Context, identifier string) (*domain.Profile, error)
}

// lookupAll writes one block per identifier, in order, each followed by a
// blank line. It returns the number of failed lookups.
func lookupAll(ctx context.Context, w io.Writer, getter profileGetter, identifiers []string) int {
	log := ctxlog.FromContext(ctx)

	failed := 0
	for _, id := range identifiers {
		p, err := getter.GetProfile(ctx, id)
		if err != nil {
			failed++
			log.Info("lookup failed", "identifier", id, "status", client.StatusCode(err), "error", err)
			fmt.Fprintf(w, "Failed to get user %q: %v\n\n", id, err) //nolint:errcheck
			continue
		}
		fmt.Fprintf(w, "%s\n", render.Profile(p)) //nolint:errcheck
	}

	log.Debug("lookups finished", "total", len(identifiers), "failed", failed)
	return failed
}
