package domain_test

import (
	"errors"
	"testing"

	"github.com/asset-bender/bender/internal/core/domain"
	"go.trai.ch/zerr"
)

// Attaching context must never detach an error from its sentinel: callers
// branch on errors.Is, and metadata rides on top of the chain.
func TestSentinelsSurviveMetadata(t *testing.T) {
	sentinels := []error{
		domain.ErrConfigInvalid,
		domain.ErrCycleDetected,
		domain.ErrVersionConflict,
		domain.ErrUnresolvedDependency,
		domain.ErrInvalidReference,
		domain.ErrPrecompiledExtension,
	}

	for _, sentinel := range sentinels {
		err := zerr.With(zerr.Wrap(sentinel, "context"), "key", "value")

		if !errors.Is(err, sentinel) {
			t.Errorf("expected errors.Is to match %v after attaching metadata", sentinel)
		}

		zErr, ok := err.(*zerr.Error)
		if !ok {
			t.Fatalf("expected *zerr.Error, got %T", err)
		}
		if zErr.Metadata()["key"] != "value" {
			t.Errorf("expected metadata to survive on %v, got %v", sentinel, zErr.Metadata())
		}
	}
}
