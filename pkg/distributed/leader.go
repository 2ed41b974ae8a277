package distributed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/maestro-run/maestro/ent"
	"github.com/maestro-run/maestro/ent/leaderelection"
)

// Coordination roles. Each role is an independent lease; a node may lead
// some roles and not others.
const (
	RoleBeatScheduler      = "beat_scheduler"
	RoleCleanupCoordinator = "cleanup_coordinator"
)

// allRoles are the leases every node competes for.
var allRoles = []string{RoleBeatScheduler, RoleCleanupCoordinator}

// electionLoop periodically tries to claim or renew every coordination
// role. Claims are compare-and-set on the current term, so concurrent
// claimants cannot both win.
func (s *Service) electionLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.config.ElectionInterval)
	defer ticker.Stop()

	for _, role := range allRoles {
		if _, err := s.TryClaim(ctx, role); err != nil {
			slog.Error("Leader claim failed", "role", role, "error", err)
		}
	}

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, role := range allRoles {
				if _, err := s.TryClaim(ctx, role); err != nil {
					slog.Error("Leader claim failed", "role", role, "error", err)
				}
			}
		}
	}
}

// TryClaim attempts to take or renew the lease for a role. It returns true
// when this node holds the lease afterwards. Every successful claim bumps
// the term; history rows are appended only when the holder changes, so
// routine self-renewals do not accumulate rows. Losing a compare-and-set
// race is not an error.
func (s *Service) TryClaim(ctx context.Context, role string) (bool, error) {
	now := time.Now()
	expires := now.Add(s.config.LeaseDuration)

	row, err := s.client.LeaderElection.Get(ctx, role)
	if ent.IsNotFound(err) {
		err = s.client.LeaderElection.Create().
			SetID(role).
			SetNodeID(s.config.NodeID).
			SetTerm(1).
			SetLeaseExpiresAt(expires).
			Exec(ctx)
		if ent.IsConstraintError(err) {
			// Another node created the row first.
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to create lease for role %s: %w", role, err)
		}
		s.recordLeaderTransition(ctx, role, nil, 1, "initial")
		slog.Info("Leadership acquired", "role", role, "node_id", s.config.NodeID, "term", 1)
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read lease for role %s: %w", role, err)
	}

	held := row.NodeID == s.config.NodeID
	expired := !row.LeaseExpiresAt.After(now)
	if !held && !expired {
		return false, nil
	}

	newTerm := row.Term + 1
	n, err := s.client.LeaderElection.Update().
		Where(
			leaderelection.IDEQ(role),
			leaderelection.TermEQ(row.Term),
		).
		SetNodeID(s.config.NodeID).
		SetTerm(newTerm).
		SetLeaseExpiresAt(expires).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to claim lease for role %s: %w", role, err)
	}
	if n == 0 {
		// Lost the compare-and-set race to another claimant.
		return false, nil
	}

	if !held {
		prev := row.NodeID
		slog.Info("Leadership taken over", "role", role, "node_id", s.config.NodeID,
			"previous", prev, "term", newTerm)
		s.recordLeaderTransition(ctx, role, &prev, newTerm, "lease_expired")
	}
	return true, nil
}

// IsLeader reports whether this node currently holds an unexpired lease
// for the role.
func (s *Service) IsLeader(ctx context.Context, role string) bool {
	row, err := s.client.LeaderElection.Get(ctx, role)
	if err != nil {
		if !ent.IsNotFound(err) {
			slog.Error("Failed to read lease", "role", role, "error", err)
		}
		return false
	}
	return row.NodeID == s.config.NodeID && row.LeaseExpiresAt.After(time.Now())
}

// CurrentLeader returns the lease row for a role, or nil when nobody has
// ever claimed it.
func (s *Service) CurrentLeader(ctx context.Context, role string) (*ent.LeaderElection, error) {
	row, err := s.client.LeaderElection.Get(ctx, role)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read lease for role %s: %w", role, err)
	}
	return row, nil
}

// recordLeaderTransition appends a history row. Persist failures are
// logged, not propagated: the lease transition itself already happened.
func (s *Service) recordLeaderTransition(ctx context.Context, role string, oldNode *string, term int64, reason string) {
	create := s.client.LeaderHistory.Create().
		SetID(uuid.NewString()).
		SetRole(role).
		SetNewNodeID(s.config.NodeID).
		SetTerm(term).
		SetReason(reason)
	if oldNode != nil {
		create.SetOldNodeID(*oldNode)
	}
	if err := create.Exec(ctx); err != nil {
		slog.Error("Failed to record leader transition", "role", role, "reason", reason, "error", err)
	}
}
