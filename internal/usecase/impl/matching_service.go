package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/errors"
	"lifeline/internal/geo"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// matchingService implements the MatchingUsecase interface.
type matchingService struct {
	executor       *storeExecutor
	matching       *config.MatchingConfig
	routeEstimator service.RouteEstimator // Nil when routing decoration is disabled.
	logger         *slog.Logger
}

// NewMatchingService is the constructor for matchingService. routeEstimator
// may be nil; candidates are then ranked by great-circle distance alone.
func NewMatchingService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	routeEstimator service.RouteEstimator,
	logger *slog.Logger,
) usecase.MatchingUsecase {
	return &matchingService{
		executor:       newStoreExecutor(txManager, cfg.Store, logger),
		matching:       cfg.Matching,
		routeEstimator: routeEstimator,
		logger:         logger,
	}
}

// FindCandidates returns the eligible donors for a blood request, ranked
// ascending by distance to the request coordinates.
func (srv *matchingService) FindCandidates(ctx context.Context, requestID, callerID uuid.UUID) ([]*entity.Candidate, error) {
	srv.logger.Debug("Finding candidates", "requestID", requestID, "callerID", callerID)

	var (
		request *entity.BloodRequest
		donors  []*entity.User
	)

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.NewRequestRepository()
		userRepo := repoFactory.NewUserRepository()

		found, err := requestRepo.FindRequestByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return errors.Wrap(domainerrors.ErrRequestNotFound, "request not found")
			}

			return errors.Wrap(err, "failed to find request")
		}

		if found.RequesterID != callerID {
			return errors.Wrap(domainerrors.ErrForbidden, "only the request owner may search candidates")
		}
		request = found

		donors, err = userRepo.ListDonorCandidates(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list donor candidates")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to find candidates")
	}

	ranked := srv.filterAndRank(request, donors, time.Now())
	srv.decorateRoutes(ctx, request, ranked)

	candidates := make([]*entity.Candidate, 0, len(ranked))
	for _, entry := range ranked {
		candidates = append(candidates, entry.candidate)
	}

	return candidates, nil
}

// rankedCandidate pairs a candidate with the donor coordinates it was ranked
// on, so the routing decoration can reuse them without another lookup.
type rankedCandidate struct {
	candidate *entity.Candidate
	point     orb.Point
}

// filterAndRank applies the eligibility rules and sorts the survivors by
// distance, ties broken by donor id for a stable ranking.
func (srv *matchingService) filterAndRank(request *entity.BloodRequest, donors []*entity.User, now time.Time) []*rankedCandidate {
	requestPoint := request.Location.Point()
	candidates := make([]*rankedCandidate, 0, len(donors))

	for _, donor := range donors {
		if donor.ID == request.RequesterID {
			continue
		}
		if !donor.Available {
			continue
		}
		if !donor.LocationFresh(now, srv.matching.LocationMaxAge) {
			continue
		}
		if donor.OnCooldown(now) {
			continue
		}
		if !donor.BloodGroup.CanDonateTo(request.BloodGroup) {
			continue
		}

		donorPoint := donor.Location.Point()
		distance := geo.DistanceKm(donorPoint, requestPoint)
		if distance > srv.matching.RadiusKm {
			continue
		}

		candidates = append(candidates, &rankedCandidate{
			candidate: &entity.Candidate{
				DonorID:    donor.ID,
				Name:       donor.Name,
				BloodGroup: donor.BloodGroup,
				DistanceKm: distance,
			},
			point: donorPoint,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].candidate.DistanceKm != candidates[j].candidate.DistanceKm {
			return candidates[i].candidate.DistanceKm < candidates[j].candidate.DistanceKm
		}

		return candidates[i].candidate.DonorID.String() < candidates[j].candidate.DonorID.String()
	})

	return candidates
}

// decorateRoutes attaches driving estimates from the routing provider. The
// ranking stays great-circle; a provider failure only drops the decoration.
func (srv *matchingService) decorateRoutes(ctx context.Context, request *entity.BloodRequest, ranked []*rankedCandidate) {
	if srv.routeEstimator == nil || len(ranked) == 0 {
		return
	}

	destinations := make([]orb.Point, 0, len(ranked))
	for _, entry := range ranked {
		destinations = append(destinations, entry.point)
	}

	estimates, err := srv.routeEstimator.EstimateRoutes(ctx, request.Location.Point(), destinations)
	if err != nil {
		srv.logger.Warn("routing provider unavailable, skipping decoration", "error", err)

		return
	}
	if len(estimates) != len(ranked) {
		srv.logger.Warn("routing provider returned mismatched estimates",
			"want", len(ranked), "got", len(estimates))

		return
	}

	for i, estimate := range estimates {
		if estimate == nil {
			continue
		}
		distanceKm := estimate.DistanceKm
		durationSeconds := estimate.DurationSeconds
		ranked[i].candidate.DrivingKm = &distanceKm
		ranked[i].candidate.DrivingETA = &durationSeconds
	}
}
