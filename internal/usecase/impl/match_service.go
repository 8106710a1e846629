package impl

import (
	"context"
	"fmt"
	"log/slog"
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
)

// matchService implements the MatchUsecase interface. Every guarded
// transition is a conditional write keyed on the expected current status;
// a failed write is re-read and classified, never silently retried.
type matchService struct {
	executor *storeExecutor
	matching *config.MatchingConfig
	notifier service.DispatchNotifier
	logger   *slog.Logger
}

// NewMatchService is the constructor for matchService.
func NewMatchService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	notifier service.DispatchNotifier,
	logger *slog.Logger,
) usecase.MatchUsecase {
	return &matchService{
		executor: newStoreExecutor(txManager, cfg.Store, logger),
		matching: cfg.Matching,
		notifier: notifier,
		logger:   logger,
	}
}

// ProposeMatch creates a pending match between a donor and the caller's
// request. The store's uniqueness guard rejects a duplicate active match, so
// two concurrent proposals for the same donor cannot both succeed.
func (srv *matchService) ProposeMatch(ctx context.Context, receiverID uuid.UUID, input *usecase.ProposeMatchInput) (*entity.Match, error) {
	srv.logger.Info("Proposing match", "receiverID", receiverID, "requestID", input.RequestID, "donorID", input.DonorID)

	var match *entity.Match

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.NewRequestRepository()
		userRepo := repoFactory.NewUserRepository()
		matchRepo := repoFactory.NewMatchRepository()

		request, err := requestRepo.FindRequestByID(ctx, input.RequestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return errors.Wrap(domainerrors.ErrRequestNotFound, "request not found")
			}

			return errors.Wrap(err, "failed to find request")
		}

		if request.RequesterID != receiverID {
			return errors.Wrap(domainerrors.ErrForbidden, "only the request owner may propose matches")
		}
		if input.DonorID == receiverID {
			return errors.Wrap(domainerrors.ErrValidationFailed, "cannot propose the requester as donor")
		}

		donor, err := userRepo.FindUserByID(ctx, input.DonorID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "donor not found")
			}

			return errors.Wrap(err, "failed to find donor")
		}

		match = &entity.Match{
			ID:         uuid.New(),
			RequestID:  request.ID,
			DonorID:    donor.ID,
			ReceiverID: receiverID,
			BloodGroup: donor.BloodGroup,
			Status:     entity.MatchStatusPending,
			CreatedAt:  time.Now(),
		}

		if err := matchRepo.CreateMatch(ctx, match); err != nil {
			if errors.Is(err, repository.ErrDuplicateActiveMatch) {
				return errors.Wrap(domainerrors.ErrDuplicateMatch, "active match already exists for this donor")
			}

			return errors.Wrap(err, "failed to create match")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to propose match")
	}

	// Receiver-initiated: the donor discovers the proposal through their own
	// match feed, no push.
	return match, nil
}

// AcceptMatch accepts a pending match on behalf of its donor. Claiming the
// request and accepting the match happen in one unit of work; the claim is
// the race arbiter, so the first donor to accept wins and every later donor
// loses with a distinguishable error. A retry by the winning donor re-applies
// idempotently.
func (srv *matchService) AcceptMatch(ctx context.Context, matchID, donorID uuid.UUID, input *usecase.AcceptMatchInput) (*entity.Match, error) {
	srv.logger.Info("Accepting match", "matchID", matchID, "donorID", donorID)

	var (
		match *entity.Match
		donor *entity.User
	)

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		matchRepo := repoFactory.NewMatchRepository()
		requestRepo := repoFactory.NewRequestRepository()
		userRepo := repoFactory.NewUserRepository()

		found, err := matchRepo.FindMatchByID(ctx, matchID)
		if err != nil {
			if errors.Is(err, repository.ErrMatchNotFound) {
				return errors.Wrap(domainerrors.ErrMatchNotFound, "match not found")
			}

			return errors.Wrap(err, "failed to find match")
		}

		if found.DonorID != donorID {
			return errors.Wrap(domainerrors.ErrForbidden, "only the match donor may accept")
		}
		if found.Status.Terminal() {
			return errors.Wrapf(domainerrors.ErrWrongState, "match is %s", found.Status)
		}

		claimed, err := requestRepo.ClaimRequest(ctx, found.RequestID, donorID)
		if err != nil {
			return errors.Wrap(err, "failed to claim request")
		}
		if !claimed {
			return errors.Wrap(domainerrors.ErrRequestAlreadyMatched, "request already claimed by another donor")
		}

		if found.Status == entity.MatchStatusPending {
			ok, err := matchRepo.UpdateMatchStatusIf(ctx, found.ID, entity.MatchStatusPending, entity.MatchStatusAccepted)
			if err != nil {
				return errors.Wrap(err, "failed to accept match")
			}
			if !ok {
				current, err := matchRepo.FindMatchByID(ctx, found.ID)
				if err != nil {
					return errors.Wrap(err, "failed to re-read match")
				}
				if current.Status != entity.MatchStatusAccepted {
					return errors.Wrapf(domainerrors.ErrWrongState, "match is %s", current.Status)
				}
			}
		}
		found.Status = entity.MatchStatusAccepted

		// Snapshot the coordinates the donor accepted from; they double as a
		// freshness signal on the profile.
		if input != nil {
			location := entity.GeoLocation{
				Latitude:   input.Latitude,
				Longitude:  input.Longitude,
				CapturedAt: time.Now(),
			}
			if err := userRepo.UpdateLocation(ctx, donorID, location); err != nil {
				return errors.Wrap(err, "failed to snapshot donor location")
			}
		}

		donor, err = userRepo.FindUserByID(ctx, donorID)
		if err != nil {
			return errors.Wrap(err, "failed to find donor")
		}
		match = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to accept match")
	}

	srv.notifier.Notify(ctx, &entity.Notification{
		ToUserID:   match.ReceiverID,
		FromUserID: &match.DonorID,
		MatchID:    &match.ID,
		RequestID:  &match.RequestID,
		Type:       entity.NotificationTypeMatchAccepted,
		Message:    fmt.Sprintf("%s accepted your blood request", donor.Name),
	})

	return match, nil
}

// RejectMatch rejects a pending match on behalf of its donor. Terminal, and
// leaves the request untouched so other candidates stay in play.
func (srv *matchService) RejectMatch(ctx context.Context, matchID, donorID uuid.UUID) (*entity.Match, error) {
	srv.logger.Info("Rejecting match", "matchID", matchID, "donorID", donorID)

	var (
		match *entity.Match
		donor *entity.User
	)

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		matchRepo := repoFactory.NewMatchRepository()
		userRepo := repoFactory.NewUserRepository()

		found, err := matchRepo.FindMatchByID(ctx, matchID)
		if err != nil {
			if errors.Is(err, repository.ErrMatchNotFound) {
				return errors.Wrap(domainerrors.ErrMatchNotFound, "match not found")
			}

			return errors.Wrap(err, "failed to find match")
		}

		if found.DonorID != donorID {
			return errors.Wrap(domainerrors.ErrForbidden, "only the match donor may reject")
		}

		if found.Status != entity.MatchStatusRejected {
			ok, err := matchRepo.UpdateMatchStatusIf(ctx, found.ID, entity.MatchStatusPending, entity.MatchStatusRejected)
			if err != nil {
				return errors.Wrap(err, "failed to reject match")
			}
			if !ok {
				current, err := matchRepo.FindMatchByID(ctx, found.ID)
				if err != nil {
					return errors.Wrap(err, "failed to re-read match")
				}
				if current.Status != entity.MatchStatusRejected {
					return errors.Wrapf(domainerrors.ErrWrongState, "match is %s", current.Status)
				}
			}
		}
		found.Status = entity.MatchStatusRejected

		donor, err = userRepo.FindUserByID(ctx, donorID)
		if err != nil {
			return errors.Wrap(err, "failed to find donor")
		}
		match = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to reject match")
	}

	srv.notifier.Notify(ctx, &entity.Notification{
		ToUserID:   match.ReceiverID,
		FromUserID: &match.DonorID,
		MatchID:    &match.ID,
		RequestID:  &match.RequestID,
		Type:       entity.NotificationTypeMatchRejected,
		Message:    fmt.Sprintf("%s declined your blood request", donor.Name),
	})

	return match, nil
}

// CompleteMatch marks the accepted match between the request and the donor as
// completed and applies the donation cooldown. A retried call re-derives the
// cooldown from the recorded completion timestamp, so the window is never
// extended by a retry.
func (srv *matchService) CompleteMatch(ctx context.Context, requestID, donorID uuid.UUID) (*entity.Match, error) {
	srv.logger.Info("Completing match", "requestID", requestID, "donorID", donorID)

	var (
		match *entity.Match
		donor *entity.User
	)

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		matchRepo := repoFactory.NewMatchRepository()
		userRepo := repoFactory.NewUserRepository()

		found, err := matchRepo.FindMatchByRequestAndDonor(ctx, requestID, donorID,
			entity.MatchStatusAccepted, entity.MatchStatusCompleted)
		if err != nil {
			if errors.Is(err, repository.ErrMatchNotFound) {
				return errors.Wrap(domainerrors.ErrNoActiveMatch, "no accepted match for this request and donor")
			}

			return errors.Wrap(err, "failed to find match")
		}

		completedAt := time.Now()
		switch found.Status {
		case entity.MatchStatusCompleted:
			// Retried completion: reuse the recorded timestamp.
			if found.CompletedAt != nil {
				completedAt = *found.CompletedAt
			}
		default:
			ok, err := matchRepo.MarkMatchCompleted(ctx, found.ID, completedAt)
			if err != nil {
				return errors.Wrap(err, "failed to complete match")
			}
			if !ok {
				current, err := matchRepo.FindMatchByID(ctx, found.ID)
				if err != nil {
					return errors.Wrap(err, "failed to re-read match")
				}
				if current.Status != entity.MatchStatusCompleted {
					return errors.Wrapf(domainerrors.ErrWrongState, "match is %s", current.Status)
				}
				if current.CompletedAt != nil {
					completedAt = *current.CompletedAt
				}
			}
		}
		found.Status = entity.MatchStatusCompleted
		found.CompletedAt = &completedAt

		cooldownUntil := completedAt.Add(srv.matching.CooldownWindow())
		if err := userRepo.SetDonationCooldown(ctx, donorID, completedAt, cooldownUntil); err != nil {
			return errors.Wrap(err, "failed to apply donation cooldown")
		}

		donor, err = userRepo.FindUserByID(ctx, donorID)
		if err != nil {
			return errors.Wrap(err, "failed to find donor")
		}
		match = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to complete match")
	}

	srv.notifier.Notify(ctx, &entity.Notification{
		ToUserID:   match.ReceiverID,
		FromUserID: &match.DonorID,
		MatchID:    &match.ID,
		RequestID:  &match.RequestID,
		Type:       entity.NotificationTypeDonationCompleted,
		Message:    fmt.Sprintf("%s marked the donation as completed", donor.Name),
	})

	return match, nil
}

// ListDonorMatches returns the donor's matches joined with their requests.
// Matches whose request has been deleted are dropped from the view.
func (srv *matchService) ListDonorMatches(ctx context.Context, donorID uuid.UUID) ([]*usecase.DonorMatchView, error) {
	srv.logger.Debug("Listing donor matches", "donorID", donorID)

	var views []*usecase.DonorMatchView

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		matchRepo := repoFactory.NewMatchRepository()
		requestRepo := repoFactory.NewRequestRepository()
		userRepo := repoFactory.NewUserRepository()

		donor, err := userRepo.FindUserByID(ctx, donorID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "donor not found")
			}

			return errors.Wrap(err, "failed to find donor")
		}

		matches, err := matchRepo.FindMatchesByDonor(ctx, donorID)
		if err != nil {
			return errors.Wrap(err, "failed to list matches")
		}

		views = make([]*usecase.DonorMatchView, 0, len(matches))
		for _, match := range matches {
			request, err := requestRepo.FindRequestByID(ctx, match.RequestID)
			if err != nil {
				if errors.Is(err, repository.ErrRequestNotFound) {
					continue
				}

				return errors.Wrap(err, "failed to find request")
			}

			view := &usecase.DonorMatchView{Match: match, Request: request}
			if donor.Location != nil {
				distance := geo.DistanceKm(donor.Location.Point(), request.Location.Point())
				view.DistanceKm = &distance
			}
			views = append(views, view)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donor matches")
	}

	return views, nil
}
