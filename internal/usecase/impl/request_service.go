package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"lifeline/config"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/errors"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
)

// requestService implements the RequestUsecase interface.
type requestService struct {
	executor  *storeExecutor
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(
	txManager repository.TransactionManager,
	cfg *config.Config,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.RequestUsecase {
	return &requestService{
		executor:  newStoreExecutor(txManager, cfg.Store, logger),
		publisher: publisher,
		logger:    logger,
	}
}

// CreateRequest creates a new pending blood request for the caller.
func (srv *requestService) CreateRequest(ctx context.Context, requesterID uuid.UUID, input *usecase.CreateRequestInput) (*entity.BloodRequest, error) {
	srv.logger.Info("Creating blood request", "requesterID", requesterID, "bloodGroup", input.BloodGroup)

	bloodGroup, ok := entity.ParseBloodGroup(input.BloodGroup)
	if !ok {
		return nil, errors.Wrapf(domainerrors.ErrInvalidBloodGroup, "unknown blood group %q", input.BloodGroup)
	}
	if input.Units <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "units must be positive")
	}

	now := time.Now()
	request := &entity.BloodRequest{
		ID:           uuid.New(),
		RequesterID:  requesterID,
		BloodGroup:   bloodGroup,
		Units:        input.Units,
		RequiredBy:   input.RequiredBy,
		PatientName:  input.PatientName,
		HospitalName: input.HospitalName,
		City:         strings.ToLower(strings.TrimSpace(input.City)),
		Purpose:      input.Purpose,
		Location: entity.GeoLocation{
			Latitude:   input.Latitude,
			Longitude:  input.Longitude,
			CapturedAt: now,
		},
		Status:    entity.RequestStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewRequestRepository().CreateRequest(ctx, request); err != nil {
			return errors.Wrap(err, "failed to create request")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create blood request")
	}

	// Publish-on-transition for live donor feeds. No notification row: donors
	// discover open requests through their own query surface.
	event := &service.MatchEvent{
		BloodRequestID: request.ID.String(),
		Type:           entity.NotificationTypeRequestCreated,
		Message:        fmt.Sprintf("New %s blood request in %s", request.BloodGroup, request.City),
	}
	if err := srv.publisher.PublishMatchEvent(ctx, event); err != nil {
		srv.logger.Error("failed to publish request created event", "requestID", request.ID, "error", err)
	}

	return request, nil
}

// GetRequest retrieves a single request by id.
func (srv *requestService) GetRequest(ctx context.Context, requestID uuid.UUID) (*entity.BloodRequest, error) {
	var request *entity.BloodRequest

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewRequestRepository().FindRequestByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return errors.Wrap(domainerrors.ErrRequestNotFound, "request not found")
			}

			return errors.Wrap(err, "failed to find request")
		}
		request = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get request")
	}

	return request, nil
}

// ListMyRequests returns the caller's requests, newest first.
func (srv *requestService) ListMyRequests(ctx context.Context, requesterID uuid.UUID) ([]*entity.BloodRequest, error) {
	var requests []*entity.BloodRequest

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewRequestRepository().FindRequestsByRequester(ctx, requesterID)
		if err != nil {
			return errors.Wrap(err, "failed to list requests")
		}
		requests = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return requests, nil
}

// ListOpenRequests returns pending requests in the donor's city whose
// requested group the donor's blood can serve.
func (srv *requestService) ListOpenRequests(ctx context.Context, donorID uuid.UUID) ([]*entity.BloodRequest, error) {
	var requests []*entity.BloodRequest

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		requestRepo := repoFactory.NewRequestRepository()

		donor, err := userRepo.FindUserByID(ctx, donorID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "donor not found")
			}

			return errors.Wrap(err, "failed to find donor")
		}

		found, err := requestRepo.FindOpenRequests(ctx, donor.City, donor.BloodGroup.Recipients())
		if err != nil {
			return errors.Wrap(err, "failed to list open requests")
		}
		requests = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list open requests")
	}

	return requests, nil
}

// FulfillRequest marks the caller's request as fulfilled. Intentionally
// decoupled from match completion: the receiver may close out their side at
// any time.
func (srv *requestService) FulfillRequest(ctx context.Context, requestID, receiverID uuid.UUID) (*entity.BloodRequest, error) {
	srv.logger.Info("Fulfilling request", "requestID", requestID, "receiverID", receiverID)

	var request *entity.BloodRequest

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.NewRequestRepository()

		found, err := requestRepo.FindRequestByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return errors.Wrap(domainerrors.ErrRequestNotFound, "request not found")
			}

			return errors.Wrap(err, "failed to find request")
		}

		if found.RequesterID != receiverID {
			return errors.Wrap(domainerrors.ErrForbidden, "only the request owner may fulfill")
		}

		if err := requestRepo.MarkRequestFulfilled(ctx, requestID); err != nil {
			return errors.Wrap(err, "failed to fulfill request")
		}
		found.Status = entity.RequestStatusFulfilled
		request = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to fulfill request")
	}

	return request, nil
}

// DeleteRequest removes the caller's request.
func (srv *requestService) DeleteRequest(ctx context.Context, requestID, receiverID uuid.UUID) error {
	srv.logger.Info("Deleting request", "requestID", requestID, "receiverID", receiverID)

	err := srv.executor.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.NewRequestRepository()

		found, err := requestRepo.FindRequestByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return errors.Wrap(domainerrors.ErrRequestNotFound, "request not found")
			}

			return errors.Wrap(err, "failed to find request")
		}

		if found.RequesterID != receiverID {
			return errors.Wrap(domainerrors.ErrForbidden, "only the request owner may delete")
		}

		if err := requestRepo.DeleteRequest(ctx, requestID); err != nil {
			return errors.Wrap(err, "failed to delete request")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete request")
	}

	return nil
}
